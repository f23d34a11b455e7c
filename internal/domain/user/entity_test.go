//go:build unit

package user_test

import (
	"testing"

	"parkstay/internal/domain/user"
	"parkstay/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("registration defaults", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithID("u-1").BuildDomain()
		require.NoError(t, err)

		expected := user.Reconstruct("u-1", "somchai", "secret", "สมชาย ใจดี", user.RoleUser, user.StatusPending,
			"https://ui-avatars.com/api/?name=%E0%B8%AA%E0%B8%A1%E0%B8%8A%E0%B8%B2%E0%B8%A2+%E0%B9%83%E0%B8%88%E0%B8%94%E0%B8%B5&background=random")

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, actual.IsApproved())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("name falls back to username", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithName("  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "somchai", actual.Name())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain username OK",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("staff01") },
			},
			{
				name:   "padded username OK",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("  staff01  ") },
			},
			{
				name:   "empty username NG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(" ") },
				errIs:  user.ErrEmptyUsername,
			},
			{
				name:   "inner space NG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("staff 01") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("password validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty password NG",
				mutate: func(b *builder.UserBuilder) { b.WithPassword("") },
				errIs:  user.ErrEmptyPassword,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin role OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin").AsApproved() },
			},
			{
				name:   "user role OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user").AsApproved() },
			},
			{
				name:   "unknown role NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestUser_AdminFailSafe(t *testing.T) {
	for _, name := range []string{"admin", "Admin", "ADMIN"} {
		t.Run(name, func(t *testing.T) {
			u := user.Reconstruct("u-1", name, "pw", "Administrator", user.RoleUser, user.StatusPending, "")
			assert.Equal(t, user.StatusApproved, u.Status())

			registered, err := builder.NewUserBuilder().WithUsername(name).BuildDomain()
			require.NoError(t, err)
			assert.True(t, registered.IsApproved())
		})
	}

	padded := user.Reconstruct("u-2", " admin", "pw", "x", user.RoleUser, user.StatusPending, "")
	assert.Equal(t, user.StatusPending, padded.Status())
}

func TestUser_Approve(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	require.ErrorIs(t, u.Approve("root"), user.ErrInvalidRole)
	assert.False(t, u.IsApproved())

	require.NoError(t, u.Approve(user.RoleAdmin))
	assert.True(t, u.IsApproved())
	assert.True(t, u.IsAdmin())
}

func TestUser_SameUsername(t *testing.T) {
	u, err := builder.NewUserBuilder().WithUsername("Somchai").BuildDomain()
	require.NoError(t, err)

	assert.True(t, u.SameUsername("somchai"))
	assert.True(t, u.SameUsername(" SOMCHAI "))
	assert.False(t, u.SameUsername("somchai2"))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
