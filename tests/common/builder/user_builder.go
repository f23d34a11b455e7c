//go:build unit || e2e

package builder

import (
	"parkstay/internal/domain/user"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/rawrecord"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       string
	Username string
	Password string
	Name     string
	Role     string
	Approved bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.NewString(),
		Username: "somchai",
		Password: "secret",
		Name:     "สมชาย ใจดี",
		Role:     "user",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	entity, err := user.NewUser(u.ID, username, u.Password, u.Name)
	if err != nil {
		return nil, err
	}
	if u.Approved {
		if err := entity.Approve(role); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

func (u *UserBuilder) BuildRecord() rawrecord.Record {
	entity, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return converter.UserToRecord(entity)
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsApproved() *UserBuilder {
	u.Approved = true
	return u
}
