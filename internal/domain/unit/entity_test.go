//go:build unit

package unit_test

import (
	"testing"

	"parkstay/internal/domain/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() unit.Details {
	return unit.Details{
		Name:     "  บ้านริมน้ำ 1 ",
		Zone:     "Zone A",
		Capacity: 4,
		Price:    1500,
	}
}

func TestNewUnit(t *testing.T) {
	t.Run("defaults to active and trims name", func(t *testing.T) {
		u, err := unit.NewUnit("A1", validDetails())
		require.NoError(t, err)

		assert.Equal(t, "A1", u.ID())
		assert.Equal(t, "บ้านริมน้ำ 1", u.Name())
		assert.Equal(t, unit.StatusActive, u.Status())
		assert.True(t, u.IsActive())
	})

	tests := []struct {
		name   string
		id     string
		mutate func(*unit.Details)
		errIs  error
	}{
		{name: "empty id", id: " ", mutate: func(*unit.Details) {}, errIs: unit.ErrEmptyUnitID},
		{name: "empty name", id: "A1", mutate: func(d *unit.Details) { d.Name = "  " }, errIs: unit.ErrEmptyUnitName},
		{name: "zero capacity", id: "A1", mutate: func(d *unit.Details) { d.Capacity = 0 }, errIs: unit.ErrInvalidCapacity},
		{name: "negative price", id: "A1", mutate: func(d *unit.Details) { d.Price = -1 }, errIs: unit.ErrNegativePrice},
		{name: "unknown status", id: "A1", mutate: func(d *unit.Details) { d.Status = "closed" }, errIs: unit.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			_, err := unit.NewUnit(tt.id, d)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestUnit_EditKeepsStateOnError(t *testing.T) {
	u, err := unit.NewUnit("A1", validDetails())
	require.NoError(t, err)

	d := validDetails()
	d.Capacity = -3
	require.ErrorIs(t, u.Edit(d), unit.ErrInvalidCapacity)
	assert.Equal(t, 4, u.Capacity())

	d = validDetails()
	d.Status = unit.StatusMaintenance
	require.NoError(t, u.Edit(d))
	assert.False(t, u.IsActive())
}

func TestIsVIPZone(t *testing.T) {
	assert.True(t, unit.IsVIPZone("VIP Hill"))
	assert.True(t, unit.IsVIPZone("บ้านรับรอง"))
	assert.True(t, unit.IsVIPZone("โซนพิเศษ"))
	assert.False(t, unit.IsVIPZone("Zone A"))
	assert.False(t, unit.IsVIPZone(""))
}

func TestIndex_FirstWins(t *testing.T) {
	first := unit.Reconstruct("A1", "first", "-", 2, 0, unit.StatusActive, "")
	second := unit.Reconstruct("A1", "second", "-", 2, 0, unit.StatusMaintenance, "")
	other := unit.Reconstruct("B1", "other", "-", 2, 0, unit.StatusMaintenance, "")

	idx := unit.Index([]*unit.Unit{first, second, other})
	assert.Len(t, idx, 2)
	assert.Same(t, first, idx["A1"])
	assert.Equal(t, 1, unit.CountActive([]*unit.Unit{first, second, other}))
}
