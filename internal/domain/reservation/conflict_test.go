//go:build unit

package reservation_test

import (
	"testing"

	"parkstay/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id, unitID, in, out string, status reservation.Status) *reservation.Reservation {
	return reservation.Reconstruct(id, unitID, "guest "+id, "", reservation.StayOf(in, out), status, "admin", "", "")
}

func mustStay(t *testing.T, in, out string) reservation.Stay {
	t.Helper()
	s, err := reservation.NewStay(in, out)
	require.NoError(t, err)
	return s
}

func TestFindConflict(t *testing.T) {
	existing := []*reservation.Reservation{
		booking("b1", "U", "2024-06-01", "2024-06-05", reservation.StatusConfirmed),
		booking("b2", "U", "2024-06-10", "2024-06-12", reservation.StatusCancelled),
		booking("b3", "V", "2024-06-01", "2024-06-30", reservation.StatusPending),
	}

	tests := []struct {
		name      string
		candidate reservation.Candidate
		wantID    string
	}{
		{
			name:      "back to back turnover on check-out day",
			candidate: reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-06-05", "2024-06-07")},
		},
		{
			name:      "arrival on the previous guest's last night",
			candidate: reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-06-04", "2024-06-06")},
			wantID:    "b1",
		},
		{
			name:      "departure on the existing check-in day",
			candidate: reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-05-28", "2024-06-01")},
		},
		{
			name:      "enclosing stay",
			candidate: reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-05-30", "2024-06-08")},
			wantID:    "b1",
		},
		{
			name:      "cancelled booking on identical range",
			candidate: reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-06-10", "2024-06-12")},
		},
		{
			name:      "editing a booking does not collide with itself",
			candidate: reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-06-02", "2024-06-04"), ExcludeID: "b1"},
		},
		{
			name:      "pending bookings still hold the unit",
			candidate: reservation.Candidate{UnitID: "V", Stay: mustStay(t, "2024-06-15", "2024-06-16")},
			wantID:    "b3",
		},
		{
			name:      "other unit is free",
			candidate: reservation.Candidate{UnitID: "W", Stay: mustStay(t, "2024-06-01", "2024-06-05")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := reservation.FindConflict(tt.candidate, existing)
			if tt.wantID == "" {
				assert.False(t, found)
				assert.Nil(t, got)
				return
			}
			require.True(t, found)
			assert.Equal(t, tt.wantID, got.ID())
		})
	}
}

func TestFindConflict_ReturnsFirstInOrder(t *testing.T) {
	existing := []*reservation.Reservation{
		booking("late", "U", "2024-06-03", "2024-06-04", reservation.StatusConfirmed),
		booking("early", "U", "2024-06-01", "2024-06-02", reservation.StatusConfirmed),
	}
	got, found := reservation.FindConflict(reservation.Candidate{UnitID: "U", Stay: mustStay(t, "2024-06-01", "2024-06-10")}, existing)
	require.True(t, found)
	assert.Equal(t, "late", got.ID())
}

func TestOccupancyOnDay(t *testing.T) {
	set := []*reservation.Reservation{
		booking("b1", "U", "2024-06-01", "2024-06-03", reservation.StatusConfirmed),
		booking("b2", "V", "2024-06-02", "2024-06-04", reservation.StatusCancelled),
		booking("b3", "W", "2024-06-02", "2024-06-03", reservation.StatusPending),
	}

	got, ok := reservation.OccupantOn("U", "2024-06-02", set)
	require.True(t, ok)
	assert.Equal(t, "b1", got.ID())

	_, ok = reservation.OccupantOn("U", "2024-06-03", set)
	assert.False(t, ok)

	_, ok = reservation.OccupantOn("V", "2024-06-02", set)
	assert.False(t, ok)

	assert.Equal(t, 2, reservation.CountOccupiedOn("2024-06-02", set))
	assert.Equal(t, 0, reservation.CountOccupiedOn("2024-06-03", set))
}
