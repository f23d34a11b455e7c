//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkstay/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details(t *testing.T) reservation.Details {
	return reservation.Details{
		UnitID:     "A1",
		GuestName:  " คุณสมชาย ",
		GuestPhone: "081-234-5678",
		Stay:       mustStay(t, "2024-06-01", "2024-06-03"),
	}
}

func TestNewStay(t *testing.T) {
	s, err := reservation.NewStay("2024-6-1", "2024-06-04")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", s.CheckIn())
	assert.Equal(t, "2024-06-04", s.CheckOut())
	assert.Equal(t, 3, s.Nights())
	assert.Equal(t, "[2024-06-01,2024-06-04)", s.String())

	for _, tc := range [][2]string{
		{"2024-06-04", "2024-06-04"},
		{"2024-06-05", "2024-06-04"},
		{"", "2024-06-04"},
		{"2024-06-01", "tomorrow"},
	} {
		_, err := reservation.NewStay(tc[0], tc[1])
		assert.ErrorIs(t, err, reservation.ErrInvalidStay, tc)
	}
}

func TestStayOf_TolerantOfInvertedRows(t *testing.T) {
	s := reservation.StayOf("2024-06-05", "2024-06-01")
	assert.False(t, s.IsValid())
	assert.Equal(t, 0, s.Nights())
	assert.False(t, s.Contains("2024-06-03"))
}

func TestNewReservation(t *testing.T) {
	created := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	r, err := reservation.NewReservation("bk-1", details(t), "user-7", created)
	require.NoError(t, err)

	assert.Equal(t, "bk-1", r.ID())
	assert.Equal(t, "คุณสมชาย", r.GuestName())
	assert.Equal(t, reservation.StatusConfirmed, r.Status())
	assert.Equal(t, "user-7", r.BookedBy())
	assert.Equal(t, "2024-05-20T09:00:00Z", r.CreatedAt())
	assert.True(t, r.OccupiesOn("2024-06-02"))
	assert.False(t, r.OccupiesOn("2024-06-03"))

	tests := []struct {
		name   string
		mutate func(*reservation.Details)
		errIs  error
	}{
		{name: "missing unit", mutate: func(d *reservation.Details) { d.UnitID = "" }, errIs: reservation.ErrEmptyUnitID},
		{name: "missing guest", mutate: func(d *reservation.Details) { d.GuestName = " " }, errIs: reservation.ErrEmptyGuestName},
		{name: "inverted stay", mutate: func(d *reservation.Details) { d.Stay = reservation.StayOf("2024-06-03", "2024-06-01") }, errIs: reservation.ErrInvalidStay},
		{name: "unknown status", mutate: func(d *reservation.Details) { d.Status = "done" }, errIs: reservation.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := details(t)
			tt.mutate(&d)
			_, err := reservation.NewReservation("bk-1", d, "user-7", created)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestReservation_Cancel(t *testing.T) {
	r, err := reservation.NewReservation("bk-1", details(t), "user-7", time.Now())
	require.NoError(t, err)
	before := r.Details()

	require.NoError(t, r.Cancel())
	assert.True(t, r.IsCancelled())
	assert.False(t, r.OccupiesOn("2024-06-01"))

	after := r.Details()
	after.Status = before.Status
	assert.Equal(t, before, after)

	assert.ErrorIs(t, r.Cancel(), reservation.ErrReservationCanceled)
}

func TestReservation_EditKeepsIdentity(t *testing.T) {
	r, err := reservation.NewReservation("bk-1", details(t), "user-7", time.Now())
	require.NoError(t, err)
	createdAt := r.CreatedAt()

	d := details(t)
	d.UnitID = "B2"
	d.Status = reservation.StatusPending
	require.NoError(t, r.Edit(d))

	assert.Equal(t, "bk-1", r.ID())
	assert.Equal(t, "B2", r.UnitID())
	assert.Equal(t, reservation.StatusPending, r.Status())
	assert.Equal(t, "user-7", r.BookedBy())
	assert.Equal(t, createdAt, r.CreatedAt())
}
