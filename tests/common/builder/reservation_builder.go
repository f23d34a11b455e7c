//go:build unit || e2e

package builder

import (
	"time"

	"parkstay/internal/domain/reservation"
	reqdto "parkstay/internal/handler/dto/request"
	"parkstay/internal/infra/converter"
	"parkstay/internal/pkg/rawrecord"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         string
	UnitID     string
	GuestName  string
	GuestPhone string
	CheckIn    string
	CheckOut   string
	Status     reservation.Status
	BookedBy   string
	CreatedAt  time.Time
	Notes      string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.NewString(),
		UnitID:     "A1",
		GuestName:  "คุณสมหญิง",
		GuestPhone: "0812345678",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-03",
		Status:     reservation.StatusConfirmed,
		BookedBy:   "admin",
		CreatedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.ID, reservation.Details{
		UnitID:     b.UnitID,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		Stay:       stay,
		Status:     b.Status,
		Notes:      b.Notes,
	}, b.BookedBy, b.CreatedAt)
}

// MustBuild skips validation so tests can model rows that arrived inverted from storage.
func (b *ReservationBuilder) MustBuild() *reservation.Reservation {
	return reservation.Reconstruct(
		b.ID, b.UnitID, b.GuestName, b.GuestPhone,
		reservation.StayOf(b.CheckIn, b.CheckOut),
		b.Status, b.BookedBy, b.CreatedAt.Format(time.RFC3339), b.Notes,
	)
}

func (b *ReservationBuilder) BuildRecord() rawrecord.Record {
	return converter.ReservationToRecord(b.MustBuild())
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		AccommodationID: b.UnitID,
		GuestName:       b.GuestName,
		GuestPhone:      b.GuestPhone,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		Status:          b.Status.String(),
		Notes:           b.Notes,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) ForUnit(unitID string) *ReservationBuilder {
	b.UnitID = unitID
	return b
}

func (b *ReservationBuilder) Between(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) Cancelled() *ReservationBuilder {
	b.Status = reservation.StatusCancelled
	return b
}

func (b *ReservationBuilder) Pending() *ReservationBuilder {
	b.Status = reservation.StatusPending
	return b
}
