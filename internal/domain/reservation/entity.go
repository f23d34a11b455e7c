package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyUnitID         = errors.New("unit id cannot be empty")
	ErrEmptyGuestName      = errors.New("guest name cannot be empty")
	ErrReservationCanceled = errors.New("reservation is already cancelled")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

type Reservation struct {
	id         string
	unitID     string
	guestName  string
	guestPhone string
	stay       Stay
	status     Status
	bookedBy   string
	createdAt  string
	notes      string
}

// NewReservation records a booking entered by bookedBy. An empty status means confirmed.
func NewReservation(id string, d Details, bookedBy string, createdAt time.Time) (*Reservation, error) {
	r := &Reservation{
		id:        id,
		bookedBy:  bookedBy,
		createdAt: createdAt.Format(time.RFC3339),
	}
	if err := r.Edit(d); err != nil {
		return nil, err
	}
	return r, nil
}

func Reconstruct(
	id, unitID, guestName, guestPhone string,
	stay Stay,
	status Status,
	bookedBy, createdAt, notes string,
) *Reservation {
	return &Reservation{
		id:         id,
		unitID:     unitID,
		guestName:  guestName,
		guestPhone: guestPhone,
		stay:       stay,
		status:     status,
		bookedBy:   bookedBy,
		createdAt:  createdAt,
		notes:      notes,
	}
}

// Edit replaces the booking details in place; id, author and creation time stay.
func (r *Reservation) Edit(d Details) error {
	if strings.TrimSpace(d.UnitID) == "" {
		return ErrEmptyUnitID
	}
	guest := strings.TrimSpace(d.GuestName)
	if guest == "" {
		return ErrEmptyGuestName
	}
	if !d.Stay.IsValid() {
		return ErrInvalidStay
	}
	status := d.Status
	if status == "" {
		status = StatusConfirmed
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	r.unitID = d.UnitID
	r.guestName = guest
	r.guestPhone = strings.TrimSpace(d.GuestPhone)
	r.stay = d.Stay
	r.status = status
	r.notes = d.Notes
	return nil
}

// Cancel is a soft delete: only the status changes.
func (r *Reservation) Cancel() error {
	if r.IsCancelled() {
		return ErrReservationCanceled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

// OccupiesOn reports whether the unit is taken on day by this booking.
func (r *Reservation) OccupiesOn(day string) bool {
	return !r.IsCancelled() && r.stay.Contains(day)
}

func (r *Reservation) Details() Details {
	return Details{
		UnitID:     r.unitID,
		GuestName:  r.guestName,
		GuestPhone: r.guestPhone,
		Stay:       r.stay,
		Status:     r.status,
		Notes:      r.notes,
	}
}

func (r *Reservation) ID() string         { return r.id }
func (r *Reservation) UnitID() string     { return r.unitID }
func (r *Reservation) GuestName() string  { return r.guestName }
func (r *Reservation) GuestPhone() string { return r.guestPhone }
func (r *Reservation) Stay() Stay         { return r.stay }
func (r *Reservation) CheckIn() string    { return r.stay.checkIn }
func (r *Reservation) CheckOut() string   { return r.stay.checkOut }
func (r *Reservation) Status() Status     { return r.status }
func (r *Reservation) BookedBy() string   { return r.bookedBy }
func (r *Reservation) CreatedAt() string  { return r.createdAt }
func (r *Reservation) Notes() string      { return r.notes }
