package request

import (
	"strings"

	"parkstay/internal/pkg/flexdate"
	"parkstay/internal/usecase/commands"
	"parkstay/internal/usecase/queries"
)

type CreateReservationRequest struct {
	AccommodationID string `json:"accommodationId" binding:"required,max=64"`
	GuestName       string `json:"guestName" binding:"required,max=255"`
	GuestPhone      string `json:"guestPhone" binding:"omitempty,max=50"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	Status          string `json:"status" binding:"omitempty,oneof=confirmed pending cancelled"`
	Notes           string `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateReservationRequest struct {
	AccommodationID *string `json:"accommodationId" binding:"omitempty,min=1,max=64"`
	GuestName       *string `json:"guestName" binding:"omitempty,min=1,max=255"`
	GuestPhone      *string `json:"guestPhone" binding:"omitempty,max=50"`
	CheckInDate     *string `json:"checkInDate"`
	CheckOutDate    *string `json:"checkOutDate"`
	Status          *string `json:"status" binding:"omitempty,oneof=confirmed pending cancelled"`
	Notes           *string `json:"notes" binding:"omitempty,max=1000"`
}

type ConflictCheckRequest struct {
	AccommodationID string `json:"accommodationId" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	ExcludeID       string `json:"excludeId"`
}

func (r *CreateReservationRequest) ToParams() commands.SaveReservationParams {
	p := commands.SaveReservationParams{
		UnitID:     &r.AccommodationID,
		GuestName:  &r.GuestName,
		GuestPhone: &r.GuestPhone,
		CheckIn:    canonicalDay(&r.CheckInDate),
		CheckOut:   canonicalDay(&r.CheckOutDate),
		Notes:      &r.Notes,
	}
	if r.Status != "" {
		p.Status = &r.Status
	}
	return p
}

func (r *UpdateReservationRequest) ToParams(id string) commands.SaveReservationParams {
	return commands.SaveReservationParams{
		ID:         &id,
		UnitID:     r.AccommodationID,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		CheckIn:    canonicalDay(r.CheckInDate),
		CheckOut:   canonicalDay(r.CheckOutDate),
		Status:     r.Status,
		Notes:      r.Notes,
	}
}

func (r *ConflictCheckRequest) ToQuery() queries.ConflictQuery {
	return queries.ConflictQuery{
		UnitID:    r.AccommodationID,
		CheckIn:   *canonicalDay(&r.CheckInDate),
		CheckOut:  *canonicalDay(&r.CheckOutDate),
		ExcludeID: strings.TrimSpace(r.ExcludeID),
	}
}

// canonicalDay accepts the same date spellings the sheets carry. Unparseable
// input is passed through so the stay check can reject it.
func canonicalDay(s *string) *string {
	if s == nil {
		return nil
	}
	if day := flexdate.Parse(*s); day != "" {
		return &day
	}
	return s
}
