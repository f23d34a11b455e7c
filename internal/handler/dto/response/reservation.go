package response

import (
	"parkstay/internal/domain/reservation"
	"parkstay/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              string `json:"id"`
	AccommodationID string `json:"accommodationId"`
	GuestName       string `json:"guestName"`
	GuestPhone      string `json:"guestPhone"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	Nights          int    `json:"nights"`
	Status          string `json:"status"`
	BookedBy        string `json:"bookedBy"`
	CreatedAt       string `json:"createdAt"`
	Notes           string `json:"notes,omitempty"`
}

type ConflictResponse struct {
	Conflict bool                 `json:"conflict"`
	Existing *ReservationResponse `json:"existing,omitempty"`
}

type ResetResponse struct {
	Deleted int `json:"deleted"`
}

// ExportRowResponse is one line of the booking export.
type ExportRowResponse struct {
	ReservationResponse
	AccommodationName string `json:"accommodationName"`
}

const unknownUnitName = "Unknown"

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:              r.ID(),
		AccommodationID: r.UnitID(),
		GuestName:       r.GuestName(),
		GuestPhone:      r.GuestPhone(),
		CheckInDate:     r.CheckIn(),
		CheckOutDate:    r.CheckOut(),
		Nights:          r.Stay().Nights(),
		Status:          r.Status().String(),
		BookedBy:        r.BookedBy(),
		CreatedAt:       r.CreatedAt(),
		Notes:           r.Notes(),
	}
}

func FromReservations(rs []*reservation.Reservation) []*ReservationResponse {
	res := make([]*ReservationResponse, len(rs))
	for i, r := range rs {
		res[i] = FromReservation(r)
	}
	return res
}

func FromConflict(existing *reservation.Reservation) *ConflictResponse {
	return &ConflictResponse{Conflict: existing != nil, Existing: FromReservation(existing)}
}

func FromExportRows(rows []queries.ExportRow) []*ExportRowResponse {
	res := make([]*ExportRowResponse, len(rows))
	for i, row := range rows {
		name := unknownUnitName
		if row.Unit != nil {
			name = row.Unit.Name()
		}
		res[i] = &ExportRowResponse{
			ReservationResponse: *FromReservation(row.Reservation),
			AccommodationName:   name,
		}
	}
	return res
}
