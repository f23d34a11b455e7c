package queries

import (
	"time"

	"parkstay/internal/domain/reservation"
	"parkstay/internal/domain/unit"
	"parkstay/internal/domain/user"
)

// TodayView is the front-desk headline for the current calendar day.
type TodayView struct {
	Date        string
	Occupied    int
	ActiveUnits int
	// Available never goes below zero, even when pending bookings overfill the park.
	Available int
}

type CalendarView struct {
	Year  int
	Month time.Month
	Days  []string
	Rows  []CalendarRow
}

// CalendarRow is one unit across the month, one cell per day.
type CalendarRow struct {
	Unit  *unit.Unit
	VIP   bool
	Cells []CalendarCell
}

// CalendarCell holds the occupying booking, or nil when the unit is free that day.
type CalendarCell struct {
	Day         string
	Reservation *reservation.Reservation
}

type ExportMode string

const (
	ExportAll   ExportMode = "all"
	ExportMonth ExportMode = "month"
	ExportYear  ExportMode = "year"
)

func (m ExportMode) IsValid() bool {
	switch m {
	case ExportAll, ExportMonth, ExportYear:
		return true
	default:
		return false
	}
}

// ExportRow pairs a booking with its unit. Unit is nil when the booking points at a unit that no longer exists.
type ExportRow struct {
	Reservation *reservation.Reservation
	Unit        *unit.Unit
}

// NormalizedRows is the result of normalising one sheet's rows.
// Only the slice matching the sheet is filled.
type NormalizedRows struct {
	Units        []*unit.Unit
	Reservations []*reservation.Reservation
	Users        []*user.User
}
