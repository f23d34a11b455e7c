package response

import (
	"math"

	"parkstay/internal/domain/occupancy"
	"parkstay/internal/usecase/queries"
	"parkstay/internal/usecase/shared"
)

type StatsResponse struct {
	Mode           string  `json:"mode"`
	Period         string  `json:"period"`
	ConfirmedCount int     `json:"confirmedCount"`
	Revenue        float64 `json:"revenue"`
	OccupiedNights int     `json:"occupiedNights"`
	ActiveUnits    int     `json:"activeUnits"`
	CapacityNights int     `json:"capacityNights"`
	// OccupancyRate is rounded to two decimals.
	OccupancyRate float64 `json:"occupancyRate"`
}

type TodayResponse struct {
	Date        string `json:"date"`
	Occupied    int    `json:"occupied"`
	ActiveUnits int    `json:"activeUnits"`
	Available   int    `json:"available"`
}

type CalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Days  []string               `json:"days"`
	Rows  []*CalendarRowResponse `json:"rows"`
}

type CalendarRowResponse struct {
	Accommodation *UnitResponse `json:"accommodation"`
	VIP           bool          `json:"vip"`
	// Cells has one entry per day; nil means free.
	Cells []*CalendarCellResponse `json:"cells"`
}

type CalendarCellResponse struct {
	ReservationID string `json:"reservationId"`
	GuestName     string `json:"guestName"`
	Status        string `json:"status"`
}

type SnapshotResponse struct {
	Accommodations []*UnitResponse        `json:"accommodations"`
	Bookings       []*ReservationResponse `json:"bookings"`
	Users          []*UserResponse        `json:"users"`
}

type NormalizeResponse struct {
	Sheet          string                 `json:"sheet"`
	Accommodations []*UnitResponse        `json:"accommodations,omitempty"`
	Bookings       []*ReservationResponse `json:"bookings,omitempty"`
	Users          []*UserResponse        `json:"users,omitempty"`
}

func FromSummary(s *occupancy.Summary) *StatsResponse {
	return &StatsResponse{
		Mode:           string(s.Period.Mode()),
		Period:         s.Period.Prefix(),
		ConfirmedCount: s.ConfirmedCount,
		Revenue:        s.Revenue,
		OccupiedNights: s.OccupiedNights,
		ActiveUnits:    s.ActiveUnits,
		CapacityNights: s.CapacityNights,
		OccupancyRate:  math.Round(s.OccupancyRate*100) / 100,
	}
}

func FromToday(v *queries.TodayView) *TodayResponse {
	return &TodayResponse{
		Date:        v.Date,
		Occupied:    v.Occupied,
		ActiveUnits: v.ActiveUnits,
		Available:   v.Available,
	}
}

func FromCalendar(v *queries.CalendarView) *CalendarResponse {
	rows := make([]*CalendarRowResponse, len(v.Rows))
	for i, row := range v.Rows {
		cells := make([]*CalendarCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			if r := cell.Reservation; r != nil {
				cells[j] = &CalendarCellResponse{
					ReservationID: r.ID(),
					GuestName:     r.GuestName(),
					Status:        r.Status().String(),
				}
			}
		}
		rows[i] = &CalendarRowResponse{
			Accommodation: FromUnit(row.Unit),
			VIP:           row.VIP,
			Cells:         cells,
		}
	}
	return &CalendarResponse{
		Year:  v.Year,
		Month: int(v.Month),
		Days:  v.Days,
		Rows:  rows,
	}
}

func FromSnapshot(s *shared.Snapshot) *SnapshotResponse {
	return &SnapshotResponse{
		Accommodations: FromUnits(s.Units),
		Bookings:       FromReservations(s.Reservations),
		Users:          FromUsers(s.Users),
	}
}

func FromNormalized(sheet string, n *queries.NormalizedRows) *NormalizeResponse {
	res := &NormalizeResponse{Sheet: sheet}
	if n.Units != nil {
		res.Accommodations = FromUnits(n.Units)
	}
	if n.Reservations != nil {
		res.Bookings = FromReservations(n.Reservations)
	}
	if n.Users != nil {
		res.Users = FromUsers(n.Users)
	}
	return res
}
