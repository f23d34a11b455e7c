package occupancy

import (
	"strings"

	"parkstay/internal/domain/reservation"
	"parkstay/internal/domain/unit"
	"parkstay/internal/pkg/flexdate"
)

type Summary struct {
	Period         Period
	ConfirmedCount int
	Revenue        float64
	OccupiedNights int
	ActiveUnits    int
	CapacityNights int
	// OccupancyRate is a percentage in [0, 100] for consistent data.
	OccupancyRate float64
}

// Aggregate counts confirmed bookings touching p and sums nightly revenue and
// occupied nights falling inside p. Bookings for unknown units add nothing.
func Aggregate(p Period, reservations []*reservation.Reservation, units []*unit.Unit) Summary {
	index := unit.Index(units)
	s := Summary{
		Period:      p,
		ActiveUnits: unit.CountActive(units),
	}

	for _, r := range reservations {
		if r.IsCancelled() || !touches(p, r.Stay()) {
			continue
		}
		if !r.IsConfirmed() {
			continue
		}
		s.ConfirmedCount++

		u, ok := index[r.UnitID()]
		if !ok {
			continue
		}
		nights := nightsWithin(p, r.Stay())
		s.OccupiedNights += nights
		s.Revenue += float64(nights) * u.Price()
	}

	s.CapacityNights = s.ActiveUnits * p.Days()
	if s.CapacityNights > 0 {
		s.OccupancyRate = float64(s.OccupiedNights) / float64(s.CapacityNights) * 100
	}
	return s
}

// touches is a coarse prefilter: check-in or check-out inside the period, or a
// stay that starts before the period and ends after its first prefix.
func touches(p Period, stay reservation.Stay) bool {
	prefix := p.Prefix()
	in, out := stay.CheckIn(), stay.CheckOut()
	return strings.HasPrefix(in, prefix) ||
		strings.HasPrefix(out, prefix) ||
		(in < prefix && out > prefix)
}

// nightsWithin counts the nights of stay that fall inside p.
func nightsWithin(p Period, stay reservation.Stay) int {
	in, ok1 := flexdate.ParseDay(stay.CheckIn())
	out, ok2 := flexdate.ParseDay(stay.CheckOut())
	if !ok1 || !ok2 {
		return 0
	}
	start, _ := flexdate.ParseDay(p.Start())
	end, _ := flexdate.ParseDay(p.End())

	if in.Before(start) {
		in = start
	}
	if out.After(end) {
		out = end
	}
	if !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}
