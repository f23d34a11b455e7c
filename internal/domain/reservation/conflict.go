package reservation

// Candidate is a prospective stay checked against existing bookings.
// ExcludeID is set when editing so a booking never collides with itself.
type Candidate struct {
	UnitID    string
	Stay      Stay
	ExcludeID string
}

// FindConflict returns the first booking, in slice order, that holds the same
// unit on any night of the candidate stay. Cancelled bookings never conflict.
// Callers reject inverted stays before asking.
func FindConflict(c Candidate, existing []*Reservation) (*Reservation, bool) {
	for _, r := range existing {
		if r.IsCancelled() {
			continue
		}
		if c.ExcludeID != "" && r.id == c.ExcludeID {
			continue
		}
		if r.unitID != c.UnitID {
			continue
		}
		if c.Stay.Overlaps(r.stay) {
			return r, true
		}
	}
	return nil, false
}

// OccupantOn returns the booking holding unitID on day, if any.
func OccupantOn(unitID, day string, set []*Reservation) (*Reservation, bool) {
	for _, r := range set {
		if r.unitID == unitID && r.OccupiesOn(day) {
			return r, true
		}
	}
	return nil, false
}

// CountOccupiedOn counts non-cancelled bookings whose stay covers day.
func CountOccupiedOn(day string, set []*Reservation) int {
	n := 0
	for _, r := range set {
		if r.OccupiesOn(day) {
			n++
		}
	}
	return n
}
