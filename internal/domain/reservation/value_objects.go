package reservation

import (
	"errors"
	"fmt"

	"parkstay/internal/pkg/flexdate"
)

var ErrInvalidStay = errors.New("check-out must be after check-in")

// Stay is the half-open range of nights [checkIn, checkOut). The check-out day
// itself is free for the next guest.
type Stay struct {
	checkIn  string
	checkOut string
}

func NewStay(checkIn, checkOut string) (Stay, error) {
	in, ok := flexdate.ParseDay(checkIn)
	if !ok {
		return Stay{}, fmt.Errorf("%w: check-in %q is not a calendar day", ErrInvalidStay, checkIn)
	}
	out, ok := flexdate.ParseDay(checkOut)
	if !ok {
		return Stay{}, fmt.Errorf("%w: check-out %q is not a calendar day", ErrInvalidStay, checkOut)
	}
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: flexdate.Format(in), checkOut: flexdate.Format(out)}, nil
}

// StayOf wraps already-canonical days without validation, so that rows which
// arrived inverted from storage can still be carried around.
func StayOf(checkIn, checkOut string) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() string  { return s.checkIn }
func (s Stay) CheckOut() string { return s.checkOut }

func (s Stay) IsValid() bool {
	return s.checkOut > s.checkIn
}

// Nights counts occupied nights; zero for an inverted or unparseable stay.
func (s Stay) Nights() int {
	in, ok1 := flexdate.ParseDay(s.checkIn)
	out, ok2 := flexdate.ParseDay(s.checkOut)
	if !ok1 || !ok2 || !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// Overlaps compares canonical strings, which order the same way as the days they name.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn < other.checkOut && s.checkOut > other.checkIn
}

// Contains reports whether day is one of the occupied nights.
func (s Stay) Contains(day string) bool {
	return s.checkIn <= day && day < s.checkOut
}

func (s Stay) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn, s.checkOut)
}

type Details struct {
	UnitID     string
	GuestName  string
	GuestPhone string
	Stay       Stay
	Status     Status
	Notes      string
}
