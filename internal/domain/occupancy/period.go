// Package occupancy summarises bookings over a calendar month or year.
package occupancy

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parkstay/internal/pkg/flexdate"
)

var ErrInvalidMode = errors.New("period mode must be month or year")

type Mode string

const (
	ModeMonth Mode = "month"
	ModeYear  Mode = "year"
)

func (m Mode) IsValid() bool {
	return m == ModeMonth || m == ModeYear
}

// Period is a calendar month or year. Only the calendar fields of the anchor matter.
type Period struct {
	mode  Mode
	year  int
	month time.Month
}

func MonthOf(anchor time.Time) Period {
	return Period{mode: ModeMonth, year: anchor.Year(), month: anchor.Month()}
}

func YearOf(anchor time.Time) Period {
	return Period{mode: ModeYear, year: anchor.Year(), month: time.January}
}

func NewPeriod(mode Mode, anchor time.Time) (Period, error) {
	switch mode {
	case ModeMonth:
		return MonthOf(anchor), nil
	case ModeYear:
		return YearOf(anchor), nil
	default:
		return Period{}, ErrInvalidMode
	}
}

func (p Period) Mode() Mode        { return p.mode }
func (p Period) Year() int         { return p.year }
func (p Period) Month() time.Month { return p.month }

// Prefix is the canonical-date prefix shared by every day of the period: "YYYY-MM" or "YYYY".
func (p Period) Prefix() string {
	if p.mode == ModeYear {
		return fmt.Sprintf("%04d", p.year)
	}
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

// Start is the first day of the period.
func (p Period) Start() string {
	if p.mode == ModeYear {
		return fmt.Sprintf("%04d-01-01", p.year)
	}
	return fmt.Sprintf("%04d-%02d-01", p.year, int(p.month))
}

// End is the first day after the period.
func (p Period) End() string {
	if p.mode == ModeYear {
		return fmt.Sprintf("%04d-01-01", p.year+1)
	}
	return flexdate.Format(time.Date(p.year, p.month+1, 1, 0, 0, 0, 0, time.UTC))
}

// Days is the length of the period. Years use the every-fourth-year leap rule.
func (p Period) Days() int {
	if p.mode == ModeYear {
		if p.year%4 == 0 {
			return 366
		}
		return 365
	}
	return flexdate.DaysInMonth(p.year, p.month)
}

func (p Period) Contains(day string) bool {
	return strings.HasPrefix(day, p.Prefix())
}

func (p Period) String() string {
	return string(p.mode) + ":" + p.Prefix()
}
