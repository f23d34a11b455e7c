package queries

import (
	"strings"
	"time"

	"parkstay/internal/pkg/errs"
	"parkstay/internal/pkg/flexdate"
)

var ErrInvalidAnchor = errs.New("date must be YYYY-MM-DD or YYYY-MM")

// resolveAnchor parses a day or a month; empty means today.
func resolveAnchor(s, today string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = today
	}
	if t, ok := flexdate.ParseDay(s); ok {
		return t, nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t, nil
	}
	return time.Time{}, errs.Mark(ErrInvalidAnchor, errs.ErrDomainValidation)
}
