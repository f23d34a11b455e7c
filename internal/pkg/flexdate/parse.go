// Package flexdate turns the date cells found in hand-maintained sheets into
// canonical calendar days (YYYY-MM-DD).
package flexdate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// buddhistEraThreshold separates Gregorian years from Buddhist-Era years, which run 543 ahead.
const (
	buddhistEraThreshold = 2400
	buddhistEraOffset    = 543
)

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// Parse canonicalises v using the process-local zone for instants.
func Parse(v any) string {
	return ParseIn(v, time.Local)
}

// ParseIn canonicalises v, reducing instants to their calendar day in loc.
// It returns "" when v is empty or not recognised; callers pick the default.
func ParseIn(v any, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(Layout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(Layout)
	}

	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return ""
	}

	if strings.Contains(s, "T") && strings.Contains(s, "Z") {
		for _, layout := range instantLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.In(loc).Format(Layout)
			}
		}
	}

	if strings.Contains(s, "/") {
		if out, ok := parseSlashed(s); ok {
			return out
		}
	}

	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) == 3 && len(parts[0]) == 4 {
			return s
		}
	}

	return ""
}

// parseSlashed reads D/M/Y, swapping day and month when only that order is plausible.
func parseSlashed(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", false
	}

	day, ok1 := leadingInt(parts[0])
	month, ok2 := leadingInt(parts[1])
	year, ok3 := leadingInt(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return "", false
	}

	if month > 12 && day <= 12 {
		day, month = month, day
	}
	if year > buddhistEraThreshold {
		year -= buddhistEraOffset
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// leadingInt reads an optionally signed run of leading decimal digits and
// ignores anything after it, so "15 มี.ค." yields 15.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		if !t {
			return ""
		}
		return "true"
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
