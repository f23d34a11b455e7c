package flexdate

import (
	"fmt"
	"time"
)

func Format(t time.Time) string {
	return t.Format(Layout)
}

// ParseDay reads a canonical day leniently ("2024-6-1" is accepted) and rejects
// out-of-range months or days. The result is midnight UTC.
func ParseDay(s string) (time.Time, bool) {
	var y, m, d int
	var rest string
	n, _ := fmt.Sscanf(s, "%d-%d-%d%s", &y, &m, &d, &rest)
	if n != 3 {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > DaysInMonth(y, time.Month(m)) {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// AddDays shifts a canonical day. Unparseable input is returned unchanged.
func AddDays(day string, n int) string {
	t, ok := ParseDay(day)
	if !ok {
		return day
	}
	return Format(t.AddDate(0, 0, n))
}

// Today is the calendar day of now as seen in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return Format(now.In(loc))
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDays lists every day of the month in order.
func MonthDays(year int, month time.Month) []string {
	n := DaysInMonth(year, month)
	days := make([]string, n)
	for i := range n {
		days[i] = fmt.Sprintf("%04d-%02d-%02d", year, int(month), i+1)
	}
	return days
}
