// utils/dates.go
package utils

import (
	"strings"
	"time"
)

// ISODate is the layout bookings use for preferred_date.
const ISODate = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseISODate parses a YYYY-MM-DD date in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(ISODate, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsSameDay reports whether the preferred date s falls on the calendar day of now.
// Dates that do not parse never match.
func IsSameDay(s string, now time.Time) bool {
	t, ok := ParseISODate(s, now.Location())
	return ok && DaysBetween(now, t) == 0
}
