package analytics

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseLocalDate parses the YYYY-MM-DD part of a date string into local
// midnight, ignoring any time/timezone suffix. Feeding the full string to a
// timezone-aware parser and rendering the result at local midnight shifts
// the calendar day in negative-UTC offsets; building the date from explicit
// year/month/day components avoids that.
//
// Malformed input yields the zero time, never an error.
func ParseLocalDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	datePart := s
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		datePart = s[:i]
	}
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return time.Time{}
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// FormatLocalDate renders the calendar day of t in its own location, so a
// UTC-midnight value read from a date column keeps its stored day.
func FormatLocalDate(t time.Time) string {
	return t.Format(dateLayout)
}

func sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}
