package dateutil

import (
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
)

// All day arithmetic is anchored at midnight UTC so that differences are
// whole days regardless of the host timezone or DST shifts.

// Today returns the current day string (YYYY-MM-DD) in UTC.
func Today() string {
	return time.Now().UTC().Format(constants.DateFormat)
}

// Parse converts a day string (YYYY-MM-DD) to midnight UTC. Malformed input
// yields the zero time; validating user input is the caller's job (see Valid).
func Parse(day string) time.Time {
	t, _ := time.Parse(constants.DateFormat, day)
	return t
}

// Format converts a time to its canonical day string.
func Format(t time.Time) string {
	return t.UTC().Format(constants.DateFormat)
}

// Valid reports whether day is a well-formed YYYY-MM-DD string.
func Valid(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}

// DaysBetween returns the signed number of whole days from a to b
// (negative when b is before a).
func DaysBetween(a, b string) int {
	return int(Parse(b).Sub(Parse(a)).Hours() / 24)
}

// AddDays returns the day n days after day (n may be negative).
func AddDays(day string, n int) string {
	return Format(Parse(day).AddDate(0, 0, n))
}
