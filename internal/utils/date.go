package utils

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jesswhitlock/verdant/internal/constants"
)

// ParseDate parses a date string in the canonical format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats a time as a canonical date string.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the current date string according to the supplied clock.
// Commands never read the wall clock directly so that tests can inject a
// fake clock.
func Today(clock clockwork.Clock) string {
	return FormatDate(clock.Now())
}

// DaysBetween returns the number of whole days from an earlier date string
// to a later one. Both arguments must be canonical date strings.
func DaysBetween(from, to string) (int, error) {
	start, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// AddDays returns the canonical date string n days after the given date.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// ValidDate reports whether the string parses as a canonical date.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
