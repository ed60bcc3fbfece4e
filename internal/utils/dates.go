package utils

import "time"

// DateLayout is the calendar-date form used across the application.
// Dates are kept as fixed-width ISO strings so that lexicographic
// comparison matches chronological order.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a calendar date, dropping the time component.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
