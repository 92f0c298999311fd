package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD format.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD format", value)
	}
	return t, nil
}

// FormatDate formats a time as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp formats a time as RFC3339.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
