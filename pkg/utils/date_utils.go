package utils

import (
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ParseTravelDate accepts the date-only form used by itinerary legs
// ("2006-01-02") as well as a full RFC3339 instant.
func ParseTravelDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// StayDays returns the signed whole-day difference between arrival and
// departure. A stay is only valid when the result is positive.
func StayDays(arrival, departure time.Time) int {
	a := truncateToDate(arrival)
	d := truncateToDate(departure)
	return int(d.Sub(a).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatInstant serializes a timestamp as a full ISO-8601 instant in UTC.
// Returns "" for the zero time so callers can decide how to render it.
func FormatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatDate serializes a timestamp as the date-only ISO-8601 form.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateOnlyLayout)
}
