package models

import (
	"time"
)

// DateKey is the canonical YYYY-MM-DD string that joins grid cells,
// photo buckets, and the detail view. It is the only identifier passed
// between the calendar grid and the photo store.
type DateKey string

const dateKeyLayout = "2006-01-02"

// ParseDateKey validates a raw string as a canonical date key.
func ParseDateKey(raw string) (DateKey, error) {
	if _, err := time.Parse(dateKeyLayout, raw); err != nil {
		return "", ErrInvalidDateKey
	}
	return DateKey(raw), nil
}

// KeyOf returns the date key for a moment in time, at day granularity.
func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// Time returns midnight UTC of the key's day.
func (k DateKey) Time() (time.Time, error) {
	return time.Parse(dateKeyLayout, string(k))
}

// InMonth reports whether the key falls within the given year and month.
func (k DateKey) InMonth(year int, month time.Month) bool {
	t, err := k.Time()
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

func (k DateKey) String() string {
	return string(k)
}

// DateKeyError represents a date key validation failure
type DateKeyError struct {
	Message string
}

func (e DateKeyError) Error() string {
	return e.Message
}

var ErrInvalidDateKey = DateKeyError{"date must be in YYYY-MM-DD format"}
