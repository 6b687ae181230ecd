package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CalendarType distinguishes calendars the user owns from calendars
// contributed by other users.
type CalendarType string

const (
	// CalendarOwn is a calendar the active user can mutate.
	CalendarOwn CalendarType = "own"
	// CalendarContributed is a friend's calendar, read-only in this design.
	CalendarContributed CalendarType = "contributed"
)

// IsValidCalendarType checks if a calendar type value is valid
func IsValidCalendarType(t string) bool {
	switch CalendarType(t) {
	case CalendarOwn, CalendarContributed:
		return true
	}
	return false
}

// Calendar is one photo calendar. Each calendar owns exactly one set of
// date buckets in the photo store, keyed by its ID.
type Calendar struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CalendarType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewCalendar creates an owned calendar with a generated ID.
func NewCalendar(name string) (*Calendar, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCalendarNameRequired
	}

	return &Calendar{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Type:      CalendarOwn,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Editable reports whether mutations are allowed on this calendar.
func (c *Calendar) Editable() bool {
	return c.Type == CalendarOwn
}

// Calendar errors
type CalendarError struct {
	Message string
}

func (e CalendarError) Error() string {
	return e.Message
}

var (
	ErrCalendarNotFound     = CalendarError{"calendar not found"}
	ErrCalendarNameRequired = CalendarError{"calendar name is required"}
	ErrReadOnlyCalendar     = CalendarError{"this calendar is view-only, changes are not allowed"}
)
