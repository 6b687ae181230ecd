package store

import (
	"sync"

	"github.com/etama123/mo-ment/internal/models"
)

// CalendarStore holds the calendar list in insertion order. Order
// matters: when the active calendar is deleted, selection falls back to
// the first remaining owned calendar.
type CalendarStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Calendar
}

// NewCalendarStore creates an empty CalendarStore.
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		byID: make(map[string]models.Calendar),
	}
}

// Add registers a calendar. Adding an existing id overwrites in place
// without changing its position.
func (s *CalendarStore) Add(cal models.Calendar) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[cal.ID]; !ok {
		s.order = append(s.order, cal.ID)
	}
	s.byID[cal.ID] = cal
}

// Get returns a calendar by id.
func (s *CalendarStore) Get(id string) (models.Calendar, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cal, ok := s.byID[id]
	return cal, ok
}

// Rename changes only the display name.
func (s *CalendarStore) Rename(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cal, ok := s.byID[id]
	if !ok {
		return models.ErrCalendarNotFound
	}
	cal.Name = name
	s.byID[id] = cal
	return nil
}

// Remove deletes a calendar entry. It reports whether the id existed.
func (s *CalendarStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all calendars in insertion order.
func (s *CalendarStore) List() []models.Calendar {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Calendar, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// FirstOwned returns the first owned calendar whose id differs from
// exclude. Contributed calendars are never eligible.
func (s *CalendarStore) FirstOwned(exclude string) (models.Calendar, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		cal := s.byID[id]
		if cal.Type == models.CalendarOwn && cal.ID != exclude {
			return cal, true
		}
	}
	return models.Calendar{}, false
}
