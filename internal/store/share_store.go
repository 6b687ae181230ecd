package store

import (
	"sync"

	"github.com/etama123/mo-ment/internal/models"
)

// ShareStore maps a calendar id to its sharing registry: the ordered
// list of invited users. Repeated invites to the same address are kept
// as separate entries.
type ShareStore struct {
	mu         sync.RWMutex
	byCalendar map[string][]models.SharedUser
}

// NewShareStore creates an empty ShareStore.
func NewShareStore() *ShareStore {
	return &ShareStore{
		byCalendar: make(map[string][]models.SharedUser),
	}
}

// Add appends a shared user to a calendar's registry.
func (s *ShareStore) Add(calendarID string, user models.SharedUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byCalendar[calendarID] = append(s.byCalendar[calendarID], user)
}

// Remove revokes a shared user by id. It reports whether the id existed.
func (s *ShareStore) Remove(calendarID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byCalendar[calendarID]
	for i, u := range list {
		if u.ID == userID {
			s.byCalendar[calendarID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a calendar's shared users in invite order.
func (s *ShareStore) List(calendarID string) []models.SharedUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byCalendar[calendarID]
	out := make([]models.SharedUser, len(list))
	copy(out, list)
	return out
}

// DropCalendar removes a calendar's registry entirely.
func (s *ShareStore) DropCalendar(calendarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byCalendar, calendarID)
}
