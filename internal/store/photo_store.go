// Package store holds the in-memory state of the application: photo
// buckets, calendars, sharing registries and image blobs. Nothing here
// is persisted; process restart loses all state by design.
package store

import (
	"sync"

	"github.com/etama123/mo-ment/internal/models"
)

// PhotoStore is the two-level mapping calendar id -> date key -> ordered
// photo list. List order is insertion order, which equals upload order.
// All mutations must go through this API; returned photos are copies.
type PhotoStore struct {
	mu      sync.RWMutex
	buckets map[string]map[models.DateKey][]models.Photo
}

// NewPhotoStore creates an empty PhotoStore.
func NewPhotoStore() *PhotoStore {
	return &PhotoStore{
		buckets: make(map[string]map[models.DateKey][]models.Photo),
	}
}

// CreateBucket registers an empty photo mapping for a calendar.
func (s *PhotoStore) CreateBucket(calendarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[calendarID]; !ok {
		s.buckets[calendarID] = make(map[models.DateKey][]models.Photo)
	}
}

// DropBucket removes a calendar's photo mapping entirely.
func (s *PhotoStore) DropBucket(calendarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, calendarID)
}

// Add appends a photo to the tail of its date's list, creating the list
// if absent. The photo's ID must be unique within the calendar.
func (s *PhotoStore) Add(calendarID string, photo models.Photo) error {
	if photo.Date == "" {
		return models.ErrPhotoDateRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[calendarID]
	if !ok {
		bucket = make(map[models.DateKey][]models.Photo)
		s.buckets[calendarID] = bucket
	}

	for _, list := range bucket {
		for _, p := range list {
			if p.ID == photo.ID {
				return models.ErrDuplicatePhotoID
			}
		}
	}

	bucket[photo.Date] = append(bucket[photo.Date], photo.Clone())
	return nil
}

// EnsureDate creates an empty list for a date if it is absent. Empty
// and absent both read as "no photos" but are distinct states.
func (s *PhotoStore) EnsureDate(calendarID string, date models.DateKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[calendarID]
	if !ok {
		bucket = make(map[models.DateKey][]models.Photo)
		s.buckets[calendarID] = bucket
	}
	if _, ok := bucket[date]; !ok {
		bucket[date] = []models.Photo{}
	}
}

// Update merges the set fields of update into the photo with the given
// id. Photo ids are not indexed by date, so every date's list is
// scanned. The photo never moves between date buckets.
func (s *PhotoStore) Update(calendarID, photoID string, update models.PhotoUpdate) (models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[calendarID]
	if !ok {
		return models.Photo{}, models.ErrPhotoNotFound
	}

	for date, list := range bucket {
		for i := range list {
			if list[i].ID == photoID {
				update.Apply(&list[i])
				bucket[date] = list
				return list[i].Clone(), nil
			}
		}
	}

	return models.Photo{}, models.ErrPhotoNotFound
}

// Delete removes the photo wherever it is found across all dates. It
// reports whether a photo was removed; a missing id is a no-op. The
// now-empty date entry is kept: empty and absent are both "no photos"
// to readers but remain distinct states.
func (s *PhotoStore) Delete(calendarID, photoID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[calendarID]
	if !ok {
		return false
	}

	for date, list := range bucket {
		for i := range list {
			if list[i].ID == photoID {
				bucket[date] = append(list[:i], list[i+1:]...)
				return true
			}
		}
	}

	return false
}

// Get returns a copy of the photo with the given id, scanning all dates.
func (s *PhotoStore) Get(calendarID, photoID string) (models.Photo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket, ok := s.buckets[calendarID]
	if !ok {
		return models.Photo{}, false
	}

	for _, list := range bucket {
		for _, p := range list {
			if p.ID == photoID {
				return p.Clone(), true
			}
		}
	}

	return models.Photo{}, false
}

// ListForDate returns the date's photos in upload order, or an empty
// list if the date is absent. The result is a copy.
func (s *PhotoStore) ListForDate(calendarID string, date models.DateKey) []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.buckets[calendarID][date]
	out := make([]models.Photo, 0, len(list))
	for _, p := range list {
		out = append(out, p.Clone())
	}
	return out
}

// PhotosByDate returns a snapshot of a calendar's full date mapping,
// suitable as a grid lookup.
func (s *PhotoStore) PhotosByDate(calendarID string) map[models.DateKey][]models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.DateKey][]models.Photo, len(s.buckets[calendarID]))
	for date, list := range s.buckets[calendarID] {
		copied := make([]models.Photo, 0, len(list))
		for _, p := range list {
			copied = append(copied, p.Clone())
		}
		out[date] = copied
	}
	return out
}

// AllPhotos returns every photo in a calendar across all dates. Used
// when cascading a calendar delete to release image blobs.
func (s *PhotoStore) AllPhotos(calendarID string) []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Photo
	for _, list := range s.buckets[calendarID] {
		for _, p := range list {
			out = append(out, p.Clone())
		}
	}
	return out
}
