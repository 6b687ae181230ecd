package store

import (
	"sync"

	"github.com/google/uuid"
)

// Blob is an in-memory image resource: the uploaded bytes or a derived
// thumbnail, addressed by an opaque id.
type Blob struct {
	ID          string
	ContentType string
	Data        []byte
}

// BlobStore holds image bytes in memory. Blobs are transient resources:
// they must be released when the photo referencing them is deleted, or
// they leak for the lifetime of the process.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

// NewBlobStore creates an empty BlobStore.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string]Blob)}
}

// Put stores bytes under a fresh id and returns the blob.
func (s *BlobStore) Put(contentType string, data []byte) Blob {
	blob := Blob{
		ID:          uuid.New().String(),
		ContentType: contentType,
		Data:        data,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[blob.ID] = blob
	return blob
}

// Get returns a blob by id.
func (s *BlobStore) Get(id string) (Blob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[id]
	return blob, ok
}

// Delete releases a blob. Unknown ids are a no-op.
func (s *BlobStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, id)
}

// Len returns the number of stored blobs.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
