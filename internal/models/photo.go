package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Photo is a single photo pinned to one calendar day. A photo belongs to
// exactly one calendar's date bucket; it is never shared across dates or
// calendars.
type Photo struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	ThumbURL   string    `json:"thumbUrl,omitempty"`
	Date       DateKey   `json:"date"`
	Title      *string   `json:"title,omitempty"`
	Note       *string   `json:"note,omitempty"`
	Location   *string   `json:"location,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// NewPhoto creates a new Photo with a generated ID. The URL and date are
// required; title, note and location are set afterwards through the
// optional field pointers.
func NewPhoto(url string, date DateKey) (*Photo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyPhotoURL
	}
	if date == "" {
		return nil, ErrPhotoDateRequired
	}
	if _, err := ParseDateKey(string(date)); err != nil {
		return nil, err
	}

	return &Photo{
		ID:         uuid.New().String(),
		URL:        url,
		Date:       date,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// Clone returns a deep copy so callers cannot mutate stored state
// through the optional field pointers.
func (p Photo) Clone() Photo {
	c := p
	c.Title = cloneString(p.Title)
	c.Note = cloneString(p.Note)
	c.Location = cloneString(p.Location)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// PhotoUpdate carries a partial edit of a photo. Nil fields are left
// unchanged. The owning date is deliberately absent: edits never move a
// photo between date buckets.
type PhotoUpdate struct {
	Title    *string `json:"title,omitempty"`
	Note     *string `json:"note,omitempty"`
	Location *string `json:"location,omitempty"`
}

// Apply merges the set fields into the photo.
func (u PhotoUpdate) Apply(p *Photo) {
	if u.Title != nil {
		p.Title = cloneString(u.Title)
	}
	if u.Note != nil {
		p.Note = cloneString(u.Note)
	}
	if u.Location != nil {
		p.Location = cloneString(u.Location)
	}
}

// Errors
type PhotoError struct {
	Message string
}

func (e PhotoError) Error() string {
	return e.Message
}

var (
	ErrPhotoNotFound     = PhotoError{"photo not found"}
	ErrDuplicatePhotoID  = PhotoError{"photo id already exists"}
	ErrEmptyPhotoURL     = PhotoError{"photo url cannot be empty"}
	ErrPhotoDateRequired = PhotoError{"photo date is required"}
)
