package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etama123/mo-ment/internal/models"
)

func newTestPhoto(t *testing.T, id string, date models.DateKey) models.Photo {
	t.Helper()
	photo, err := models.NewPhoto("/api/images/"+id, date)
	require.NoError(t, err)
	photo.ID = id
	return *photo
}

func TestPhotoStore_Add(t *testing.T) {
	t.Run("appends in upload order", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))
		require.NoError(t, s.Add("cal", newTestPhoto(t, "b", "2025-07-15")))
		require.NoError(t, s.Add("cal", newTestPhoto(t, "c", "2025-07-15")))

		list := s.ListForDate("cal", "2025-07-15")
		require.Len(t, list, 3)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "b", list[1].ID)
		assert.Equal(t, "c", list[2].ID)
	})

	t.Run("rejects duplicate id anywhere in the calendar", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))

		err := s.Add("cal", newTestPhoto(t, "a", "2025-07-16"))
		assert.ErrorIs(t, err, models.ErrDuplicatePhotoID)
	})

	t.Run("same id in a different calendar is fine", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal-1", newTestPhoto(t, "a", "2025-07-15")))
		require.NoError(t, s.Add("cal-2", newTestPhoto(t, "a", "2025-07-15")))
	})

	t.Run("rejects missing date", func(t *testing.T) {
		s := NewPhotoStore()
		err := s.Add("cal", models.Photo{ID: "a", URL: "/x"})
		assert.ErrorIs(t, err, models.ErrPhotoDateRequired)
	})

	t.Run("stores a copy detached from the caller", func(t *testing.T) {
		s := NewPhotoStore()
		title := "before"
		photo := newTestPhoto(t, "a", "2025-07-15")
		photo.Title = &title
		require.NoError(t, s.Add("cal", photo))

		*photo.Title = "after"

		got, ok := s.Get("cal", "a")
		require.True(t, ok)
		assert.Equal(t, "before", *got.Title)
	})
}

func TestPhotoStore_Update(t *testing.T) {
	t.Run("merges set fields", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))

		note := "메모"
		updated, err := s.Update("cal", "a", models.PhotoUpdate{Note: &note})
		require.NoError(t, err)
		assert.Equal(t, "메모", *updated.Note)

		got, ok := s.Get("cal", "a")
		require.True(t, ok)
		assert.Equal(t, "메모", *got.Note)
	})

	t.Run("never moves the photo to another date", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))

		title := "still here"
		_, err := s.Update("cal", "a", models.PhotoUpdate{Title: &title})
		require.NoError(t, err)

		assert.Len(t, s.ListForDate("cal", "2025-07-15"), 1)
		got, ok := s.Get("cal", "a")
		require.True(t, ok)
		assert.Equal(t, models.DateKey("2025-07-15"), got.Date)
	})

	t.Run("keeps list position", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))
		require.NoError(t, s.Add("cal", newTestPhoto(t, "b", "2025-07-15")))

		title := "first"
		_, err := s.Update("cal", "a", models.PhotoUpdate{Title: &title})
		require.NoError(t, err)

		list := s.ListForDate("cal", "2025-07-15")
		assert.Equal(t, "a", list[0].ID)
	})

	t.Run("unknown photo", func(t *testing.T) {
		s := NewPhotoStore()
		_, err := s.Update("cal", "missing", models.PhotoUpdate{})
		assert.ErrorIs(t, err, models.ErrPhotoNotFound)
	})
}

func TestPhotoStore_Delete(t *testing.T) {
	t.Run("removes the photo and keeps the empty date", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))

		assert.True(t, s.Delete("cal", "a"))
		assert.Empty(t, s.ListForDate("cal", "2025-07-15"))

		byDate := s.PhotosByDate("cal")
		list, present := byDate["2025-07-15"]
		assert.True(t, present)
		assert.Empty(t, list)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		s := NewPhotoStore()
		assert.False(t, s.Delete("cal", "missing"))
	})

	t.Run("preserves order of remaining photos", func(t *testing.T) {
		s := NewPhotoStore()
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))
		require.NoError(t, s.Add("cal", newTestPhoto(t, "b", "2025-07-15")))
		require.NoError(t, s.Add("cal", newTestPhoto(t, "c", "2025-07-15")))

		require.True(t, s.Delete("cal", "b"))

		list := s.ListForDate("cal", "2025-07-15")
		require.Len(t, list, 2)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "c", list[1].ID)
	})
}

func TestPhotoStore_EnsureDate(t *testing.T) {
	s := NewPhotoStore()
	s.EnsureDate("cal", "2025-07-02")

	t.Run("reads as no photos", func(t *testing.T) {
		assert.Empty(t, s.ListForDate("cal", "2025-07-02"))
	})

	t.Run("is distinct from an absent date", func(t *testing.T) {
		byDate := s.PhotosByDate("cal")
		_, present := byDate["2025-07-02"]
		assert.True(t, present)
		_, absent := byDate["2025-07-03"]
		assert.False(t, absent)
	})

	t.Run("does not clobber existing photos", func(t *testing.T) {
		require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))
		s.EnsureDate("cal", "2025-07-15")
		assert.Len(t, s.ListForDate("cal", "2025-07-15"), 1)
	})
}

func TestPhotoStore_ListForDate(t *testing.T) {
	t.Run("absent date returns empty list", func(t *testing.T) {
		s := NewPhotoStore()
		list := s.ListForDate("cal", "2025-07-15")
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("result is detached from the store", func(t *testing.T) {
		s := NewPhotoStore()
		title := "original"
		photo := newTestPhoto(t, "a", "2025-07-15")
		photo.Title = &title
		require.NoError(t, s.Add("cal", photo))

		list := s.ListForDate("cal", "2025-07-15")
		*list[0].Title = "mutated"

		got, ok := s.Get("cal", "a")
		require.True(t, ok)
		assert.Equal(t, "original", *got.Title)
	})
}

func TestPhotoStore_DropBucket(t *testing.T) {
	s := NewPhotoStore()
	require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))

	s.DropBucket("cal")

	assert.Empty(t, s.ListForDate("cal", "2025-07-15"))
	assert.Empty(t, s.AllPhotos("cal"))
}

func TestPhotoStore_AllPhotos(t *testing.T) {
	s := NewPhotoStore()
	require.NoError(t, s.Add("cal", newTestPhoto(t, "a", "2025-07-15")))
	require.NoError(t, s.Add("cal", newTestPhoto(t, "b", "2025-07-16")))
	require.NoError(t, s.Add("other", newTestPhoto(t, "c", "2025-07-15")))

	all := s.AllPhotos("cal")
	assert.Len(t, all, 2)
}
