package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etama123/mo-ment/internal/models"
)

func newTestCalendar(id, name string, typ models.CalendarType) models.Calendar {
	return models.Calendar{ID: id, Name: name, Type: typ, CreatedAt: time.Now().UTC()}
}

func TestCalendarStore_Add(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		s := NewCalendarStore()
		s.Add(newTestCalendar("a", "first", models.CalendarOwn))
		s.Add(newTestCalendar("b", "second", models.CalendarContributed))
		s.Add(newTestCalendar("c", "third", models.CalendarOwn))

		list := s.List()
		require.Len(t, list, 3)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "b", list[1].ID)
		assert.Equal(t, "c", list[2].ID)
	})

	t.Run("re-adding keeps position", func(t *testing.T) {
		s := NewCalendarStore()
		s.Add(newTestCalendar("a", "first", models.CalendarOwn))
		s.Add(newTestCalendar("b", "second", models.CalendarOwn))
		s.Add(newTestCalendar("a", "renamed", models.CalendarOwn))

		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "renamed", list[0].Name)
	})
}

func TestCalendarStore_Rename(t *testing.T) {
	s := NewCalendarStore()
	s.Add(newTestCalendar("a", "before", models.CalendarOwn))

	t.Run("changes only the name", func(t *testing.T) {
		require.NoError(t, s.Rename("a", "after"))

		cal, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, "after", cal.Name)
		assert.Equal(t, models.CalendarOwn, cal.Type)
	})

	t.Run("unknown calendar", func(t *testing.T) {
		assert.ErrorIs(t, s.Rename("missing", "x"), models.ErrCalendarNotFound)
	})
}

func TestCalendarStore_Remove(t *testing.T) {
	s := NewCalendarStore()
	s.Add(newTestCalendar("a", "first", models.CalendarOwn))
	s.Add(newTestCalendar("b", "second", models.CalendarOwn))

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestCalendarStore_FirstOwned(t *testing.T) {
	t.Run("skips contributed calendars", func(t *testing.T) {
		s := NewCalendarStore()
		s.Add(newTestCalendar("friend", "친구1", models.CalendarContributed))
		s.Add(newTestCalendar("mine", "나의 캘린더", models.CalendarOwn))

		cal, ok := s.FirstOwned("")
		require.True(t, ok)
		assert.Equal(t, "mine", cal.ID)
	})

	t.Run("skips the excluded id", func(t *testing.T) {
		s := NewCalendarStore()
		s.Add(newTestCalendar("first", "a", models.CalendarOwn))
		s.Add(newTestCalendar("second", "b", models.CalendarOwn))

		cal, ok := s.FirstOwned("first")
		require.True(t, ok)
		assert.Equal(t, "second", cal.ID)
	})

	t.Run("no owned calendars left", func(t *testing.T) {
		s := NewCalendarStore()
		s.Add(newTestCalendar("friend", "친구1", models.CalendarContributed))

		_, ok := s.FirstOwned("")
		assert.False(t, ok)
	})
}
