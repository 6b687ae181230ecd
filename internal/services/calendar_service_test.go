package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etama123/mo-ment/internal/calendar"
	"github.com/etama123/mo-ment/internal/models"
)

func TestCalendarService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new calendars are owned and start empty", func(t *testing.T) {
		env := newTestEnv(t)

		cal, err := env.calendarService.Create(ctx, "새 캘린더")
		require.NoError(t, err)
		assert.Equal(t, models.CalendarOwn, cal.Type)

		list := env.calendarService.List(ctx)
		require.Len(t, list, 1)
		assert.Equal(t, cal.ID, list[0].ID)

		photos, err := env.photoService.ListForDate(ctx, cal.ID, "2025-07-15")
		require.NoError(t, err)
		assert.Empty(t, photos)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.calendarService.Create(ctx, "   ")
		assert.ErrorIs(t, err, models.ErrCalendarNameRequired)
	})

	t.Run("appends to the end of the list", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		cal, err := env.calendarService.Create(ctx, "여섯 번째")
		require.NoError(t, err)

		list := env.calendarService.List(ctx)
		require.Len(t, list, 6)
		assert.Equal(t, cal.ID, list[5].ID)
	})
}

func TestCalendarService_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("renames an owned calendar in place", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		cal, err := env.calendarService.Rename(ctx, "me", "새 이름")
		require.NoError(t, err)
		assert.Equal(t, "새 이름", cal.Name)

		list := env.calendarService.List(ctx)
		assert.Equal(t, "me", list[0].ID)
		assert.Equal(t, "새 이름", list[0].Name)
	})

	t.Run("refuses contributed calendars", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		_, err := env.calendarService.Rename(ctx, "friend1", "탈취")
		assert.ErrorIs(t, err, models.ErrReadOnlyCalendar)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		_, err := env.calendarService.Rename(ctx, "me", "  ")
		assert.ErrorIs(t, err, models.ErrCalendarNameRequired)
	})

	t.Run("unknown calendar", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.calendarService.Rename(ctx, "missing", "이름")
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
	})
}

func TestCalendarService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to photos, shares and blobs", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		_, err := env.photoService.Upload(ctx, "me", UploadRequest{
			Date:  "2025-07-04",
			Files: []UploadFile{pngFile(t, "a.png")},
		})
		require.NoError(t, err)
		require.Equal(t, 2, env.blobs.Len())

		require.NoError(t, env.calendarService.Delete(ctx, "me"))

		_, err = env.calendarService.Get(ctx, "me")
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
		assert.Zero(t, env.blobs.Len())

		shares, err := env.shareService.List(ctx, "me")
		require.NoError(t, err)
		assert.Empty(t, shares)
	})

	t.Run("refuses contributed calendars", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		err := env.calendarService.Delete(ctx, "friend1")
		assert.ErrorIs(t, err, models.ErrReadOnlyCalendar)

		_, getErr := env.calendarService.Get(ctx, "friend1")
		assert.NoError(t, getErr)
	})

	t.Run("unknown calendar", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.calendarService.Delete(ctx, "missing")
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
	})
}

func TestCalendarService_Grid(t *testing.T) {
	ctx := context.Background()
	july := calendar.Month{Year: 2025, Month: time.July}
	now := time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC)

	t.Run("renders seeded photo days", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		cells, err := env.calendarService.Grid(ctx, "me", july, "2025-07-15", now)
		require.NoError(t, err)
		require.Len(t, cells, calendar.GridCells)

		var fifteenth calendar.DayCell
		for _, cell := range cells {
			if cell.Date == "2025-07-15" {
				fifteenth = cell
			}
		}

		assert.True(t, fifteenth.HasPhotos)
		assert.Equal(t, 2, fifteenth.PhotoCount)
		assert.True(t, fifteenth.Selected)
		assert.Equal(t, "/placeholder.svg", fifteenth.Thumbnail)
	})

	t.Run("grid reflects deletes immediately", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		require.NoError(t, env.photoService.Delete(ctx, "me", "me-20-1"))

		cells, err := env.calendarService.Grid(ctx, "me", july, "", now)
		require.NoError(t, err)

		for _, cell := range cells {
			if cell.Date == "2025-07-20" {
				assert.False(t, cell.HasPhotos)
				assert.Zero(t, cell.PhotoCount)
			}
		}
	})

	t.Run("unknown calendar", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.calendarService.Grid(ctx, "missing", july, "", now)
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
	})
}
