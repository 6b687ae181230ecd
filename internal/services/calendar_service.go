package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/calendar"
	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/observability"
	"github.com/etama123/mo-ment/internal/store"
)

// CalendarService handles calendar lifecycle and grid rendering.
type CalendarService struct {
	calendars *store.CalendarStore
	photos    *store.PhotoStore
	shares    *store.ShareStore
	blobs     *store.BlobStore
	selection *SelectionController
	hub       *EventsHub
	logger    *zap.Logger
	weekStart time.Weekday
}

// NewCalendarService creates a new CalendarService
func NewCalendarService(
	calendars *store.CalendarStore,
	photos *store.PhotoStore,
	shares *store.ShareStore,
	blobs *store.BlobStore,
	selection *SelectionController,
	hub *EventsHub,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		calendars: calendars,
		photos:    photos,
		shares:    shares,
		blobs:     blobs,
		selection: selection,
		hub:       hub,
		logger:    logger,
		weekStart: time.Sunday,
	}
}

// Create adds an owned calendar with an empty photo bucket.
func (s *CalendarService) Create(ctx context.Context, name string) (models.Calendar, error) {
	_, span := observability.StartServiceSpan(ctx, "CalendarService", "Create")
	defer span.End()

	cal, err := models.NewCalendar(name)
	if err != nil {
		observability.RecordError(span, err)
		return models.Calendar{}, err
	}

	s.calendars.Add(*cal)
	s.photos.CreateBucket(cal.ID)
	s.hub.Publish(cal.ID, EventCalendarCreated, cal)

	observability.SetSuccess(span)
	return *cal, nil
}

// Rename changes a calendar's display name only.
func (s *CalendarService) Rename(ctx context.Context, id, name string) (models.Calendar, error) {
	_, span := observability.StartServiceSpan(ctx, "CalendarService", "Rename")
	defer span.End()

	cal, ok := s.calendars.Get(id)
	if !ok {
		observability.RecordError(span, models.ErrCalendarNotFound)
		return models.Calendar{}, models.ErrCalendarNotFound
	}
	if !cal.Editable() {
		observability.RecordError(span, models.ErrReadOnlyCalendar)
		return models.Calendar{}, models.ErrReadOnlyCalendar
	}
	if strings.TrimSpace(name) == "" {
		return models.Calendar{}, models.ErrCalendarNameRequired
	}

	if err := s.calendars.Rename(id, name); err != nil {
		observability.RecordError(span, err)
		return models.Calendar{}, err
	}

	cal, _ = s.calendars.Get(id)
	s.hub.Publish(id, EventCalendarRenamed, cal)
	observability.SetSuccess(span)
	return cal, nil
}

// Delete removes a calendar along with its photo bucket, sharing
// registry and image blobs. If the deleted calendar was the active
// selection, selection falls back to another owned calendar.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	_, span := observability.StartServiceSpan(ctx, "CalendarService", "Delete")
	defer span.End()

	cal, ok := s.calendars.Get(id)
	if !ok {
		observability.RecordError(span, models.ErrCalendarNotFound)
		return models.ErrCalendarNotFound
	}
	if !cal.Editable() {
		observability.RecordError(span, models.ErrReadOnlyCalendar)
		return models.ErrReadOnlyCalendar
	}

	for _, photo := range s.photos.AllPhotos(id) {
		ReleaseBlobs(s.blobs, photo)
	}
	s.photos.DropBucket(id)
	s.shares.DropCalendar(id)
	s.calendars.Remove(id)
	s.selection.CalendarDeleted(id)

	s.hub.Publish(id, EventCalendarDeleted, cal)
	s.logger.Info("calendar deleted", zap.String("calendar", id))
	observability.SetSuccess(span)
	return nil
}

// List returns all calendars in creation order.
func (s *CalendarService) List(ctx context.Context) []models.Calendar {
	return s.calendars.List()
}

// Get returns a calendar by id.
func (s *CalendarService) Get(ctx context.Context, id string) (models.Calendar, error) {
	cal, ok := s.calendars.Get(id)
	if !ok {
		return models.Calendar{}, models.ErrCalendarNotFound
	}
	return cal, nil
}

// Grid renders the 42-cell month grid for a calendar.
func (s *CalendarService) Grid(ctx context.Context, id string, month calendar.Month, selected models.DateKey, now time.Time) ([]calendar.DayCell, error) {
	_, span := observability.StartServiceSpan(ctx, "CalendarService", "Grid")
	defer span.End()

	if _, ok := s.calendars.Get(id); !ok {
		observability.RecordError(span, models.ErrCalendarNotFound)
		return nil, models.ErrCalendarNotFound
	}

	byDate := s.photos.PhotosByDate(id)
	lookup := func(key models.DateKey) []models.Photo {
		return byDate[key]
	}

	observability.SetSuccess(span)
	return calendar.BuildGrid(month, lookup, selected, now, s.weekStart), nil
}
