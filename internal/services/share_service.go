package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/observability"
	"github.com/etama123/mo-ment/internal/store"
)

// ShareService manages a calendar's sharing registry and derives share
// links.
type ShareService struct {
	calendars *store.CalendarStore
	shares    *store.ShareStore
	hub       *EventsHub
	logger    *zap.Logger
	baseURL   string
}

// NewShareService creates a new ShareService
func NewShareService(
	calendars *store.CalendarStore,
	shares *store.ShareStore,
	hub *EventsHub,
	logger *zap.Logger,
	baseURL string,
) *ShareService {
	return &ShareService{
		calendars: calendars,
		shares:    shares,
		hub:       hub,
		logger:    logger,
		baseURL:   baseURL,
	}
}

// Invite appends a pending share entry. The email is not validated
// beyond being non-blank, and repeat invites to the same address are
// kept as separate entries.
func (s *ShareService) Invite(ctx context.Context, calendarID, email, permission string) (models.SharedUser, error) {
	_, span := observability.StartServiceSpan(ctx, "ShareService", "Invite")
	defer span.End()

	if _, ok := s.calendars.Get(calendarID); !ok {
		observability.RecordError(span, models.ErrCalendarNotFound)
		return models.SharedUser{}, models.ErrCalendarNotFound
	}

	user, err := models.NewSharedUser(email, models.SharePermission(permission))
	if err != nil {
		observability.RecordError(span, err)
		return models.SharedUser{}, err
	}

	s.shares.Add(calendarID, *user)
	s.hub.Publish(calendarID, EventShareInvited, user)
	s.logger.Info("calendar shared",
		zap.String("calendar", calendarID),
		zap.String("permission", permission))

	observability.SetSuccess(span)
	return *user, nil
}

// Revoke removes a shared user by id.
func (s *ShareService) Revoke(ctx context.Context, calendarID, userID string) error {
	_, span := observability.StartServiceSpan(ctx, "ShareService", "Revoke")
	defer span.End()

	if !s.shares.Remove(calendarID, userID) {
		observability.RecordError(span, models.ErrShareNotFound)
		return models.ErrShareNotFound
	}

	s.hub.Publish(calendarID, EventShareRevoked, userID)
	observability.SetSuccess(span)
	return nil
}

// List returns a calendar's shared users in invite order.
func (s *ShareService) List(ctx context.Context, calendarID string) ([]models.SharedUser, error) {
	if _, ok := s.calendars.Get(calendarID); !ok {
		return nil, models.ErrCalendarNotFound
	}
	return s.shares.List(calendarID), nil
}

// Link derives the calendar's deterministic share link.
func (s *ShareService) Link(ctx context.Context, calendarID string) (string, error) {
	if _, ok := s.calendars.Get(calendarID); !ok {
		return "", models.ErrCalendarNotFound
	}
	return models.ShareLink(s.baseURL, calendarID), nil
}

// SharedView resolves a share link target: the calendar plus the
// permission the link grants. Links always grant view-level access.
func (s *ShareService) SharedView(ctx context.Context, calendarID string) (models.Calendar, models.SharePermission, error) {
	cal, ok := s.calendars.Get(calendarID)
	if !ok {
		return models.Calendar{}, "", models.ErrCalendarNotFound
	}
	return cal, models.PermissionView, nil
}
