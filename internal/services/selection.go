package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/calendar"
	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/store"
)

// SelectionState is the transient UI selection: the viewed month,
// active calendar, active date and active photo, plus the editable note
// draft seeded when a photo is selected. It is never persisted.
type SelectionState struct {
	CalendarID  string          `json:"calendarId"`
	ViewedMonth calendar.Month  `json:"viewedMonth"`
	Date        *models.DateKey `json:"date"`
	Photo       *models.Photo   `json:"photo"`
	NoteDraft   string          `json:"noteDraft"`
}

// SelectionController is the state machine over
// {no date} -> {date, no photo} -> {date + photo}. All photo mutations
// issued from the detail view go through it so the displayed copy and
// the store stay consistent without a full reload.
type SelectionController struct {
	mu        sync.Mutex
	calendars *store.CalendarStore
	photos    *PhotoService
	logger    *zap.Logger
	now       func() time.Time
	state     SelectionState
}

// NewSelectionController creates a controller with nothing selected.
func NewSelectionController(calendars *store.CalendarStore, photos *PhotoService, logger *zap.Logger) *SelectionController {
	return &SelectionController{
		calendars: calendars,
		photos:    photos,
		logger:    logger,
		now:       time.Now,
	}
}

// State returns a copy of the current selection.
func (c *SelectionController) State() SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *SelectionController) snapshot() SelectionState {
	out := c.state
	if c.state.Date != nil {
		d := *c.state.Date
		out.Date = &d
	}
	if c.state.Photo != nil {
		p := c.state.Photo.Clone()
		out.Photo = &p
	}
	return out
}

// SelectCalendar activates a calendar. A date selected in one
// calendar's context is meaningless in another's, so the active date,
// photo and note draft are always cleared.
func (c *SelectionController) SelectCalendar(ctx context.Context, calendarID string) (SelectionState, error) {
	if _, ok := c.calendars.Get(calendarID); !ok {
		return SelectionState{}, models.ErrCalendarNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	month := c.state.ViewedMonth
	if month.Year == 0 {
		month = calendar.MonthOf(c.now().UTC())
	}
	c.state = SelectionState{CalendarID: calendarID, ViewedMonth: month}
	return c.snapshot(), nil
}

// SelectMonth navigates the viewed month. Moving months keeps the
// selected date and photo; only selecting a new date is bound to the
// viewed month.
func (c *SelectionController) SelectMonth(ctx context.Context, year int, month time.Month) (SelectionState, error) {
	if year < 1 || month < time.January || month > time.December {
		return SelectionState{}, ErrInvalidMonth
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.ViewedMonth = calendar.Month{Year: year, Month: month}
	return c.snapshot(), nil
}

// SelectDate moves to the "date selected, no photo" state and returns
// the date's visible photo list. Only keys inside the viewed month are
// selectable; out-of-month grid cells never become a selection.
func (c *SelectionController) SelectDate(ctx context.Context, date models.DateKey) ([]models.Photo, error) {
	if _, err := models.ParseDateKey(string(date)); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CalendarID == "" {
		return nil, ErrNoCalendarSelected
	}
	if !c.state.ViewedMonth.Contains(date) {
		return nil, ErrDateOutsideMonth
	}

	c.state.Date = &date
	c.state.Photo = nil
	c.state.NoteDraft = ""

	return c.photos.ListForDate(ctx, c.state.CalendarID, date)
}

// SelectPhoto activates a photo from the visible list and seeds the
// note draft from its current note. The photo must belong to the
// active date.
func (c *SelectionController) SelectPhoto(ctx context.Context, photoID string) (SelectionState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Date == nil {
		return SelectionState{}, ErrNoDateSelected
	}

	list, err := c.photos.ListForDate(ctx, c.state.CalendarID, *c.state.Date)
	if err != nil {
		return SelectionState{}, err
	}

	for _, p := range list {
		if p.ID == photoID {
			photo := p.Clone()
			c.state.Photo = &photo
			c.state.NoteDraft = ""
			if photo.Note != nil {
				c.state.NoteDraft = *photo.Note
			}
			return c.snapshot(), nil
		}
	}

	return SelectionState{}, models.ErrPhotoNotFound
}

// SaveNote commits a note edit to the selected photo and refreshes the
// in-state copy so the detail view shows the stored data.
func (c *SelectionController) SaveNote(ctx context.Context, note string) (models.Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Photo == nil {
		return models.Photo{}, ErrNoPhotoSelected
	}

	updated, err := c.photos.Update(ctx, c.state.CalendarID, c.state.Photo.ID, models.PhotoUpdate{Note: &note})
	if err != nil {
		if errors.Is(err, models.ErrPhotoNotFound) {
			// The photo vanished underneath the selection; drop the
			// stale selection and return to the date view.
			c.state.Photo = nil
			c.state.NoteDraft = ""
		}
		return models.Photo{}, err
	}

	refreshed := updated.Clone()
	c.state.Photo = &refreshed
	c.state.NoteDraft = note
	return updated, nil
}

// DeleteSelected removes the selected photo and returns to the "date
// selected, no photo" state.
func (c *SelectionController) DeleteSelected(ctx context.Context) (SelectionState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Photo == nil {
		return SelectionState{}, ErrNoPhotoSelected
	}

	if err := c.photos.Delete(ctx, c.state.CalendarID, c.state.Photo.ID); err != nil {
		if errors.Is(err, models.ErrPhotoNotFound) {
			// Already gone; the intended end state is reached.
			c.state.Photo = nil
			c.state.NoteDraft = ""
			return c.snapshot(), nil
		}
		return SelectionState{}, err
	}

	c.state.Photo = nil
	c.state.NoteDraft = ""
	return c.snapshot(), nil
}

// CalendarDeleted handles the active calendar being deleted: selection
// falls back to the first remaining owned calendar, never to a
// contributed one, and the active date and photo are cleared. When no
// owned calendar remains, the selection empties.
func (c *SelectionController) CalendarDeleted(deletedID string) SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CalendarID != deletedID {
		return c.snapshot()
	}

	c.state = SelectionState{ViewedMonth: c.state.ViewedMonth}
	if fallback, ok := c.calendars.FirstOwned(deletedID); ok {
		c.state.CalendarID = fallback.ID
		c.logger.Info("selection moved to fallback calendar",
			zap.String("deleted", deletedID),
			zap.String("fallback", fallback.ID))
	}
	return c.snapshot()
}

// Selection errors
type SelectionError struct {
	Message string
}

func (e SelectionError) Error() string {
	return e.Message
}

var (
	ErrNoCalendarSelected = SelectionError{"no calendar selected"}
	ErrNoDateSelected     = SelectionError{"no date selected"}
	ErrNoPhotoSelected    = SelectionError{"no photo selected"}
	ErrInvalidMonth       = SelectionError{"month must be between 1 and 12"}
	ErrDateOutsideMonth   = SelectionError{"date is outside the viewed month"}
)
