package handlers

import (
	"net/http"
	"time"

	"github.com/etama123/mo-ment/internal/middleware"
	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/services"
)

// SharedViewHandler renders a calendar through its share link. Access
// comes from the middleware-injected viewer, never from the session.
type SharedViewHandler struct {
	shareService    *services.ShareService
	calendarService *services.CalendarService
}

// NewSharedViewHandler creates a new SharedViewHandler
func NewSharedViewHandler(shareService *services.ShareService, calendarService *services.CalendarService) *SharedViewHandler {
	return &SharedViewHandler{
		shareService:    shareService,
		calendarService: calendarService,
	}
}

// View returns the shared calendar, the grant level, and the month grid.
// An optional ?date= highlights a day in the grid.
func (h *SharedViewHandler) View(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetViewerFromContext(r.Context())
	if viewer == nil {
		writeError(w, http.StatusForbidden, models.ErrReadOnlyCalendar.Error())
		return
	}

	cal, permission, err := h.shareService.SharedView(r.Context(), viewer.CalendarID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	now := time.Now().UTC()
	month, err := monthFromQuery(r, now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var selected models.DateKey
	if raw := r.URL.Query().Get("date"); raw != "" {
		selected, err = models.ParseDateKey(raw)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}

	cells, err := h.calendarService.Grid(r.Context(), cal.ID, month, selected, now)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"calendar":   cal,
		"permission": permission,
		"year":       month.Year,
		"month":      int(month.Month),
		"cells":      cells,
	})
}
