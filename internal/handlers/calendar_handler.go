package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/etama123/mo-ment/internal/calendar"
	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/services"
)

// CalendarHandler handles calendar API endpoints
type CalendarHandler struct {
	calendarService *services.CalendarService
	selection       *services.SelectionController
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarService *services.CalendarService, selection *services.SelectionController) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		selection:       selection,
	}
}

// List returns all calendars
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.calendarService.List(r.Context()))
}

// Create creates a new owned calendar
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cal, err := h.calendarService.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cal)
}

// Rename updates a calendar's display name
func (h *CalendarHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req models.RenameCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cal, err := h.calendarService.Rename(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cal)
}

// Delete removes a calendar and everything it owns
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.calendarService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.selection.State())
}

// Grid renders the month grid for a calendar. Defaults to the current
// month when year/month are not given.
func (h *CalendarHandler) Grid(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	month, err := monthFromQuery(r, now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var selected models.DateKey
	if state := h.selection.State(); state.Date != nil && state.CalendarID == chi.URLParam(r, "id") {
		selected = *state.Date
	}

	cells, err := h.calendarService.Grid(r.Context(), chi.URLParam(r, "id"), month, selected, now)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":  month.Year,
		"month": int(month.Month),
		"cells": cells,
	})
}

func monthFromQuery(r *http.Request, now time.Time) (calendar.Month, error) {
	month := calendar.MonthOf(now)

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return calendar.Month{}, models.ErrInvalidDateKey
		}
		month.Year = year
	}
	if m := r.URL.Query().Get("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			return calendar.Month{}, models.ErrInvalidDateKey
		}
		month.Month = time.Month(n)
	}

	return month, nil
}
