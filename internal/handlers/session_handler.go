package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/services"
)

// SessionHandler exposes the prototype's single shared selection state
type SessionHandler struct {
	selection *services.SelectionController
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(selection *services.SelectionController) *SessionHandler {
	return &SessionHandler{selection: selection}
}

// State returns the current selection
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.selection.State())
}

// SelectCalendar switches the active calendar and resets date and photo
func (h *SessionHandler) SelectCalendar(w http.ResponseWriter, r *http.Request) {
	var req models.SelectCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.selection.SelectCalendar(r.Context(), req.CalendarID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// SelectMonth navigates the viewed month
func (h *SessionHandler) SelectMonth(w http.ResponseWriter, r *http.Request) {
	var req models.SelectMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.selection.SelectMonth(r.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// SelectDate picks a date in the active calendar and returns its photos
func (h *SessionHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req models.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := models.ParseDateKey(req.Date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	photos, err := h.selection.SelectDate(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":  h.selection.State(),
		"photos": photos,
	})
}

// SelectPhoto picks a photo from the selected date's list
func (h *SessionHandler) SelectPhoto(w http.ResponseWriter, r *http.Request) {
	var req models.SelectPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.selection.SelectPhoto(r.Context(), req.PhotoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// SaveNote commits the note draft to the selected photo
func (h *SessionHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req models.SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	photo, err := h.selection.SaveNote(r.Context(), req.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

// DeleteSelected deletes the selected photo and clears the photo selection
func (h *SessionHandler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	state, err := h.selection.DeleteSelected(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}
