package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeServiceError maps the typed model errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrCalendarNotFound),
		errors.Is(err, models.ErrPhotoNotFound),
		errors.Is(err, models.ErrShareNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrReadOnlyCalendar):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrCalendarNameRequired),
		errors.Is(err, models.ErrShareEmailRequired),
		errors.Is(err, models.ErrInvalidSharePermission),
		errors.Is(err, models.ErrInvalidDateKey),
		errors.Is(err, models.ErrPhotoDateRequired),
		errors.Is(err, models.ErrDuplicatePhotoID),
		errors.Is(err, services.ErrNoUploadFiles),
		errors.Is(err, services.ErrInvalidExtension),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrUndecodableImage),
		errors.Is(err, services.ErrNoCalendarSelected),
		errors.Is(err, services.ErrNoDateSelected),
		errors.Is(err, services.ErrNoPhotoSelected),
		errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrDateOutsideMonth):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
