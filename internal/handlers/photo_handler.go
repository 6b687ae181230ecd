package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/services"
)

// PhotoHandler handles photo API endpoints
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload accepts a multipart multi-photo upload. Form fields: "date"
// (optional, YYYY-MM-DD), "title", "note"; files under "photos".
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := services.UploadRequest{}

	if raw := r.FormValue("date"); raw != "" {
		date, err := models.ParseDateKey(raw)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		req.Date = date
	}
	if title := r.FormValue("title"); title != "" {
		req.Title = &title
	}
	if note := r.FormValue("note"); note != "" {
		req.Note = &note
	}

	for _, header := range r.MultipartForm.File["photos"] {
		f, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		req.Files = append(req.Files, services.UploadFile{Name: header.Filename, Data: data})
	}

	photos, err := h.photoService.Upload(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, photos)
}

// List returns the photos for a date, in upload order
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	date, err := models.ParseDateKey(r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	photos, err := h.photoService.ListForDate(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, photos)
}

// Update merges a partial edit into a photo
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var update models.PhotoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	photo, err := h.photoService.Update(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "photoId"), update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

// Delete removes a photo and releases its image blobs
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.photoService.Delete(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "photoId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
