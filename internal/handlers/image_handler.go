package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/etama123/mo-ment/internal/store"
)

// ImageHandler serves uploaded image bytes from the in-memory blob store
type ImageHandler struct {
	blobs *store.BlobStore
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(blobs *store.BlobStore) *ImageHandler {
	return &ImageHandler{blobs: blobs}
}

// Serve writes an image blob. Blobs released by photo deletion 404.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	blob, ok := h.blobs.Get(chi.URLParam(r, "imageId"))
	if !ok {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(blob.Data)
}
