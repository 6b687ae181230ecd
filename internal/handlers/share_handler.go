package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/services"
)

// ShareHandler handles calendar sharing endpoints
type ShareHandler struct {
	shareService *services.ShareService
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// List returns the shared users of a calendar
func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.shareService.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Invite adds a pending share for an email address
func (h *ShareHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req models.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.shareService.Invite(r.Context(), chi.URLParam(r, "id"), req.Email, req.Permission)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Revoke removes a shared user from a calendar
func (h *ShareHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	err := h.shareService.Revoke(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Link returns the stable share link for a calendar
func (h *ShareHandler) Link(w http.ResponseWriter, r *http.Request) {
	link, err := h.shareService.Link(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ShareLinkResponse{Link: link})
}
