package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SharePermission represents the access level granted to an invitee.
type SharePermission string

const (
	PermissionView SharePermission = "view"
	PermissionEdit SharePermission = "edit"
)

// IsValidSharePermission checks if a permission value is valid
func IsValidSharePermission(p string) bool {
	switch SharePermission(p) {
	case PermissionView, PermissionEdit:
		return true
	}
	return false
}

// ShareStatus is the invitee's acceptance state. Nothing in this system
// transitions pending to accepted; the field is display state carried
// for a future accept flow.
type ShareStatus string

const (
	StatusPending  ShareStatus = "pending"
	StatusAccepted ShareStatus = "accepted"
)

// SharedUser is one entry in a calendar's sharing registry. The email is
// stored as given; repeated invites to the same address are allowed.
type SharedUser struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Permission SharePermission `json:"permission"`
	Status     ShareStatus     `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewSharedUser creates a pending share entry for an invitee.
func NewSharedUser(email string, permission SharePermission) (*SharedUser, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrShareEmailRequired
	}
	if !IsValidSharePermission(string(permission)) {
		return nil, ErrInvalidSharePermission
	}

	return &SharedUser{
		ID:         uuid.New().String(),
		Email:      strings.TrimSpace(email),
		Permission: permission,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ShareLink derives the shareable locator for a calendar. It is
// deterministic: same calendar, same link, no expiry. Holders of the
// link get view-level access.
func ShareLink(baseURL, calendarID string) string {
	return strings.TrimRight(baseURL, "/") + "/shared/" + calendarID
}

// Share errors
type ShareError struct {
	Message string
}

func (e ShareError) Error() string {
	return e.Message
}

var (
	ErrShareNotFound          = ShareError{"shared user not found"}
	ErrShareEmailRequired     = ShareError{"invite email is required"}
	ErrInvalidSharePermission = ShareError{"permission must be view or edit"}
)
