package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSharedUser(t *testing.T) {
	t.Run("creates pending entry", func(t *testing.T) {
		user, err := NewSharedUser("friend@example.com", PermissionEdit)

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "friend@example.com", user.Email)
		assert.Equal(t, PermissionEdit, user.Permission)
		assert.Equal(t, StatusPending, user.Status)
	})

	t.Run("rejects blank email", func(t *testing.T) {
		_, err := NewSharedUser("   ", PermissionView)
		assert.ErrorIs(t, err, ErrShareEmailRequired)
	})

	t.Run("rejects unknown permission", func(t *testing.T) {
		_, err := NewSharedUser("friend@example.com", SharePermission("admin"))
		assert.ErrorIs(t, err, ErrInvalidSharePermission)
	})

	t.Run("repeat invites get distinct IDs", func(t *testing.T) {
		a, err := NewSharedUser("friend@example.com", PermissionView)
		require.NoError(t, err)
		b, err := NewSharedUser("friend@example.com", PermissionView)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestShareLink(t *testing.T) {
	t.Run("joins base url and calendar id", func(t *testing.T) {
		link := ShareLink("http://localhost:5000", "my-calendar-2")
		assert.Equal(t, "http://localhost:5000/shared/my-calendar-2", link)
	})

	t.Run("tolerates trailing slash on base url", func(t *testing.T) {
		link := ShareLink("http://localhost:5000/", "me")
		assert.Equal(t, "http://localhost:5000/shared/me", link)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first := ShareLink("http://localhost:5000", "me")
		second := ShareLink("http://localhost:5000", "me")
		assert.Equal(t, first, second)
	})
}

func TestIsValidSharePermission(t *testing.T) {
	assert.True(t, IsValidSharePermission("view"))
	assert.True(t, IsValidSharePermission("edit"))
	assert.False(t, IsValidSharePermission("owner"))
	assert.False(t, IsValidSharePermission(""))
}
