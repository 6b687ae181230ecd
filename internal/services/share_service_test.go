package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etama123/mo-ment/internal/models"
)

func TestShareService_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("new invites start pending", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		user, err := env.shareService.Invite(ctx, "my-calendar-2", "new@example.com", "edit")
		require.NoError(t, err)

		assert.Equal(t, models.StatusPending, user.Status)
		assert.Equal(t, models.PermissionEdit, user.Permission)

		list, err := env.shareService.List(ctx, "my-calendar-2")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, user.ID, list[0].ID)
	})

	t.Run("repeat invites to the same email are kept", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		_, err := env.shareService.Invite(ctx, "me", "friend@example.com", "view")
		require.NoError(t, err)

		list, err := env.shareService.List(ctx, "me")
		require.NoError(t, err)
		// seed ships two entries
		assert.Len(t, list, 3)
	})

	t.Run("rejects unknown permissions", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		_, err := env.shareService.Invite(ctx, "me", "new@example.com", "admin")
		assert.ErrorIs(t, err, models.ErrInvalidSharePermission)
	})

	t.Run("rejects blank emails", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		_, err := env.shareService.Invite(ctx, "me", "  ", "view")
		assert.ErrorIs(t, err, models.ErrShareEmailRequired)
	})

	t.Run("unknown calendar", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.shareService.Invite(ctx, "missing", "new@example.com", "view")
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
	})
}

func TestShareService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the entry", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		require.NoError(t, env.shareService.Revoke(ctx, "me", "share-1"))

		list, err := env.shareService.List(ctx, "me")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "share-2", list[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		err := env.shareService.Revoke(ctx, "me", "missing")
		assert.ErrorIs(t, err, models.ErrShareNotFound)
	})
}

func TestShareService_Link(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the same link every time", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		first, err := env.shareService.Link(ctx, "me")
		require.NoError(t, err)
		second, err := env.shareService.Link(ctx, "me")
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:5000/shared/me", first)
		assert.Equal(t, first, second)
	})

	t.Run("unknown calendar", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.shareService.Link(ctx, "missing")
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
	})
}

func TestShareService_SharedView(t *testing.T) {
	ctx := context.Background()

	t.Run("grants view access to link holders", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		cal, permission, err := env.shareService.SharedView(ctx, "my-calendar-2")
		require.NoError(t, err)

		assert.Equal(t, "my-calendar-2", cal.ID)
		assert.Equal(t, models.PermissionView, permission)
	})

	t.Run("a link to a deleted calendar stops resolving", func(t *testing.T) {
		env := newTestEnv(t)
		env.seed(t)

		require.NoError(t, env.calendarService.Delete(ctx, "my-calendar-2"))

		_, _, err := env.shareService.SharedView(ctx, "my-calendar-2")
		assert.ErrorIs(t, err, models.ErrCalendarNotFound)
	})
}
