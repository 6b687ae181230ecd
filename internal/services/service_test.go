package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/config"
	"github.com/etama123/mo-ment/internal/store"
)

// testEnv wires the in-memory stores with the service layer the way
// main does, minus the HTTP surface.
type testEnv struct {
	calendars *store.CalendarStore
	photos    *store.PhotoStore
	shares    *store.ShareStore
	blobs     *store.BlobStore
	hub       *EventsHub

	photoService    *PhotoService
	selection       *SelectionController
	calendarService *CalendarService
	shareService    *ShareService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		calendars: store.NewCalendarStore(),
		photos:    store.NewPhotoStore(),
		shares:    store.NewShareStore(),
		blobs:     store.NewBlobStore(),
		hub:       NewEventsHub(zap.NewNop()),
	}
	go env.hub.Run()

	logger := zap.NewNop()
	uploadCfg := config.Upload{
		MaxPhotosPerUpload: 10,
		MaxFileSizeMB:      25,
		AllowedExtensions:  []string{".jpg", ".jpeg", ".png", ".gif", ".heic", ".heif"},
		ThumbnailMaxDim:    200,
	}

	env.photoService = NewPhotoService(env.calendars, env.photos, env.blobs, env.hub, logger, uploadCfg)
	env.selection = NewSelectionController(env.calendars, env.photoService, logger)
	// Pin the clock inside the seed data's month.
	env.selection.now = func() time.Time {
		return time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	}
	env.calendarService = NewCalendarService(env.calendars, env.photos, env.shares, env.blobs, env.selection, env.hub, logger)
	env.shareService = NewShareService(env.calendars, env.shares, env.hub, logger, "http://localhost:5000")

	return env
}

func (env *testEnv) seed(t *testing.T) {
	t.Helper()
	store.Seed(env.calendars, env.photos, env.shares)
}

// pngFile renders a tiny valid PNG for upload tests.
func pngFile(t *testing.T, name string) UploadFile {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return UploadFile{Name: name, Data: buf.Bytes()}
}
