package services

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/config"
	"github.com/etama123/mo-ment/internal/models"
	"github.com/etama123/mo-ment/internal/observability"
	"github.com/etama123/mo-ment/internal/store"
)

const imageURLPrefix = "/api/images/"

// UploadFile is one source image in a multi-photo upload.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadRequest carries one multi-photo upload. Date, title and note
// are shared by every photo in the batch; each file still gets its own
// photo record and id.
type UploadRequest struct {
	Date  models.DateKey
	Title *string
	Note  *string
	Files []UploadFile
}

// PhotoService handles photo CRUD and the upload pipeline.
type PhotoService struct {
	calendars *store.CalendarStore
	photos    *store.PhotoStore
	blobs     *store.BlobStore
	hub       *EventsHub
	logger    *zap.Logger
	cfg       config.Upload
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(
	calendars *store.CalendarStore,
	photos *store.PhotoStore,
	blobs *store.BlobStore,
	hub *EventsHub,
	logger *zap.Logger,
	cfg config.Upload,
) *PhotoService {
	return &PhotoService{
		calendars: calendars,
		photos:    photos,
		blobs:     blobs,
		hub:       hub,
		logger:    logger,
		cfg:       cfg,
	}
}

// Upload decodes up to the configured cap of source images and appends
// one photo per image to the calendar's date bucket, in source order.
// Files beyond the cap are silently truncated.
func (s *PhotoService) Upload(ctx context.Context, calendarID string, req UploadRequest) ([]models.Photo, error) {
	ctx, span := observability.StartServiceSpan(ctx, "PhotoService", "Upload")
	defer span.End()

	if err := s.requireEditable(calendarID); err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	if len(req.Files) == 0 {
		return nil, ErrNoUploadFiles
	}

	files := req.Files
	if len(files) > s.cfg.MaxPhotosPerUpload {
		s.logger.Info("truncating upload batch",
			zap.Int("given", len(files)),
			zap.Int("cap", s.cfg.MaxPhotosPerUpload))
		files = files[:s.cfg.MaxPhotosPerUpload]
	}

	// Decode and stage every file before touching the photo store, so a
	// bad file anywhere in the batch commits nothing.
	prepared := make([]models.Photo, 0, len(files))
	for _, file := range files {
		photo, err := s.prepareUpload(file, req)
		if err != nil {
			for _, p := range prepared {
				ReleaseBlobs(s.blobs, p)
			}
			observability.RecordError(span, err)
			return nil, err
		}
		prepared = append(prepared, *photo)
	}

	added := make([]models.Photo, 0, len(prepared))
	for _, p := range prepared {
		if err := s.photos.Add(calendarID, p); err != nil {
			for _, a := range added {
				s.photos.Delete(calendarID, a.ID)
			}
			for _, staged := range prepared {
				ReleaseBlobs(s.blobs, staged)
			}
			observability.RecordError(span, err)
			return nil, err
		}
		added = append(added, p)
	}

	for _, p := range added {
		s.hub.Publish(calendarID, EventPhotoAdded, p)
	}

	observability.SetSuccess(span)
	return added, nil
}

// prepareUpload validates and decodes one file and stages its blobs.
// The caller owns the blobs until the photo is committed to the store.
func (s *PhotoService) prepareUpload(file UploadFile, req UploadRequest) (*models.Photo, error) {
	if !s.extensionAllowed(file.Name) {
		return nil, ErrInvalidExtension
	}
	if int64(len(file.Data)) > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, ErrFileTooLarge
	}

	img, err := decodeImage(file.Data, file.Name)
	if err != nil {
		s.logger.Debug("upload decode failed", zap.String("file", file.Name), zap.Error(err))
		return nil, ErrUndecodableImage
	}

	date := req.Date
	if date == "" {
		if taken, ok := dateTakenFromEXIF(file.Data); ok {
			date = taken
		} else {
			date = models.KeyOf(time.Now().UTC())
		}
	}

	thumb, err := makeThumbnail(img, s.cfg.ThumbnailMaxDim)
	if err != nil {
		return nil, err
	}

	original := s.blobs.Put(contentTypeForExt(file.Name), file.Data)
	thumbBlob := s.blobs.Put("image/jpeg", thumb)

	photo, err := models.NewPhoto(imageURLPrefix+original.ID, date)
	if err != nil {
		s.blobs.Delete(original.ID)
		s.blobs.Delete(thumbBlob.ID)
		return nil, err
	}
	photo.ThumbURL = imageURLPrefix + thumbBlob.ID
	models.PhotoUpdate{Title: req.Title, Note: req.Note}.Apply(photo)

	return photo, nil
}

// Update merges a partial edit into a photo. The photo stays in its
// date bucket.
func (s *PhotoService) Update(ctx context.Context, calendarID, photoID string, update models.PhotoUpdate) (models.Photo, error) {
	_, span := observability.StartServiceSpan(ctx, "PhotoService", "Update")
	defer span.End()

	if err := s.requireEditable(calendarID); err != nil {
		observability.RecordError(span, err)
		return models.Photo{}, err
	}

	photo, err := s.photos.Update(calendarID, photoID, update)
	if err != nil {
		observability.RecordError(span, err)
		return models.Photo{}, err
	}

	s.hub.Publish(calendarID, EventPhotoUpdated, photo)
	observability.SetSuccess(span)
	return photo, nil
}

// Delete removes a photo and releases its image blobs. A missing id is
// reported as ErrPhotoNotFound; callers that want no-op semantics
// decide at their level.
func (s *PhotoService) Delete(ctx context.Context, calendarID, photoID string) error {
	_, span := observability.StartServiceSpan(ctx, "PhotoService", "Delete")
	defer span.End()

	if err := s.requireEditable(calendarID); err != nil {
		observability.RecordError(span, err)
		return err
	}

	photo, found := s.photos.Get(calendarID, photoID)
	if !found {
		return models.ErrPhotoNotFound
	}

	s.photos.Delete(calendarID, photoID)
	ReleaseBlobs(s.blobs, photo)

	s.hub.Publish(calendarID, EventPhotoDeleted, photo)
	observability.SetSuccess(span)
	return nil
}

// ListForDate returns a date's photos in upload order.
func (s *PhotoService) ListForDate(ctx context.Context, calendarID string, date models.DateKey) ([]models.Photo, error) {
	if _, ok := s.calendars.Get(calendarID); !ok {
		return nil, models.ErrCalendarNotFound
	}
	return s.photos.ListForDate(calendarID, date), nil
}

func (s *PhotoService) requireEditable(calendarID string) error {
	cal, ok := s.calendars.Get(calendarID)
	if !ok {
		return models.ErrCalendarNotFound
	}
	if !cal.Editable() {
		return models.ErrReadOnlyCalendar
	}
	return nil
}

func (s *PhotoService) extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.cfg.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ReleaseBlobs frees the in-memory image resources a photo references.
// Photos whose URLs do not point at the blob store (seed data) are
// untouched.
func ReleaseBlobs(blobs *store.BlobStore, photo models.Photo) {
	for _, url := range []string{photo.URL, photo.ThumbURL} {
		if id, ok := strings.CutPrefix(url, imageURLPrefix); ok && id != "" {
			blobs.Delete(id)
		}
	}
}

// Upload errors
type UploadError struct {
	Message string
}

func (e UploadError) Error() string {
	return e.Message
}

var (
	ErrNoUploadFiles    = UploadError{"no files provided"}
	ErrInvalidExtension = UploadError{"file extension not allowed"}
	ErrFileTooLarge     = UploadError{"file size exceeds maximum allowed"}
	ErrUndecodableImage = UploadError{"file is not a decodable image"}
)
