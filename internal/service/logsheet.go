package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"tripapi/internal/logging"
	"tripapi/internal/logsheet"
	"tripapi/internal/model"
	"tripapi/internal/repository"
	"tripapi/internal/storage"
)

// Renderer turns a trip into a PDF document.
type Renderer interface {
	Render(trip *model.Trip) ([]byte, error)
}

// GeneratedLogSheet is a freshly rendered log sheet. Archive is nil when the
// sheet was not archived.
type GeneratedLogSheet struct {
	TripID   int64
	Filename string
	Content  []byte
	Archive  *model.LogSheet
}

// LogSheetService renders and archives driver log sheets.
type LogSheetService interface {
	// Generate renders the log sheet of a trip. Archiving is best-effort and never fails the call.
	Generate(ctx context.Context, tripID int64) (*GeneratedLogSheet, error)

	// List returns the archived sheets of a trip with pre-signed download URLs.
	List(ctx context.Context, tripID int64) ([]model.LogSheet, error)
}

type logSheetService struct {
	trips     repository.TripRepository
	sheets    repository.LogSheetRepository
	store     storage.Storage
	renderer  Renderer
	loc       *time.Location
	urlExpiry time.Duration
}

// NewLogSheetService constructs a LogSheetService. store may be nil to disable archiving.
func NewLogSheetService(trips repository.TripRepository, sheets repository.LogSheetRepository, store storage.Storage, renderer Renderer, loc *time.Location, urlExpiry time.Duration) LogSheetService {
	if loc == nil {
		loc = time.UTC
	}
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	return &logSheetService{
		trips:     trips,
		sheets:    sheets,
		store:     store,
		renderer:  renderer,
		loc:       loc,
		urlExpiry: urlExpiry,
	}
}

func (s *logSheetService) Generate(ctx context.Context, tripID int64) (*GeneratedLogSheet, error) {
	ctx, span := startSpan(ctx, "LogSheetService.Generate")
	defer span.End()
	span.SetAttributes(attribute.Int64("trip.id", tripID))

	trip, err := s.trip(ctx, tripID)
	if err != nil {
		return nil, fail(span, err)
	}

	content, err := s.renderer.Render(trip)
	if err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.Int("logsheet.size", len(content)))

	out := &GeneratedLogSheet{
		TripID:   trip.ID,
		Filename: logsheet.Filename(trip.ID),
		Content:  content,
	}
	if s.store != nil {
		out.Archive = s.archive(ctx, out)
	}
	return out, nil
}

// archive uploads the sheet and records it. Failures are logged and yield nil.
func (s *logSheetService) archive(ctx context.Context, g *GeneratedLogSheet) *model.LogSheet {
	id := uuid.New().String()
	key := storage.LogSheetKey(g.TripID, id)

	info, err := s.store.Put(ctx, key, bytes.NewReader(g.Content), storage.PutObjectOptions{
		Size:        int64(len(g.Content)),
		ContentType: logsheet.ContentType,
		Metadata: map[string]string{
			"trip-id":  fmt.Sprint(g.TripID),
			"filename": g.Filename,
		},
	})
	if err != nil {
		s.logArchiveFailure(g.TripID, key, fmt.Errorf("upload to storage: %w", err))
		return nil
	}

	stored, err := s.sheets.Create(ctx, &model.LogSheet{
		ID:          id,
		TripID:      g.TripID,
		Filename:    g.Filename,
		StoragePath: info.Key,
		Size:        int64(len(g.Content)),
		ContentType: logsheet.ContentType,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		err = fmt.Errorf("db save failed: %w", err)
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			err = fmt.Errorf("%w; rollback delete failed: %v", err, delErr)
		}
		s.logArchiveFailure(g.TripID, key, err)
		return nil
	}

	logging.Event(s.loc, map[string]any{
		"component":    "service",
		"event":        "logsheet_archived",
		"status":       "success",
		"trip_id":      g.TripID,
		"storage_path": stored.StoragePath,
		"size":         stored.Size,
	})
	return stored
}

func (s *logSheetService) logArchiveFailure(tripID int64, key string, err error) {
	logging.Event(s.loc, map[string]any{
		"component":     "service",
		"event":         "logsheet_archive_failed",
		"status":        "error",
		"trip_id":       tripID,
		"storage_path":  key,
		"error_message": err.Error(),
	})
}

func (s *logSheetService) List(ctx context.Context, tripID int64) ([]model.LogSheet, error) {
	ctx, span := startSpan(ctx, "LogSheetService.List")
	defer span.End()
	span.SetAttributes(attribute.Int64("trip.id", tripID))

	if _, err := s.trip(ctx, tripID); err != nil {
		return nil, fail(span, err)
	}

	items, err := s.sheets.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fail(span, err)
	}
	if s.store == nil {
		return items, nil
	}

	for i := range items {
		u, err := s.store.PresignGet(ctx, items[i].StoragePath, items[i].Filename, s.urlExpiry)
		if err != nil {
			return nil, fail(span, fmt.Errorf("presign %s: %w", items[i].StoragePath, err))
		}
		items[i].DownloadURL = u
	}
	return items, nil
}

func (s *logSheetService) trip(ctx context.Context, id int64) (*model.Trip, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}
