package postgres

import (
	"context"
	"database/sql"

	"tripapi/internal/model"
	"tripapi/internal/repository"
)

// LogSheetPostgres is a PostgreSQL implementation of repository.LogSheetRepository.
type LogSheetPostgres struct {
	db *sql.DB
}

// NewLogSheetPostgres creates a new LogSheetPostgres repository.
func NewLogSheetPostgres(db *sql.DB) *LogSheetPostgres {
	return &LogSheetPostgres{db: db}
}

var _ repository.LogSheetRepository = (*LogSheetPostgres)(nil)

// Create inserts a log sheet row and returns the stored record.
func (r *LogSheetPostgres) Create(ctx context.Context, sheet *model.LogSheet) (*model.LogSheet, error) {
	const q = `
		INSERT INTO logsheets (id, trip_id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, trip_id, filename, storage_path, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		sheet.ID,
		sheet.TripID,
		sheet.Filename,
		sheet.StoragePath,
		sheet.Size,
		sheet.ContentType,
		sheet.CreatedAt,
	)
	var out model.LogSheet
	if err := row.Scan(
		&out.ID,
		&out.TripID,
		&out.Filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByTrip returns the archived sheets of a trip, newest first.
func (r *LogSheetPostgres) ListByTrip(ctx context.Context, tripID int64) ([]model.LogSheet, error) {
	const q = `
		SELECT id, trip_id, filename, storage_path, size, content_type, created_at
		FROM logsheets
		WHERE trip_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LogSheet, 0)
	for rows.Next() {
		var s model.LogSheet
		if err := rows.Scan(
			&s.ID,
			&s.TripID,
			&s.Filename,
			&s.StoragePath,
			&s.Size,
			&s.ContentType,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
