// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"tripapi/internal/model"
)

// TripRepository defines data access for trips and their stops and statuses.
// Persistence only; no business rules.
type TripRepository interface {
	// Create inserts the trip together with its stops and statuses in a single transaction.
	// Returns the stored trip with database-assigned IDs and created_at.
	Create(ctx context.Context, trip *model.Trip) (*model.Trip, error)

	// FindByID returns a trip with stops ordered by seq and statuses ordered by start time.
	// Returns sql.ErrNoRows when the trip does not exist.
	FindByID(ctx context.Context, id int64) (*model.Trip, error)

	// List returns a page of trips, newest first, without their stops and statuses.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Trip], error)

	// Delete removes a trip; stops, statuses and log sheet rows cascade.
	// Returns sql.ErrNoRows when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}

// LogSheetRepository stores metadata of archived log sheet PDFs.
type LogSheetRepository interface {
	Create(ctx context.Context, sheet *model.LogSheet) (*model.LogSheet, error)
	ListByTrip(ctx context.Context, tripID int64) ([]model.LogSheet, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
