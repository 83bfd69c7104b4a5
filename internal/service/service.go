// Package service implements the trip planning and log sheet use cases.
package service

import (
	"context"
	"database/sql"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNotFound           = errors.New("trip not found")
	ErrInvalidID          = errors.New("id must be a positive integer")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCoordinates = errors.New("invalid coordinate format")
	ErrInvalidCycle       = errors.New("current_cycle_used must be a non-negative number")
	ErrRouteUnavailable   = errors.New("route unavailable")
)

var tracer = otel.Tracer("tripapi/internal/service")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// fail records err on span and returns it unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
