// Package routing fetches driving routes from an external routing service.
package routing

import (
	"context"
	"errors"

	"tripapi/internal/model"
)

var (
	// ErrNoRoute is returned when the routing service answers without any route.
	ErrNoRoute = errors.New("no routes found")
	// ErrTooFewWaypoints is returned when fewer than two waypoints are requested.
	ErrTooFewWaypoints = errors.New("at least two waypoints are required")
)

// Route is the best driving route through a list of waypoints.
type Route struct {
	DistanceMeters  float64          `msgpack:"distance_m"`
	DurationSeconds float64          `msgpack:"duration_s"`
	Geometry        model.LineString `msgpack:"geometry"`
}

// Router returns a driving route visiting waypoints in order.
type Router interface {
	Route(ctx context.Context, waypoints []model.Coordinates) (*Route, error)
}
