package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"tripapi/internal/logging"
	"tripapi/internal/model"
	"tripapi/internal/planner"
	"tripapi/internal/repository"
	"tripapi/internal/routing"
	"tripapi/internal/storage"
)

// CreateTripInput is what a client submits to plan a trip.
type CreateTripInput struct {
	CurrentLocation        string
	CurrentLocationAddress *string
	PickupLocation         string
	PickupAddress          *string
	DropoffLocation        string
	DropoffAddress         *string
	CurrentCycleUsed       float64
}

// TripListResult is the service-level DTO for paginated trips.
type TripListResult struct {
	Items []model.Trip `json:"data"`
	Total int          `json:"total"`
}

// TripLog is the duty-status summary of a trip.
type TripLog struct {
	TripID             int64           `json:"trip_id"`
	PickupLocation     *string         `json:"pickup_location"`
	DropoffLocation    *string         `json:"dropoff_location"`
	TotalDistanceMiles float64         `json:"total_distance_miles"`
	CurrentCycleUsed   float64         `json:"current_cycle_used"`
	Statuses           []TripLogStatus `json:"statuses"`
}

// TripLogStatus is a status interval with "HH:MM" times.
type TripLogStatus struct {
	Status    model.DutyStatus `json:"status"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Location  *string          `json:"location"`
}

// TripService defines the use cases for planning and reading trips.
type TripService interface {
	// Create validates the input, routes current -> pickup -> dropoff, derives stops and
	// statuses and persists everything atomically.
	Create(ctx context.Context, in CreateTripInput) (*model.Trip, error)

	// Get returns a trip with its stops and statuses.
	Get(ctx context.Context, id int64) (*model.Trip, error)

	// List returns trips using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*TripListResult, error)

	// Log returns the duty-status log of a trip.
	Log(ctx context.Context, id int64) (*TripLog, error)

	// Delete removes a trip and the archived log sheets stored for it.
	Delete(ctx context.Context, id int64) error
}

type tripService struct {
	router routing.Router
	repo   repository.TripRepository
	sheets repository.LogSheetRepository
	store  storage.Storage
	loc    *time.Location
	now    func() time.Time
}

// NewTripService constructs a TripService. store may be nil when archiving is disabled.
func NewTripService(router routing.Router, repo repository.TripRepository, sheets repository.LogSheetRepository, store storage.Storage, loc *time.Location) TripService {
	if loc == nil {
		loc = time.UTC
	}
	return &tripService{
		router: router,
		repo:   repo,
		sheets: sheets,
		store:  store,
		loc:    loc,
		now:    time.Now,
	}
}

func (s *tripService) Create(ctx context.Context, in CreateTripInput) (*model.Trip, error) {
	ctx, span := startSpan(ctx, "TripService.Create")
	defer span.End()

	current, pickup, dropoff, err := validateTrip(&in)
	if err != nil {
		return nil, fail(span, err)
	}

	route, err := s.router.Route(ctx, []model.Coordinates{current, pickup, dropoff})
	if err != nil {
		return nil, fail(span, fmt.Errorf("%w: %w", ErrRouteUnavailable, err))
	}

	plan := planner.Build(planner.Input{
		Pickup:         pickup,
		Dropoff:        dropoff,
		PickupAddress:  in.PickupAddress,
		DropoffAddress: in.DropoffAddress,
		DistanceMeters: route.DistanceMeters,
		Geometry:       route.Geometry,
	}, s.now())

	trip := &model.Trip{
		CurrentLocation:        in.CurrentLocation,
		CurrentLocationAddress: in.CurrentLocationAddress,
		PickupLocation:         in.PickupLocation,
		PickupAddress:          in.PickupAddress,
		DropoffLocation:        in.DropoffLocation,
		DropoffAddress:         in.DropoffAddress,
		CurrentCycleUsed:       in.CurrentCycleUsed,
		TotalDistanceMiles:     plan.TotalDistanceMiles,
		RouteGeometry:          route.Geometry,
		Stops:                  plan.Stops,
		Statuses:               plan.Statuses,
	}

	stored, err := s.repo.Create(ctx, trip)
	if err != nil {
		return nil, fail(span, fmt.Errorf("save trip: %w", err))
	}

	span.SetAttributes(
		attribute.Int64("trip.id", stored.ID),
		attribute.Float64("trip.distance_miles", stored.TotalDistanceMiles),
		attribute.Int("trip.stops", len(stored.Stops)),
	)
	logging.Event(s.loc, map[string]any{
		"component":      "service",
		"event":          "trip_created",
		"status":         "success",
		"trip_id":        stored.ID,
		"distance_miles": stored.TotalDistanceMiles,
		"stops":          len(stored.Stops),
	})
	return stored, nil
}

// validateTrip trims the locations in place and parses them.
func validateTrip(in *CreateTripInput) (current, pickup, dropoff model.Coordinates, err error) {
	in.CurrentLocation = strings.TrimSpace(in.CurrentLocation)
	in.PickupLocation = strings.TrimSpace(in.PickupLocation)
	in.DropoffLocation = strings.TrimSpace(in.DropoffLocation)
	if in.CurrentLocation == "" || in.PickupLocation == "" || in.DropoffLocation == "" {
		err = ErrMissingFields
		return
	}

	fields := []struct {
		name  string
		value string
		dst   *model.Coordinates
	}{
		{"current_location", in.CurrentLocation, &current},
		{"pickup_location", in.PickupLocation, &pickup},
		{"dropoff_location", in.DropoffLocation, &dropoff},
	}
	for _, f := range fields {
		c, perr := model.ParseCoordinates(f.value)
		if perr != nil {
			err = fmt.Errorf("%w: %s", ErrInvalidCoordinates, f.name)
			return
		}
		*f.dst = c
	}

	if in.CurrentCycleUsed < 0 || math.IsNaN(in.CurrentCycleUsed) || math.IsInf(in.CurrentCycleUsed, 0) {
		err = ErrInvalidCycle
	}
	return
}

func (s *tripService) Get(ctx context.Context, id int64) (*model.Trip, error) {
	ctx, span := startSpan(ctx, "TripService.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("trip.id", id))

	trip, err := s.find(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}
	return trip, nil
}

// List returns paginated trips without exposing repository types.
func (s *tripService) List(ctx context.Context, limit, offset int) (*TripListResult, error) {
	ctx, span := startSpan(ctx, "TripService.List")
	defer span.End()

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fail(span, err)
	}
	return &TripListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *tripService) Log(ctx context.Context, id int64) (*TripLog, error) {
	ctx, span := startSpan(ctx, "TripService.Log")
	defer span.End()
	span.SetAttributes(attribute.Int64("trip.id", id))

	trip, err := s.find(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}

	statuses := make([]TripLogStatus, 0, len(trip.Statuses))
	for _, st := range trip.Statuses {
		statuses = append(statuses, TripLogStatus{
			Status:    st.Status,
			StartTime: s.clock(st.StartTime),
			EndTime:   s.clock(st.EndTime),
			Location:  st.Location,
		})
	}

	return &TripLog{
		TripID:             trip.ID,
		PickupLocation:     trip.PickupAddress,
		DropoffLocation:    trip.DropoffAddress,
		TotalDistanceMiles: trip.TotalDistanceMiles,
		CurrentCycleUsed:   trip.CurrentCycleUsed,
		Statuses:           statuses,
	}, nil
}

// clock renders t as "HH:MM" in the service time zone; the zero time renders as "00:00".
func (s *tripService) clock(t time.Time) string {
	if t.IsZero() {
		return "00:00"
	}
	return t.In(s.loc).Format("15:04")
}

// Delete removes the archived objects first, then the trip row. If storage fails the
// rows are kept so the object keys are not lost.
func (s *tripService) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "TripService.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("trip.id", id))

	if id <= 0 {
		return fail(span, ErrInvalidID)
	}
	if _, err := s.find(ctx, id); err != nil {
		return fail(span, err)
	}

	if s.store != nil {
		sheets, err := s.sheets.ListByTrip(ctx, id)
		if err != nil {
			return fail(span, fmt.Errorf("list log sheets: %w", err))
		}
		for _, sh := range sheets {
			if err := s.store.Delete(ctx, sh.StoragePath); err != nil {
				return fail(span, fmt.Errorf("delete storage: %w", err))
			}
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return fail(span, ErrNotFound)
		}
		return fail(span, err)
	}
	return nil
}

func (s *tripService) find(ctx context.Context, id int64) (*model.Trip, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	trip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}
