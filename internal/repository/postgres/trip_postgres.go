package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tripapi/internal/model"
	"tripapi/internal/repository"
)

// TripPostgres is a PostgreSQL implementation of repository.TripRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type TripPostgres struct {
	db *sql.DB
}

// NewTripPostgres creates a new TripPostgres repository.
func NewTripPostgres(db *sql.DB) *TripPostgres {
	return &TripPostgres{db: db}
}

var _ repository.TripRepository = (*TripPostgres)(nil)

const tripColumns = `id, current_location, current_location_address, pickup_location, pickup_address,
		dropoff_location, dropoff_address, current_cycle_used, total_distance_miles, route_geometry, created_at`

// Create inserts the trip row, then its stops and statuses, all in one transaction.
func (r *TripPostgres) Create(ctx context.Context, trip *model.Trip) (_ *model.Trip, err error) {
	geometry, err := json.Marshal(trip.RouteGeometry)
	if err != nil {
		return nil, fmt.Errorf("encode route geometry: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	out := *trip
	const qTrip = `
		INSERT INTO trips (current_location, current_location_address, pickup_location, pickup_address,
			dropoff_location, dropoff_address, current_cycle_used, total_distance_miles, route_geometry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	if err = tx.QueryRowContext(ctx, qTrip,
		trip.CurrentLocation,
		trip.CurrentLocationAddress,
		trip.PickupLocation,
		trip.PickupAddress,
		trip.DropoffLocation,
		trip.DropoffAddress,
		trip.CurrentCycleUsed,
		trip.TotalDistanceMiles,
		geometry,
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}

	const qStop = `
		INSERT INTO stops (trip_id, seq, type, location_lat, location_lon, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	out.Stops = make([]model.Stop, len(trip.Stops))
	for i, s := range trip.Stops {
		s.TripID = out.ID
		if err = tx.QueryRowContext(ctx, qStop,
			s.TripID, s.Seq, string(s.Type), s.LocationLat, s.LocationLon, s.DurationMinutes,
		).Scan(&s.ID); err != nil {
			return nil, fmt.Errorf("insert stop %d: %w", i, err)
		}
		out.Stops[i] = s
	}

	const qStatus = `
		INSERT INTO trip_statuses (trip_id, status, start_time, end_time, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	out.Statuses = make([]model.TripStatus, len(trip.Statuses))
	for i, s := range trip.Statuses {
		s.TripID = out.ID
		if err = tx.QueryRowContext(ctx, qStatus,
			s.TripID, string(s.Status), s.StartTime, s.EndTime, s.Location,
		).Scan(&s.ID); err != nil {
			return nil, fmt.Errorf("insert status %d: %w", i, err)
		}
		out.Statuses[i] = s
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a trip with its stops and statuses.
func (r *TripPostgres) FindByID(ctx context.Context, id int64) (*model.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	trip, err := scanTrip(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}

	if trip.Stops, err = r.stops(ctx, id); err != nil {
		return nil, err
	}
	if trip.Statuses, err = r.statuses(ctx, id); err != nil {
		return nil, err
	}
	return trip, nil
}

// List returns trips using LIMIT/OFFSET pagination and a total count.
func (r *TripPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Trip], error) {
	const qCount = `SELECT COUNT(*) FROM trips`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		t.Stops = []model.Stop{}
		t.Statuses = []model.TripStatus{}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Trip]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a trip by ID.
func (r *TripPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM trips WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TripPostgres) stops(ctx context.Context, tripID int64) ([]model.Stop, error) {
	const q = `
		SELECT id, trip_id, seq, type, location_lat, location_lon, duration_minutes
		FROM stops
		WHERE trip_id = $1
		ORDER BY seq, id
	`
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Stop, 0)
	for rows.Next() {
		var s model.Stop
		if err := rows.Scan(&s.ID, &s.TripID, &s.Seq, &s.Type, &s.LocationLat, &s.LocationLon, &s.DurationMinutes); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *TripPostgres) statuses(ctx context.Context, tripID int64) ([]model.TripStatus, error) {
	const q = `
		SELECT id, trip_id, status, start_time, end_time, location
		FROM trip_statuses
		WHERE trip_id = $1
		ORDER BY start_time, id
	`
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TripStatus, 0)
	for rows.Next() {
		var (
			s        model.TripStatus
			location sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.TripID, &s.Status, &s.StartTime, &s.EndTime, &location); err != nil {
			return nil, err
		}
		s.Location = nullableString(location)
		items = append(items, s)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*model.Trip, error) {
	var (
		t                        model.Trip
		current, pickup, dropoff sql.NullString
		distance                 sql.NullFloat64
		geometry                 []byte
	)
	if err := row.Scan(
		&t.ID,
		&t.CurrentLocation,
		&current,
		&t.PickupLocation,
		&pickup,
		&t.DropoffLocation,
		&dropoff,
		&t.CurrentCycleUsed,
		&distance,
		&geometry,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}

	t.CurrentLocationAddress = nullableString(current)
	t.PickupAddress = nullableString(pickup)
	t.DropoffAddress = nullableString(dropoff)
	t.TotalDistanceMiles = distance.Float64
	if len(geometry) > 0 {
		if err := json.Unmarshal(geometry, &t.RouteGeometry); err != nil {
			return nil, fmt.Errorf("decode route geometry: %w", err)
		}
	}
	return &t, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
