package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripapi/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_trips",
		SQL: `CREATE TABLE IF NOT EXISTS trips (
  id                       BIGSERIAL        PRIMARY KEY,
  current_location         TEXT             NOT NULL,
  current_location_address TEXT,
  pickup_location          TEXT             NOT NULL,
  pickup_address           TEXT,
  dropoff_location         TEXT             NOT NULL,
  dropoff_address          TEXT,
  current_cycle_used       DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (current_cycle_used >= 0),
  total_distance_miles     DOUBLE PRECISION,
  route_geometry           JSONB,
  created_at               TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_trips_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips (created_at);`,
	},
	{
		Name: "create_table_stops",
		SQL: `CREATE TABLE IF NOT EXISTS stops (
  id               BIGSERIAL        PRIMARY KEY,
  trip_id          BIGINT           NOT NULL REFERENCES trips (id) ON DELETE CASCADE,
  seq              INTEGER          NOT NULL,
  type             TEXT             NOT NULL CHECK (type IN ('Fuel', 'Pickup', 'Dropoff')),
  location_lat     DOUBLE PRECISION NOT NULL,
  location_lon     DOUBLE PRECISION NOT NULL,
  duration_minutes INTEGER          NOT NULL CHECK (duration_minutes >= 0)
);`,
	},
	{
		Name: "create_index_stops_trip_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_stops_trip_id ON stops (trip_id, seq);`,
	},
	{
		Name: "create_table_trip_statuses",
		SQL: `CREATE TABLE IF NOT EXISTS trip_statuses (
  id         BIGSERIAL   PRIMARY KEY,
  trip_id    BIGINT      NOT NULL REFERENCES trips (id) ON DELETE CASCADE,
  status     TEXT        NOT NULL CHECK (status IN ('OFF_DUTY', 'SLEEPER', 'DRIVING', 'ON_DUTY')),
  start_time TIMESTAMPTZ NOT NULL,
  end_time   TIMESTAMPTZ NOT NULL,
  location   TEXT
);`,
	},
	{
		Name: "create_index_trip_statuses_trip_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_trip_statuses_trip_id ON trip_statuses (trip_id, start_time);`,
	},
	{
		Name: "create_table_logsheets",
		SQL: `CREATE TABLE IF NOT EXISTS logsheets (
  id           UUID        PRIMARY KEY,
  trip_id      BIGINT      NOT NULL REFERENCES trips (id) ON DELETE CASCADE,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_logsheets_trip_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_logsheets_trip_id ON logsheets (trip_id, created_at);`,
	},
}

// sentinelQuery checks for the table created last, so a schema is only considered
// complete once every step has been applied.
const sentinelQuery = "SELECT to_regclass('public.logsheets') IS NOT NULL"

// EnsureMigrated creates the schema unless the sentinel table already exists.
// All steps run in one transaction: a failed run leaves nothing behind and the
// next start applies the whole schema again.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logging.Event(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists)
	if err != nil {
		logging.Event(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logging.Event(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logging.Event(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logging.Event(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("begin transaction: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("begin migration transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err = tx.ExecContext(ctx, step.SQL); err != nil {
			logging.Event(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logging.Event(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	if err = tx.Commit(); err != nil {
		logging.Event(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("commit: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("commit migration: %w", err)
	}

	logging.Event(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}
