package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"eta-projector/internal/domain"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		arrive_by TEXT NOT NULL,
		recipient_phone TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trips_recipient_phone
	ON trips(recipient_phone);
	`

	statements := []string{
		createTripsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TripSeed struct {
	TripID         int    `json:"trip_id"`
	Name           string `json:"name"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	ArriveBy       string `json:"arrive_by"`
	RecipientPhone string `json:"recipient_phone"`
}

// ParseTripSeeds decodes and validates a JSON array of trips.
func ParseTripSeeds(data []byte) ([]TripSeed, error) {
	var items []TripSeed
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("seed trips: parse json: %w", err)
	}

	rows := make([]TripSeed, 0, len(items))
	for i, item := range items {
		if item.TripID <= 0 {
			return nil, fmt.Errorf("seed trips: invalid trip_id at index %d: %d", i+1, item.TripID)
		}

		item.Name = strings.TrimSpace(item.Name)
		item.Origin = strings.TrimSpace(item.Origin)
		item.Destination = strings.TrimSpace(item.Destination)
		item.RecipientPhone = strings.TrimSpace(item.RecipientPhone)
		item.ArriveBy = strings.TrimSpace(item.ArriveBy)

		if item.Origin == "" || item.Destination == "" || item.RecipientPhone == "" {
			return nil, fmt.Errorf("seed trips: trip_id=%d: origin, destination and recipient_phone are required", item.TripID)
		}
		if _, _, err := domain.ParseClock(item.ArriveBy); err != nil {
			return nil, fmt.Errorf("seed trips: trip_id=%d: %w", item.TripID, err)
		}

		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the database with trip data from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed trips: read %q: %w", jsonPath, err)
	}

	rows, err := ParseTripSeeds(bytes)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed trips: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO trips (trip_id, name, origin, destination, arrive_by, recipient_phone)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (trip_id) DO UPDATE
	SET name = EXCLUDED.name,
		origin = EXCLUDED.origin,
		destination = EXCLUDED.destination,
		arrive_by = EXCLUDED.arrive_by,
		recipient_phone = EXCLUDED.recipient_phone;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed trips: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.TripID, r.Name, r.Origin, r.Destination, r.ArriveBy, r.RecipientPhone); err != nil {
			return fmt.Errorf("seed trips: insert trip_id=%d: %w", r.TripID, err)
		}
	}

	// Explicit ids bypass the sequence; move it past the seeded rows.
	if _, err := tx.ExecContext(ctx, `
	SELECT setval(pg_get_serial_sequence('trips', 'trip_id'), COALESCE(MAX(trip_id), 1))
	FROM trips;
	`); err != nil {
		return fmt.Errorf("seed trips: sync sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed trips: commit tx: %w", err)
	}

	return nil
}
