package repositories

import (
	"context"
	"database/sql"
	"errors"
	"eta-projector/internal/domain"
	"fmt"
)

// SQL-backed implementation of the TripRepository port.
type SQLTripRepository struct{ DB *sql.DB }

func NewSQLTripRepository(db *sql.DB) *SQLTripRepository {
	return &SQLTripRepository{DB: db}
}

// Return all trips stored in the database.
func (s *SQLTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	if s.DB == nil {
		return nil, errors.New("sql trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		name,
		origin,
		destination,
		arrive_by,
		recipient_phone
	FROM trips
	ORDER BY trip_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(&t.TripID, &t.Name, &t.Origin, &t.Destination, &t.ArriveBy, &t.RecipientPhone); err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		trips = append(trips, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

func (s *SQLTripRepository) GetTrip(ctx context.Context, id int) (*domain.Trip, error) {
	if s.DB == nil {
		return nil, errors.New("sql trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		name,
		origin,
		destination,
		arrive_by,
		recipient_phone
	FROM trips
	WHERE trip_id = $1;
	`

	var t domain.Trip
	err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&t.TripID, &t.Name, &t.Origin, &t.Destination, &t.ArriveBy, &t.RecipientPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip %d: %w", id, domain.ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %d: %w", id, err)
	}

	return &t, nil
}
