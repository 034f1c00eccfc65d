package ports

import (
	"context"
	"eta-projector/internal/domain"
)

// Port: a boundary for retrieving stored Trip definitions.
type TripRepository interface {
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
	// Return domain.ErrTripNotFound when no trip has the given id.
	GetTrip(ctx context.Context, id int) (*domain.Trip, error)
}
