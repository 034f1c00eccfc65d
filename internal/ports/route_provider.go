package ports

import (
	"context"
	"eta-projector/internal/domain"
)

// Contract for retrieving live-traffic route information between two locations.
type RouteProvider interface {
	// Return the first leg of the best route from origin to destination.
	// Implementations return an error wrapping domain.ErrRouteUnavailable
	// when the provider answers without a usable route.
	FetchRoute(ctx context.Context, origin string, destination string) (domain.RouteInfo, error)
}
