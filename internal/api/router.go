package api

import (
	"eta-projector/internal/api/handlers"
	"eta-projector/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Trip routes are only mounted when a repository is configured.
func NewRouter(logger *zap.Logger, projector handlers.ProjectionRunner, trips ports.TripRepository) http.Handler {
	mux := http.NewServeMux()

	projectionHandler := &handlers.ProjectionHandler{Projector: projector}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/projections", projectionHandler.Project)

	if trips != nil {
		tripHandler := &handlers.TripHandler{Repo: trips, Projector: projector}
		mux.HandleFunc("/trips", tripHandler.List)
		mux.HandleFunc("/trips/{id}/notify", tripHandler.Notify)
	}

	return loggingMiddleware(logger, mux)
}
