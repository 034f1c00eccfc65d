package handlers

import (
	"errors"
	"eta-projector/internal/api/dto"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"eta-projector/internal/ports"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// TripHandler exposes stored trips and on-demand notification for them.
type TripHandler struct {
	Repo      ports.TripRepository
	Projector ProjectionRunner
	Now       func() time.Time
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		obs.Logger(r.Context()).Error("list trips failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{
		Trips: make([]dto.TripResponse, 0, len(trips)),
	}
	for _, t := range trips {
		res.Trips = append(res.Trips, dto.TripResponse{
			TripID:         t.TripID,
			Name:           t.Name,
			Origin:         t.Origin,
			Destination:    t.Destination,
			ArriveBy:       t.ArriveBy,
			RecipientPhone: t.RecipientPhone,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Notify projects the next arrival of a stored trip and notifies its recipient.
func (h *TripHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "trip id must be a positive integer")
		return
	}

	log := obs.Logger(r.Context()).With(zap.Int("trip_id", id))

	trip, err := h.Repo.GetTrip(r.Context(), id)
	if errors.Is(err, domain.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Error("get trip failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	arrival, err := trip.NextArrival(now())
	if err != nil {
		log.Error("invalid stored trip", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res, err := h.Projector.Run(r.Context(), trip.ProjectionRequest(arrival))
	if err != nil {
		log.Error("projection failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "upstream provider failure")
		return
	}

	writeJSON(w, r, http.StatusOK, toProjectionResponse(res))
}
