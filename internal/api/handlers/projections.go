package handlers

import (
	"encoding/json"
	"eta-projector/internal/api/dto"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ProjectionHandler struct {
	Projector ProjectionRunner
}

// Project runs one ETA projection for an ad-hoc trip.
// An aborted run (no usable route) is still a 200 with status "aborted".
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ProjectionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	phone := strings.TrimSpace(req.RecipientPhone)

	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if phone == "" {
		writeError(w, r, http.StatusBadRequest, "recipient_phone is required")
		return
	}
	if req.DesiredArrival == nil {
		writeError(w, r, http.StatusBadRequest, "desired_arrival is required")
		return
	}

	res, err := h.Projector.Run(r.Context(), domain.ProjectionRequest{
		Origin:         origin,
		Destination:    destination,
		DesiredArrival: *req.DesiredArrival,
		RecipientPhone: phone,
	})
	if err != nil {
		obs.Logger(r.Context()).Error("projection failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "upstream provider failure")
		return
	}

	writeJSON(w, r, http.StatusOK, toProjectionResponse(res))
}
