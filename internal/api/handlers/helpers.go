package handlers

import (
	"context"
	"encoding/json"
	"eta-projector/internal/api/dto"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"net/http"

	"go.uber.org/zap"
)

// ProjectionRunner runs one ETA projection.
type ProjectionRunner interface {
	Run(ctx context.Context, req domain.ProjectionRequest) (domain.ProjectionResult, error)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger(r.Context()).Error("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toProjectionResponse(res domain.ProjectionResult) dto.ProjectionResponse {
	out := dto.ProjectionResponse{
		Status: string(res.Status),
		Reason: res.Reason,
	}
	if res.Status != domain.StatusNotified {
		return out
	}

	departAt := res.Departure
	out.DepartAt = &departAt
	out.MessageID = res.Receipt.MessageID
	out.Route = &dto.RouteResponse{
		StartAddress:        res.Route.StartAddress,
		EndAddress:          res.Route.EndAddress,
		Duration:            res.Route.Duration,
		DurationInTraffic:   res.Route.DurationInTraffic,
		TrafficDelayMinutes: res.Route.TrafficDelayMinutes,
	}
	return out
}
