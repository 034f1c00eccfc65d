package services

import (
	"context"
	"errors"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"eta-projector/internal/ports"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Projector runs the ETA pipeline: fetch route, compute departure, notify.
//
// A run ends either notified or aborted (no usable route). Running twice
// sends two messages. Projector holds no per-run state and may be shared.
type Projector struct {
	routes         ports.RouteProvider
	messenger      ports.Messenger
	fromNumber     string
	durationSource DurationSource
}

func NewProjector(
	routes ports.RouteProvider,
	messenger ports.Messenger,
	fromNumber string,
	durationSource DurationSource,
) (*Projector, error) {
	if routes == nil || messenger == nil {
		return nil, errors.New("new projector: route provider and messenger must be non-nil")
	}
	if fromNumber == "" {
		return nil, errors.New("new projector: sender number must not be empty")
	}

	return &Projector{
		routes:         routes,
		messenger:      messenger,
		fromNumber:     fromNumber,
		durationSource: durationSource,
	}, nil
}

func (p *Projector) Run(ctx context.Context, req domain.ProjectionRequest) (_ domain.ProjectionResult, err error) {
	if obs.RunID(ctx) == "" {
		ctx = obs.WithRunID(ctx, uuid.NewString())
	}
	defer obs.Time(ctx, "projector.Run")(&err)

	log := obs.Logger(ctx).With(
		zap.String("run_id", obs.RunID(ctx)),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
	)

	info, err := p.routes.FetchRoute(ctx, req.Origin, req.Destination)
	if errors.Is(err, domain.ErrRouteUnavailable) {
		log.Warn(domain.ErrRouteUnavailable.Error(), zap.Error(err))
		return domain.ProjectionResult{
			Status: domain.StatusAborted,
			Reason: domain.ErrRouteUnavailable.Error(),
		}, nil
	}
	if err != nil {
		return domain.ProjectionResult{}, fmt.Errorf("run projection: fetch route: %w", err)
	}

	minutes, err := TrafficMinutes(info, p.durationSource)
	if err != nil {
		return domain.ProjectionResult{}, fmt.Errorf("run projection: %w", err)
	}

	departure := ComputeDeparture(req.DesiredArrival, minutes)
	log.Info("departure computed",
		zap.Int("travel_minutes", minutes),
		zap.Float64("traffic_delay_minutes", info.TrafficDelayMinutes),
		zap.Time("desired_arrival", req.DesiredArrival),
		zap.Time("departure", departure),
	)

	receipt, err := SendNotification(ctx, p.messenger, p.fromNumber, info, departure, req.RecipientPhone)
	if err != nil {
		return domain.ProjectionResult{}, fmt.Errorf("run projection: %w", err)
	}

	return domain.ProjectionResult{
		Status:    domain.StatusNotified,
		Route:     info,
		Departure: departure,
		Receipt:   receipt,
	}, nil
}
