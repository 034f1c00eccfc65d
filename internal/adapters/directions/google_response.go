package directions

import (
	"encoding/json"
	"eta-projector/internal/domain"
	"fmt"
)

// Pointer fields distinguish "absent" from zero values so that
// incomplete legs are reported instead of silently defaulted.
type textValue struct {
	Text  *string `json:"text"`
	// Seconds. Google sends integers; fractional values are accepted.
	Value *json.Number `json:"value"`
}

type directionsLeg struct {
	Duration          *textValue `json:"duration"`
	DurationInTraffic *textValue `json:"duration_in_traffic"`
	StartAddress      *string    `json:"start_address"`
	EndAddress        *string    `json:"end_address"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []directionsLeg `json:"legs"`
	} `json:"routes"`
}

func (tv *textValue) complete() bool {
	return tv != nil && tv.Text != nil && tv.Value != nil
}

func (tv *textValue) seconds() (float64, error) {
	f, err := tv.Value.Float64()
	if err != nil {
		return 0, fmt.Errorf("duration value %q: %w", tv.Value.String(), err)
	}
	return f, nil
}

// firstLeg extracts routes[0].legs[0] into a RouteInfo.
func (r *directionsResponse) firstLeg() (domain.RouteInfo, error) {
	if len(r.Routes) == 0 || len(r.Routes[0].Legs) == 0 {
		return domain.RouteInfo{}, fmt.Errorf(
			"%w: no route leg (status=%q message=%q)",
			domain.ErrRouteUnavailable, r.Status, r.ErrorMessage,
		)
	}

	leg := r.Routes[0].Legs[0]
	if !leg.Duration.complete() || !leg.DurationInTraffic.complete() ||
		leg.StartAddress == nil || leg.EndAddress == nil {
		return domain.RouteInfo{}, fmt.Errorf("%w: incomplete route leg", domain.ErrRouteUnavailable)
	}

	free, err := leg.Duration.seconds()
	if err != nil {
		return domain.RouteInfo{}, err
	}
	traffic, err := leg.DurationInTraffic.seconds()
	if err != nil {
		return domain.RouteInfo{}, err
	}

	return domain.RouteInfo{
		Duration:                 *leg.Duration.Text,
		DurationInTraffic:        *leg.DurationInTraffic.Text,
		DurationSeconds:          int(free),
		DurationInTrafficSeconds: int(traffic),
		TrafficDelayMinutes:      domain.TrafficDelay(free, traffic),
		StartAddress:             *leg.StartAddress,
		EndAddress:               *leg.EndAddress,
	}, nil
}
