package domain

import (
	"errors"
	"time"
)

// ErrRouteUnavailable is returned when a directions response carries no usable route leg
// (no routes, no legs, or a leg missing duration/address fields).
// Its message is shown to users verbatim.
var ErrRouteUnavailable = errors.New("Unable to retrieve route information")

// Immutable origin/destination pair for a single directions lookup.
type RouteQuery struct {
	Origin      string
	Destination string
}

// ProjectionRequestAt builds the pipeline input for this query arriving at arrival.
func (q RouteQuery) ProjectionRequestAt(arrival time.Time, recipientPhone string) ProjectionRequest {
	return ProjectionRequest{
		Origin:         q.Origin,
		Destination:    q.Destination,
		DesiredArrival: arrival,
		RecipientPhone: recipientPhone,
	}
}

// Represents the first leg of the first route returned by a directions provider.
// Duration strings are display forms ("25 mins"); the *Seconds fields carry
// the provider's structured values.
type RouteInfo struct {
	Duration                 string
	DurationInTraffic        string
	DurationSeconds          int
	DurationInTrafficSeconds int
	// Live-traffic duration minus baseline duration, in fractional minutes.
	// Negative when traffic is lighter than the baseline.
	TrafficDelayMinutes float64
	StartAddress        string
	EndAddress          string
}

// TrafficDelay returns the delay in fractional minutes between two durations in seconds.
func TrafficDelay(durationSeconds, durationInTrafficSeconds float64) float64 {
	return (durationInTrafficSeconds - durationSeconds) / 60
}
