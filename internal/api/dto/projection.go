package dto

import "time"

type ProjectionRequest struct {
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	DesiredArrival *time.Time `json:"desired_arrival"`
	RecipientPhone string     `json:"recipient_phone"`
}

type RouteResponse struct {
	StartAddress        string  `json:"start_address"`
	EndAddress          string  `json:"end_address"`
	Duration            string  `json:"duration"`
	DurationInTraffic   string  `json:"duration_in_traffic"`
	TrafficDelayMinutes float64 `json:"traffic_delay_minutes"`
}

type ProjectionResponse struct {
	Status    string         `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	Route     *RouteResponse `json:"route,omitempty"`
	DepartAt  *time.Time     `json:"depart_at,omitempty"`
	MessageID string         `json:"message_id,omitempty"`
}
