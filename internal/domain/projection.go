package domain

import "time"

type ProjectionStatus string

const (
	StatusNotified ProjectionStatus = "notified"
	StatusAborted  ProjectionStatus = "aborted"
)

// Input of one ETA projection run.
type ProjectionRequest struct {
	Origin         string
	Destination    string
	DesiredArrival time.Time
	RecipientPhone string
}

// Terminal state of one projection run.
// Aborted results carry only Reason; notified results carry the route,
// the computed departure time and the provider receipt.
type ProjectionResult struct {
	Status    ProjectionStatus
	Reason    string
	Route     RouteInfo
	Departure time.Time
	Receipt   NotificationReceipt
}
