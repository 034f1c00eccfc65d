package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrTripNotFound = errors.New("trip not found")

const clockLayout = "15:04"

// Represents a stored, recurring trip.
// ArriveBy is a wall-clock time ("HH:MM") interpreted in the caller's location.
type Trip struct {
	TripID         int
	Name           string
	Origin         string
	Destination    string
	ArriveBy       string
	RecipientPhone string
}

// ParseClock validates an "HH:MM" wall-clock string and returns its hour and minute.
func ParseClock(s string) (int, int, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextArrival returns the next occurrence of ArriveBy strictly after now,
// in now's location.
func (t Trip) NextArrival(now time.Time) (time.Time, error) {
	hour, minute, err := ParseClock(t.ArriveBy)
	if err != nil {
		return time.Time{}, fmt.Errorf("trip %d next arrival: %w", t.TripID, err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}

// ProjectionRequest builds the pipeline input for this trip arriving at the given time.
func (t Trip) ProjectionRequest(arrival time.Time) ProjectionRequest {
	q := RouteQuery{Origin: t.Origin, Destination: t.Destination}
	return q.ProjectionRequestAt(arrival, t.RecipientPhone)
}
