package services

import (
	"eta-projector/internal/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DurationSource selects how the traffic-adjusted travel time is turned into minutes.
type DurationSource string

const (
	// Round the provider's structured seconds to the nearest minute.
	DurationFromSeconds DurationSource = "seconds"
	// Parse the leading integer of the display string ("25 mins" -> 25).
	// "1 hour 5 mins" parses as 1; kept for parity with legacy notifications.
	DurationFromDisplay DurationSource = "display"
)

func ParseDurationSource(s string) (DurationSource, error) {
	switch src := DurationSource(strings.ToLower(strings.TrimSpace(s))); src {
	case DurationFromSeconds, DurationFromDisplay:
		return src, nil
	case "":
		return DurationFromSeconds, nil
	default:
		return "", fmt.Errorf("unknown duration source %q", s)
	}
}

// ComputeDeparture returns desiredArrival minus durationMinutes.
// The result keeps desiredArrival's location; no timezone normalization is done.
func ComputeDeparture(desiredArrival time.Time, durationMinutes int) time.Time {
	return desiredArrival.Add(-time.Duration(durationMinutes) * time.Minute)
}

// ParseDisplayMinutes reads the first whitespace-delimited token of a display
// duration as an integer. It assumes minute-only strings.
func ParseDisplayMinutes(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("parse display minutes: empty duration %q", text)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("parse display minutes %q: %w", text, err)
	}

	return n, nil
}

func MinutesFromSeconds(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

// TrafficMinutes returns the traffic-adjusted travel time of info in whole minutes.
func TrafficMinutes(info domain.RouteInfo, src DurationSource) (int, error) {
	switch src {
	case DurationFromDisplay:
		return ParseDisplayMinutes(info.DurationInTraffic)
	case DurationFromSeconds, "":
		return MinutesFromSeconds(info.DurationInTrafficSeconds), nil
	default:
		return 0, fmt.Errorf("traffic minutes: unknown duration source %q", src)
	}
}
