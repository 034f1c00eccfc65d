package directions

import (
	"context"
	"encoding/json"
	"errors"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com"

// GoogleDirectionsProvider implements RouteProvider using the Google Maps
// Directions API with live traffic ("departure_time=now", best_guess model).
//
// Every call is a single round trip: no caching and no retries.
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	trafficModel string
}

// NewGoogleDirectionsProvider builds a provider. An empty baseURL selects the
// public Google endpoint; a zero timeout leaves requests bounded only by ctx.
func NewGoogleDirectionsProvider(
	apiKey string,
	baseURL string,
	timeout time.Duration,
) (*GoogleDirectionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google directions api key is empty")
	}

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	provider := &GoogleDirectionsProvider{
		session:      &http.Client{Timeout: timeout},
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		trafficModel: "best_guess",
	}

	return provider, nil
}

// FetchRoute returns the first leg of the first route from origin to destination.
//
// A response without routes or legs, or with a leg missing any required field,
// yields an error wrapping domain.ErrRouteUnavailable, whatever the HTTP status.
// Transport failures and non-JSON bodies are returned as-is.
// Locations are sent exactly as given; only blank values are rejected locally.
func (g *GoogleDirectionsProvider) FetchRoute(
	ctx context.Context,
	origin string,
	destination string,
) (_ domain.RouteInfo, err error) {
	defer obs.Time(ctx, "directions.FetchRoute")(&err)

	q := domain.RouteQuery{Origin: origin, Destination: destination}
	if strings.TrimSpace(q.Origin) == "" || strings.TrimSpace(q.Destination) == "" {
		return domain.RouteInfo{}, errors.New("fetch route: origin and destination must be non-empty")
	}

	params := url.Values{}
	params.Set("origin", q.Origin)
	params.Set("destination", q.Destination)
	params.Set("key", g.apiKey)
	params.Set("departure_time", "now")
	params.Set("traffic_model", g.trafficModel)

	req, err := g.newRequest(ctx, g.baseURL+"/maps/api/directions/json", params)
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("fetch route: %w", err)
	}

	var decoded directionsResponse

	resp, err := g.do(req)
	var he *httpStatusError
	switch {
	case errors.As(err, &he):
		// Error statuses with a JSON body are judged by their route structure.
		if jsonErr := json.Unmarshal([]byte(he.Body), &decoded); jsonErr != nil {
			return domain.RouteInfo{}, fmt.Errorf("fetch route %q -> %q: %w", q.Origin, q.Destination, err)
		}
	case err != nil:
		return domain.RouteInfo{}, fmt.Errorf("fetch route %q -> %q: %w", q.Origin, q.Destination, err)
	default:
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return domain.RouteInfo{}, fmt.Errorf("fetch route: decode directions response: %w", err)
		}
	}

	info, err := decoded.firstLeg()
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("fetch route %q -> %q: %w", q.Origin, q.Destination, err)
	}

	return info, nil
}
