package api

import (
	"context"
	"encoding/json"
	"eta-projector/internal/adapters/directions"
	"eta-projector/internal/adapters/messaging"
	"eta-projector/internal/api/dto"
	"eta-projector/internal/domain"
	"eta-projector/internal/services"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memTripRepo struct {
	trips map[int]*domain.Trip
}

func (m *memTripRepo) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	out := make([]*domain.Trip, 0, len(m.trips))
	for id := 1; id <= len(m.trips); id++ {
		if t, ok := m.trips[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTripRepo) GetTrip(ctx context.Context, id int) (*domain.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, fmt.Errorf("get trip %d: %w", id, domain.ErrTripNotFound)
	}
	return t, nil
}

type testEnv struct {
	handler   http.Handler
	messenger *messaging.MockMessenger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	provider := directions.NewMockRouteProvider(map[domain.RouteQuery]domain.RouteInfo{
		{Origin: "Albany", Destination: "NYC"}: {
			Duration:                 "150 mins",
			DurationInTraffic:        "165 mins",
			DurationSeconds:          9000,
			DurationInTrafficSeconds: 9900,
			TrafficDelayMinutes:      15,
			StartAddress:             "Albany, NY",
			EndAddress:               "New York, NY",
		},
	})
	m := &messaging.MockMessenger{}

	projector, err := services.NewProjector(provider, m, "+15550001111", services.DurationFromSeconds)
	require.NoError(t, err)

	repo := &memTripRepo{trips: map[int]*domain.Trip{
		1: {TripID: 1, Name: "commute", Origin: "Albany", Destination: "NYC", ArriveBy: "09:00", RecipientPhone: "+1234567890"},
		2: {TripID: 2, Name: "nowhere", Origin: "Atlantis", Destination: "NYC", ArriveBy: "10:00", RecipientPhone: "+1234567890"},
	}}

	return &testEnv{
		handler:   NewRouter(zap.NewNop(), projector, repo),
		messenger: m,
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestProjectNotified(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/projections", `{
		"origin": "Albany",
		"destination": "NYC",
		"desired_arrival": "2026-01-01T12:00:00Z",
		"recipient_phone": "+1234567890"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.ProjectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "notified", res.Status)
	assert.Equal(t, "SM0001", res.MessageID)
	require.NotNil(t, res.DepartAt)
	assert.True(t, res.DepartAt.Equal(time.Date(2026, 1, 1, 9, 15, 0, 0, time.UTC)))
	require.NotNil(t, res.Route)
	assert.Equal(t, 15.0, res.Route.TrafficDelayMinutes)

	require.Len(t, env.messenger.Sent, 1)
	assert.Contains(t, env.messenger.Sent[0].Body, "Best Time to Leave: 09:15 AM")
}

func TestProjectAborted(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/projections", `{
		"origin": "Atlantis",
		"destination": "NYC",
		"desired_arrival": "2026-01-01T12:00:00Z",
		"recipient_phone": "+1234567890"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"aborted","reason":"Unable to retrieve route information"}`, rec.Body.String())
	assert.Empty(t, env.messenger.Sent)
}

func TestProjectBadRequests(t *testing.T) {
	env := newTestEnv(t)

	tests := map[string]string{
		"invalid json":     `{`,
		"unknown field":    `{"origin":"A","destination":"B","desired_arrival":"2026-01-01T12:00:00Z","recipient_phone":"+1","extra":1}`,
		"missing origin":   `{"destination":"B","desired_arrival":"2026-01-01T12:00:00Z","recipient_phone":"+1"}`,
		"missing phone":    `{"origin":"A","destination":"B","desired_arrival":"2026-01-01T12:00:00Z"}`,
		"missing arrival":  `{"origin":"A","destination":"B","recipient_phone":"+1"}`,
		"trailing objects": `{"origin":"A","destination":"B","desired_arrival":"2026-01-01T12:00:00Z","recipient_phone":"+1"}{}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/projections", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Empty(t, env.messenger.Sent)
}

func TestProjectUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.messenger.Err = fmt.Errorf("authenticate: 401")

	rec := env.do(http.MethodPost, "/projections", `{
		"origin": "Albany",
		"destination": "NYC",
		"desired_arrival": "2026-01-01T12:00:00Z",
		"recipient_phone": "+1234567890"
	}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestListTrips(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/trips", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListTripsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Trips, 2)
	assert.Equal(t, "commute", res.Trips[0].Name)
}

func TestNotifyTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/trips/1/notify", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.ProjectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "notified", res.Status)
	require.NotNil(t, res.DepartAt)
	assert.Equal(t, 6, res.DepartAt.Hour())
	assert.Equal(t, 15, res.DepartAt.Minute())

	require.Len(t, env.messenger.Sent, 1)
	assert.Equal(t, "+1234567890", env.messenger.Sent[0].To)
}

func TestNotifyTripErrors(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodPost, "/trips/42/notify", "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/trips/abc/notify", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, env.do(http.MethodGet, "/trips/1/notify", "").Code)

	rec := env.do(http.MethodPost, "/trips/2/notify", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"aborted"`)
	assert.Empty(t, env.messenger.Sent)
}

func TestTripRoutesRequireRepository(t *testing.T) {
	projector, err := services.NewProjector(
		directions.NewMockRouteProvider(nil), &messaging.MockMessenger{}, "+1", services.DurationFromSeconds)
	require.NoError(t, err)

	h := NewRouter(zap.NewNop(), projector, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
