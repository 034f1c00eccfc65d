package directions

import (
	"context"
	"eta-projector/internal/domain"
	"fmt"
)

// MockRouteProvider answers FetchRoute from a fixed origin|destination table.
// Unknown pairs yield domain.ErrRouteUnavailable, like an empty provider response.
type MockRouteProvider struct {
	m     map[string]domain.RouteInfo
	Calls int
}

func NewMockRouteProvider(routes map[domain.RouteQuery]domain.RouteInfo) *MockRouteProvider {
	m := make(map[string]domain.RouteInfo, len(routes))
	for q, info := range routes {
		m[q.Origin+"|"+q.Destination] = info
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) FetchRoute(ctx context.Context, origin, destination string) (domain.RouteInfo, error) {
	p.Calls++

	info, ok := p.m[origin+"|"+destination]
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("%w: missing pair %q -> %q", domain.ErrRouteUnavailable, origin, destination)
	}

	return info, nil
}
