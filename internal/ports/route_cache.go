package ports

import (
	"context"

	"ride-route-service/internal/domain"
)

// Port: a boundary for caching planned routes keyed by a problem fingerprint.
// A miss is (zero route, false, nil error); errors are reserved for backend
// failures.
type RouteCache interface {
	Get(ctx context.Context, key string) (domain.Route, bool, error)
	Put(ctx context.Context, key string, route domain.Route) error
}
