package services

import (
	"context"
	"fmt"
	"log"

	"ride-route-service/internal/domain"
	"ride-route-service/internal/geo"
	"ride-route-service/internal/ports"
)

// Tour construction strategy, resolved once per request at the API boundary
// and passed explicitly from then on.
type Strategy string

const (
	// Visit every node via repeated shortest-path queries, ignoring
	// pickup/dropoff semantics.
	StrategyFullCoverage Strategy = "full_coverage"
	// Nearest-neighbor with the dropoff-after-pickup precedence constraint.
	StrategyPickupDelivery Strategy = "pickup_delivery"
	// Delegate to the external exact-VRP solver.
	StrategyExternalSolver Strategy = "external"
)

// ParseStrategy resolves a request label to a Strategy.
// The empty label defaults to pickup/delivery, the only in-process strategy
// that honors ride-share semantics.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyPickupDelivery, nil
	case StrategyFullCoverage, StrategyPickupDelivery, StrategyExternalSolver:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("parse strategy: %w: %q", ErrUnknownStrategy, s)
	}
}

// Plan runs one planning request end to end: flatten the problem, build the
// distance matrix, construct the tour with the chosen strategy and assemble
// the typed route. The matrix and all intermediate state are local to the
// call and discarded when it returns.
//
// solver is only consulted for StrategyExternalSolver; cache may be nil to
// disable route caching.
func Plan(
	ctx context.Context,
	problem domain.Problem,
	strategy Strategy,
	solver ports.ExactSolver,
	cache ports.RouteCache,
) (domain.Route, error) {
	stops, pairs := domain.Flatten(problem)

	var key string
	if cache != nil {
		key = Fingerprint(strategy, stops)
		if route, ok, err := cache.Get(ctx, key); err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if ok {
			return route, nil
		}
	}

	route, err := planUncached(ctx, problem, stops, pairs, strategy, solver)
	if err != nil {
		return domain.Route{}, err
	}

	if cache != nil {
		if err := cache.Put(ctx, key, route); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return route, nil
}

func planUncached(
	ctx context.Context,
	problem domain.Problem,
	stops []domain.Stop,
	pairs []domain.PickupDeliveryPair,
	strategy Strategy,
	solver ports.ExactSolver,
) (domain.Route, error) {
	if strategy == StrategyExternalSolver {
		if solver == nil {
			return domain.Route{}, fmt.Errorf("plan: %w", ErrNoSolver)
		}
		route, err := solver.Solve(ctx, problem)
		if err != nil {
			return domain.Route{}, fmt.Errorf("plan: external solver: %w", err)
		}
		return route, nil
	}

	locations := make([]domain.Coordinates, len(stops))
	for i, s := range stops {
		locations[i] = s.Location
	}
	m := geo.BuildMatrix(locations)

	var (
		tour []int
		err  error
	)
	switch strategy {
	case StrategyFullCoverage:
		tour, err = FullCoverageTour(m)
	case StrategyPickupDelivery:
		tour, err = PickupDeliveryTour(m, pairs)
	default:
		return domain.Route{}, fmt.Errorf("plan: %w: %q", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return domain.Route{}, fmt.Errorf("plan: build tour: %w", err)
	}

	route, err := AssembleRoute(stops, m, tour)
	if err != nil {
		return domain.Route{}, fmt.Errorf("plan: %w", err)
	}
	return route, nil
}
