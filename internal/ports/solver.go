package ports

import (
	"context"

	"ride-route-service/internal/domain"
)

// Contract for delegating a Problem to an external exact-VRP solver.
// Implementations own transport, retries and wire-format concerns.
type ExactSolver interface {
	// Solve submits the problem and returns the solver's route.
	Solve(ctx context.Context, problem domain.Problem) (domain.Route, error)
}
