package ports

import (
	"context"

	"ride-route-service/internal/domain"
)

// Port: a boundary for persisting and retrieving planning problems.
type ProblemRepository interface {
	// Store a problem and return its assigned id.
	SaveProblem(ctx context.Context, problem domain.Problem) (int64, error)
	// Retrieve all stored problems in insertion order.
	ListProblems(ctx context.Context) ([]domain.StoredProblem, error)
}
