package solver

import (
	"context"

	"ride-route-service/internal/domain"
)

// MockSolver returns a canned route or error, for tests.
type MockSolver struct {
	Route domain.Route
	Err   error
	Calls int
}

func (m *MockSolver) Solve(ctx context.Context, problem domain.Problem) (domain.Route, error) {
	m.Calls++
	if m.Err != nil {
		return domain.Route{}, m.Err
	}
	return m.Route, nil
}
