// Package solver contains adapters for the external exact-VRP solver
// endpoint.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ride-route-service/internal/domain"
	"ride-route-service/internal/geo"
	"ride-route-service/internal/platform/obs"
)

// HTTPSolver implements ports.ExactSolver against the exact-VRP HTTP
// endpoint (POST <base>/api/solve). Transient failures are retried with
// exponential backoff. The adapter is safe for concurrent use.
type HTTPSolver struct {
	session *http.Client
	baseURL string
}

func NewHTTPSolver(baseURL string) (*HTTPSolver, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("solver base URL is empty")
	}

	return &HTTPSolver{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
	}, nil
}

type solveRequest struct {
	Driver     []float64          `json:"driver"`
	Passengers []passengerPayload `json:"passengers"`
}

type passengerPayload struct {
	Pickup  []float64 `json:"pickup"`
	Dropoff []float64 `json:"dropoff"`
}

type solveResponse struct {
	Route []struct {
		Index    int       `json:"index"`
		Location []float64 `json:"location"`
		Type     string    `json:"type"`
	} `json:"route"`
	Error string `json:"error"`
}

// Solve submits the problem and maps the solver's index ordering back onto
// the locally flattened stops, so stop typing stays intrinsic regardless of
// what the remote reports.
func (s *HTTPSolver) Solve(ctx context.Context, problem domain.Problem) (_ domain.Route, err error) {
	defer obs.Time(ctx, "solver.Solve")(&err)

	body := solveRequest{
		Driver:     problem.Driver.CoordsToList(),
		Passengers: make([]passengerPayload, 0, len(problem.Passengers)),
	}
	for _, p := range problem.Passengers {
		body.Passengers = append(body.Passengers, passengerPayload{
			Pickup:  p.Pickup.CoordsToList(),
			Dropoff: p.Dropoff.CoordsToList(),
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return domain.Route{}, fmt.Errorf("solve: marshal request: %w", err)
	}

	endpoint := s.baseURL + "/api/solve"
	resp, err := s.doWithRetry(ctx, func() (*http.Request, error) {
		return s.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("solve: request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("solve: decode response: %w", err)
	}
	if decoded.Error != "" {
		return domain.Route{}, fmt.Errorf("solve: solver rejected problem: %s", decoded.Error)
	}
	if len(decoded.Route) == 0 {
		return domain.Route{}, errors.New("solve: solver returned an empty route")
	}

	stops, _ := domain.Flatten(problem)

	route := domain.Route{
		Stops:     make([]domain.Stop, 0, len(decoded.Route)),
		Locations: stops,
	}
	for _, entry := range decoded.Route {
		if entry.Index < 0 || entry.Index >= len(stops) {
			return domain.Route{}, fmt.Errorf("solve: route index %d out of range (n=%d)", entry.Index, len(stops))
		}
		route.Stops = append(route.Stops, stops[entry.Index])
	}

	for i := 1; i < len(route.Stops); i++ {
		route.TotalDistanceKm += geo.DistanceKm(route.Stops[i-1].Location, route.Stops[i].Location)
	}

	return route, nil
}
