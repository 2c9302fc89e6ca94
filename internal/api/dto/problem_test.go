package dto

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSolveRequestDecode(t *testing.T) {
	body := `{
		"driver": [77.1025, 28.7041],
		"passengers": [
			{"pickup": [77.0975, 28.6991], "dropoff": [77.1075, 28.7091], "name": "Alice"}
		],
		"strategy": "full_coverage"
	}`

	var req SolveRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	problem, err := req.ToDomain()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if problem.Driver.Lon != 77.1025 || problem.Driver.Lat != 28.7041 {
		t.Fatalf("driver = %+v", problem.Driver)
	}
	if len(problem.Passengers) != 1 || problem.Passengers[0].Name != "Alice" {
		t.Fatalf("passengers = %+v", problem.Passengers)
	}
	if req.Strategy != "full_coverage" {
		t.Fatalf("strategy = %q", req.Strategy)
	}
}

func TestLocationRejectsWrongArity(t *testing.T) {
	var req SolveRequest
	err := json.Unmarshal([]byte(`{"driver": [77.1]}`), &req)
	if !errors.Is(err, ErrMalformedLocation) {
		t.Fatalf("expected ErrMalformedLocation, got %v", err)
	}
}

func TestToDomainRejectsMissingPickup(t *testing.T) {
	var req SolveRequest
	body := `{"driver": [0, 0], "passengers": [{"dropoff": [1, 1]}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if _, err := req.ToDomain(); !errors.Is(err, ErrMalformedLocation) {
		t.Fatalf("expected ErrMalformedLocation, got %v", err)
	}
}

func TestProblemRoundTrip(t *testing.T) {
	var req SolveRequest
	body := `{"driver": [1, 2], "passengers": [{"pickup": [3, 4], "dropoff": [5, 6]}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	problem, err := req.ToDomain()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wire := ProblemFromDomain(problem)
	if wire.Driver != (Location{1, 2}) {
		t.Fatalf("driver = %v", wire.Driver)
	}
	if *wire.Passengers[0].Pickup != (Location{3, 4}) || *wire.Passengers[0].Dropoff != (Location{5, 6}) {
		t.Fatalf("passenger = %+v", wire.Passengers[0])
	}
}
