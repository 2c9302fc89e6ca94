package services

import (
	"fmt"

	"ride-route-service/internal/domain"
)

// Demo problems are generated within a small area of Delhi.
const (
	delhiCenterLat = 28.7041
	delhiCenterLon = 77.1025
	gridStepDeg    = 0.005
)

// DefaultRandomPassengers is the passenger count used when a request does
// not specify one.
const DefaultRandomPassengers = 4

// RandomProblem builds a demo planning problem: the driver at the Delhi
// center and passengers laid out on a small deterministic grid around it.
// A grid keeps test runs reproducible where true random angles were too
// flaky for animation demos.
func RandomProblem(passengers int) domain.Problem {
	p := domain.Problem{
		Driver:     domain.Coordinates{Lon: delhiCenterLon, Lat: delhiCenterLat},
		Passengers: make([]domain.Passenger, 0, passengers),
	}

	for i := 0; i < passengers; i++ {
		offLat := float64(i%2) * gridStepDeg
		offLon := float64(i/2) * gridStepDeg

		p.Passengers = append(p.Passengers, domain.Passenger{
			Name: fmt.Sprintf("Passenger %d", i+1),
			Pickup: domain.Coordinates{
				Lon: delhiCenterLon - gridStepDeg + offLon,
				Lat: delhiCenterLat - gridStepDeg + offLat,
			},
			Dropoff: domain.Coordinates{
				Lon: delhiCenterLon + gridStepDeg + offLon,
				Lat: delhiCenterLat + gridStepDeg + offLat,
			},
		})
	}

	return p
}
