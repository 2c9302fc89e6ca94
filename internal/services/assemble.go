package services

import (
	"fmt"

	"ride-route-service/internal/domain"
	"ride-route-service/internal/geo"
)

// AssembleRoute maps a node-index tour back onto typed stops and packages
// the final route plus the full annotated location list. Stop types were
// resolved at flattening time, so no coordinate matching happens here.
func AssembleRoute(stops []domain.Stop, m geo.Matrix, tour []int) (domain.Route, error) {
	ordered := make([]domain.Stop, 0, len(tour))
	for _, idx := range tour {
		if idx < 0 || idx >= len(stops) {
			return domain.Route{}, fmt.Errorf("assemble route: tour index %d out of range (n=%d)", idx, len(stops))
		}
		ordered = append(ordered, stops[idx])
	}

	total := 0.0
	for i := 1; i < len(tour); i++ {
		total += m[tour[i-1]][tour[i]]
	}

	return domain.Route{
		Stops:           ordered,
		Locations:       stops,
		TotalDistanceKm: total,
	}, nil
}
