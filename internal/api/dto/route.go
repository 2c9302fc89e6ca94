package dto

import "ride-route-service/internal/domain"

type Stop struct {
	Index    int      `json:"index"`
	Location Location `json:"location"`
	Type     string   `json:"type"`
}

type SolveResponse struct {
	Route           []Stop  `json:"route"`
	Locations       []Stop  `json:"locations"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	Strategy        string  `json:"strategy"`
}

func stopFromDomain(s domain.Stop) Stop {
	return Stop{
		Index:    s.Index,
		Location: locationFromDomain(s.Location),
		Type:     string(s.Type),
	}
}

// SolveResponseFromDomain converts a planned route to its wire shape.
func SolveResponseFromDomain(route domain.Route, strategy string) SolveResponse {
	res := SolveResponse{
		Route:           make([]Stop, 0, len(route.Stops)),
		Locations:       make([]Stop, 0, len(route.Locations)),
		TotalDistanceKm: route.TotalDistanceKm,
		Strategy:        strategy,
	}
	for _, s := range route.Stops {
		res.Route = append(res.Route, stopFromDomain(s))
	}
	for _, s := range route.Locations {
		res.Locations = append(res.Locations, stopFromDomain(s))
	}
	return res
}
