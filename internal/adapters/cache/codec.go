// Package cache provides route-cache backends keyed by problem fingerprint.
package cache

import (
	"encoding/json"
	"fmt"

	"ride-route-service/internal/domain"
)

type stopRecord struct {
	Index     int     `json:"index"`
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
	Type      string  `json:"type"`
	Passenger int     `json:"passenger"`
}

type routeRecord struct {
	Stops           []stopRecord `json:"stops"`
	Locations       []stopRecord `json:"locations"`
	TotalDistanceKm float64      `json:"total_distance_km"`
}

func toRecord(s domain.Stop) stopRecord {
	return stopRecord{
		Index:     s.Index,
		Lon:       s.Location.Lon,
		Lat:       s.Location.Lat,
		Type:      string(s.Type),
		Passenger: s.Passenger,
	}
}

func fromRecord(r stopRecord) domain.Stop {
	return domain.Stop{
		Index:     r.Index,
		Location:  domain.Coordinates{Lon: r.Lon, Lat: r.Lat},
		Type:      domain.StopType(r.Type),
		Passenger: r.Passenger,
	}
}

func encodeRoute(route domain.Route) ([]byte, error) {
	rec := routeRecord{
		Stops:           make([]stopRecord, 0, len(route.Stops)),
		Locations:       make([]stopRecord, 0, len(route.Locations)),
		TotalDistanceKm: route.TotalDistanceKm,
	}
	for _, s := range route.Stops {
		rec.Stops = append(rec.Stops, toRecord(s))
	}
	for _, s := range route.Locations {
		rec.Locations = append(rec.Locations, toRecord(s))
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode route: %w", err)
	}
	return payload, nil
}

func decodeRoute(payload []byte) (domain.Route, error) {
	var rec routeRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return domain.Route{}, fmt.Errorf("decode route: %w", err)
	}

	route := domain.Route{
		Stops:           make([]domain.Stop, 0, len(rec.Stops)),
		Locations:       make([]domain.Stop, 0, len(rec.Locations)),
		TotalDistanceKm: rec.TotalDistanceKm,
	}
	for _, r := range rec.Stops {
		route.Stops = append(route.Stops, fromRecord(r))
	}
	for _, r := range rec.Locations {
		route.Locations = append(route.Locations, fromRecord(r))
	}
	return route, nil
}
