// Package geo provides great-circle distance computation and pairwise
// distance matrices over geographic coordinates.
package geo

import (
	"math"

	"ride-route-service/internal/domain"
)

// EarthRadiusKm is the spherical Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two points in kilometers.
// The function is symmetric and returns 0 iff the points are identical.
// Callers are responsible for supplying finite coordinates.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := rad(b.Lat) - rad(a.Lat)
	dLon := rad(b.Lon) - rad(a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return c * EarthRadiusKm
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
