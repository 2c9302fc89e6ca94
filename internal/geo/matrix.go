package geo

import "ride-route-service/internal/domain"

// Matrix is a complete pairwise distance table in kilometers.
// It is symmetric with a zero diagonal and doubles as the weighted graph
// for shortest-path queries.
type Matrix [][]float64

// BuildMatrix computes the full N×N distance matrix for the given locations.
// Pure function of its input; O(n²).
func BuildMatrix(locations []domain.Coordinates) Matrix {
	n := len(locations)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := DistanceKm(locations[i], locations[j])
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}
