package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ride-route-service/internal/domain"
)

func TestBuildMatrix(t *testing.T) {
	locations := []domain.Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 1},
		{Lon: 1, Lat: 0},
		{Lon: 1, Lat: 1},
	}

	m := BuildMatrix(locations)
	require.Len(t, m, 4)

	for i := range m {
		require.Len(t, m[i], 4)
		assert.Zero(t, m[i][i], "diagonal must be zero")
		for j := range m[i] {
			assert.Equal(t, m[i][j], m[j][i], "matrix must be symmetric")
			if i != j {
				assert.Greater(t, m[i][j], 0.0)
			}
		}
	}

	assert.InDelta(t, DistanceKm(locations[0], locations[1]), m[0][1], 1e-9)
}

func TestBuildMatrixEmpty(t *testing.T) {
	assert.Empty(t, BuildMatrix(nil))
}
