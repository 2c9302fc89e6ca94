package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ride-route-service/internal/geo"
)

func TestShortestPathDirectEdgeOnCompleteGraph(t *testing.T) {
	// Right triangle with legs 3 and 4: the direct hypotenuse edge (5) beats
	// the two-leg detour (7) on a complete graph.
	m := geo.Matrix{
		{0, 3, 5},
		{3, 0, 4},
		{5, 4, 0},
	}

	path, dist := ShortestPath(m, 0, 2)
	require.Equal(t, []int{0, 2}, path)
	assert.InDelta(t, 5.0, dist, 1e-9)
}

func TestShortestPathMultiHopOnSparseGraph(t *testing.T) {
	// Zero entries are absent edges: 0->3 must route through 1 and 2.
	m := geo.Matrix{
		{0, 1, 0, 0},
		{1, 0, 2, 0},
		{0, 2, 0, 3},
		{0, 0, 3, 0},
	}

	path, dist := ShortestPath(m, 0, 3)
	require.Equal(t, []int{0, 1, 2, 3}, path)
	assert.InDelta(t, 6.0, dist, 1e-9)
}

func TestShortestPathPrefersCheaperDetour(t *testing.T) {
	m := geo.Matrix{
		{0, 1, 10},
		{1, 0, 1},
		{10, 1, 0},
	}

	path, dist := ShortestPath(m, 0, 2)
	require.Equal(t, []int{0, 1, 2}, path)
	assert.InDelta(t, 2.0, dist, 1e-9)
}

func TestShortestPathUnreachable(t *testing.T) {
	m := geo.Matrix{
		{0, 2, 0},
		{2, 0, 0},
		{0, 0, 0},
	}

	path, dist := ShortestPath(m, 0, 2)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(dist, 1))
}

func TestShortestPathSameNode(t *testing.T) {
	m := geo.Matrix{{0, 1}, {1, 0}}

	path, dist := ShortestPath(m, 1, 1)
	require.Equal(t, []int{1}, path)
	assert.Zero(t, dist)
}

func TestShortestPathOutOfRange(t *testing.T) {
	m := geo.Matrix{{0, 1}, {1, 0}}

	path, dist := ShortestPath(m, 0, 5)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(dist, 1))
}
