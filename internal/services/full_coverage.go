package services

import (
	"errors"
	"fmt"
	"math"

	"ride-route-service/internal/geo"
	"ride-route-service/internal/graph"
)

// FullCoverageTour builds a tour touching every node exactly once, starting
// at node 0, with no pickup/dropoff awareness: all points are plain graph
// nodes.
//
// Each step runs a shortest-path query from the current node to every
// unvisited node and follows the globally cheapest result; on a complete
// matrix that is normally the direct edge, but multi-hop winners are
// supported for sparse graphs. Ties keep the earlier candidate (first strict
// improvement wins).
func FullCoverageTour(m geo.Matrix) ([]int, error) {
	n := len(m)
	if n == 0 {
		return nil, errors.New("full coverage tour: empty graph")
	}

	visited := make([]bool, n)
	visited[0] = true
	tour := make([]int, 0, n)
	tour = append(tour, 0)

	current := 0
	remaining := n - 1

	for remaining > 0 {
		bestNode := -1
		bestDist := math.Inf(1)
		var bestPath []int

		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			path, dist := graph.ShortestPath(m, current, i)
			if dist < bestDist {
				bestNode = i
				bestDist = dist
				bestPath = path
			}
		}

		if bestNode == -1 {
			return nil, fmt.Errorf("full coverage tour: %w from node %d", ErrUnreachableNode, current)
		}

		// Absorb every new node along the winning path, not just its endpoint.
		for _, node := range bestPath[1:] {
			if visited[node] {
				continue
			}
			visited[node] = true
			tour = append(tour, node)
			remaining--
		}

		current = bestNode
	}

	return tour, nil
}
