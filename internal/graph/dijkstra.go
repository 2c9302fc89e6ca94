// Package graph implements single-source/single-target shortest paths over
// a dense weighted matrix.
package graph

import (
	"math"

	"ride-route-service/internal/geo"
)

// ShortestPath runs Dijkstra from source to target over the matrix graph.
//
// Only strictly positive weights are treated as edges, so a zero entry means
// "not connected" rather than a free hop; the zero diagonal is therefore
// never traversed. The scan selects the unvisited node with the minimum
// tentative distance and stops as soon as the target is selected.
//
// The matrix scan is O(n²), which is fine at the node counts this engine
// sees (tens); a heap would only pay off on much larger sparse graphs.
//
// Returns the node sequence source..target and its total distance. If target
// is unreachable the path is nil and the distance is +Inf; callers treat that
// as a reportable condition, not a failure of this function.
func ShortestPath(m geo.Matrix, source, target int) ([]int, float64) {
	n := len(m)
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, math.Inf(1)
	}
	if source == target {
		return []int{source}, 0
	}

	dist := make([]float64, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}
	dist[source] = 0

	for {
		u := -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !visited[i] && dist[i] < best {
				u = i
				best = dist[i]
			}
		}
		if u == -1 {
			// No reachable unvisited node remains.
			break
		}
		if u == target {
			break
		}
		visited[u] = true

		for v := 0; v < n; v++ {
			w := m[u][v]
			if w <= 0 || visited[v] {
				continue
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v] = nd
				parent[v] = u
			}
		}
	}

	if math.IsInf(dist[target], 1) {
		return nil, math.Inf(1)
	}

	return reconstructPath(parent, source, target), dist[target]
}

func reconstructPath(parent []int, source, target int) []int {
	var rev []int
	for cur := target; cur != source; cur = parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, source)

	path := make([]int, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}
