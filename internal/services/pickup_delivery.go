package services

import (
	"errors"
	"math"

	"ride-route-service/internal/domain"
	"ride-route-service/internal/geo"
)

// PreferPendingPickups controls the replacement rule in PickupDeliveryTour:
// once a candidate has been accepted in a scan, only a strictly closer pickup
// whose dropoff is still pending may displace it. A plain stop that is merely
// closer never does.
//
// The asymmetry is inherited planning behavior, kept as a named policy so it
// can be revisited without silently changing route quality.
const PreferPendingPickups = true

// PickupDeliveryTour builds a nearest-neighbor tour over all nodes starting
// at node 0, never visiting a dropoff before its paired pickup.
//
// Nodes are scanned in ascending index order each step; precedence-blocked
// dropoffs are skipped, and candidate replacement follows
// PreferPendingPickups. If no valid move exists while nodes remain, the
// partial tour is returned inside a PrecedenceBlockedError.
func PickupDeliveryTour(m geo.Matrix, pairs []domain.PickupDeliveryPair) ([]int, error) {
	n := len(m)
	if n == 0 {
		return nil, errors.New("pickup delivery tour: empty graph")
	}

	dropoffOf := make(map[int]int, len(pairs)) // pickup -> its dropoff
	pickupOf := make(map[int]int, len(pairs))  // dropoff -> its pickup
	for _, pair := range pairs {
		dropoffOf[pair.Pickup] = pair.Dropoff
		pickupOf[pair.Dropoff] = pair.Pickup
	}

	visited := make([]bool, n)
	visited[0] = true
	pickedUp := make(map[int]bool, len(pairs)) // dropoffs whose pickup occurred
	tour := make([]int, 0, n)
	tour = append(tour, 0)

	last := 0
	for len(tour) < n {
		best := -1
		bestDist := math.Inf(1)

		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			if _, isDropoff := pickupOf[i]; isDropoff && !pickedUp[i] {
				continue // precedence guard
			}

			d := m[last][i]
			if best == -1 {
				if d < bestDist {
					best = i
					bestDist = d
				}
				continue
			}

			if PreferPendingPickups {
				dropoff, isPickup := dropoffOf[i]
				if isPickup && !visited[dropoff] && d < bestDist {
					best = i
					bestDist = d
				}
			}
		}

		if best == -1 {
			remaining := make([]int, 0, n-len(tour))
			for i := 0; i < n; i++ {
				if !visited[i] {
					remaining = append(remaining, i)
				}
			}
			return tour, &PrecedenceBlockedError{Tour: tour, Remaining: remaining}
		}

		visited[best] = true
		tour = append(tour, best)
		if dropoff, ok := dropoffOf[best]; ok {
			pickedUp[dropoff] = true
		}
		last = best
	}

	return tour, nil
}
