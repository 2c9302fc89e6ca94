package services

import "testing"

func TestRandomProblem(t *testing.T) {
	p := RandomProblem(DefaultRandomPassengers)

	if len(p.Passengers) != DefaultRandomPassengers {
		t.Fatalf("expected %d passengers, got %d", DefaultRandomPassengers, len(p.Passengers))
	}
	if p.Driver.Lat != delhiCenterLat || p.Driver.Lon != delhiCenterLon {
		t.Fatalf("driver must start at the center, got %+v", p.Driver)
	}

	seen := map[[2]float64]bool{{p.Driver.Lon, p.Driver.Lat}: true}
	for i, pass := range p.Passengers {
		if pass.Pickup == pass.Dropoff {
			t.Errorf("passenger %d pickup equals dropoff", i)
		}
		for _, c := range [][2]float64{{pass.Pickup.Lon, pass.Pickup.Lat}, {pass.Dropoff.Lon, pass.Dropoff.Lat}} {
			if seen[c] {
				t.Errorf("passenger %d reuses coordinate %v", i, c)
			}
			seen[c] = true
		}
	}
}

func TestRandomProblemFingerprintStable(t *testing.T) {
	a, _ := fingerprintOf(RandomProblem(4))
	b, _ := fingerprintOf(RandomProblem(4))
	if a != b {
		t.Fatal("grid generation must be deterministic")
	}
}
