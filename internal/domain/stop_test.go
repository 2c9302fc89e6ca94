package domain

import "testing"

func TestFlattenOrder(t *testing.T) {
	problem := Problem{
		Driver: Coordinates{Lon: 77.1, Lat: 28.7},
		Passengers: []Passenger{
			{Pickup: Coordinates{Lon: 1, Lat: 1}, Dropoff: Coordinates{Lon: 2, Lat: 2}},
			{Pickup: Coordinates{Lon: 3, Lat: 3}, Dropoff: Coordinates{Lon: 4, Lat: 4}},
		},
	}

	stops, pairs := Flatten(problem)

	if len(stops) != 5 {
		t.Fatalf("expected 5 stops, got %d", len(stops))
	}
	if stops[0].Type != StopDriver || stops[0].Index != 0 || stops[0].Passenger != -1 {
		t.Fatalf("driver stop malformed: %+v", stops[0])
	}

	want := []struct {
		typ  StopType
		pass int
	}{
		{StopPickup, 0}, {StopDropoff, 0}, {StopPickup, 1}, {StopDropoff, 1},
	}
	for i, w := range want {
		s := stops[i+1]
		if s.Type != w.typ || s.Passenger != w.pass || s.Index != i+1 {
			t.Errorf("stop %d = %+v, want type=%s passenger=%d", i+1, s, w.typ, w.pass)
		}
	}

	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	for i, pair := range pairs {
		if pair.Pickup >= pair.Dropoff {
			t.Errorf("pair %d: pickup %d not before dropoff %d", i, pair.Pickup, pair.Dropoff)
		}
		if stops[pair.Pickup].Passenger != i || stops[pair.Dropoff].Passenger != i {
			t.Errorf("pair %d references wrong passenger", i)
		}
	}
}

func TestFlattenNoPassengers(t *testing.T) {
	stops, pairs := Flatten(Problem{Driver: Coordinates{Lon: 10, Lat: 20}})

	if len(stops) != 1 {
		t.Fatalf("expected driver-only flattening, got %d stops", len(stops))
	}
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}
