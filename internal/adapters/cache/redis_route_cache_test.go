package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"ride-route-service/internal/domain"
)

func testRoute() domain.Route {
	stops := []domain.Stop{
		{Index: 0, Location: domain.Coordinates{Lon: 77.1025, Lat: 28.7041}, Type: domain.StopDriver, Passenger: -1},
		{Index: 1, Location: domain.Coordinates{Lon: 77.0975, Lat: 28.6991}, Type: domain.StopPickup, Passenger: 0},
		{Index: 2, Location: domain.Coordinates{Lon: 77.1075, Lat: 28.7091}, Type: domain.StopDropoff, Passenger: 0},
	}
	return domain.Route{Stops: stops, Locations: stops, TotalDistanceKm: 1.62}
}

func TestRedisRouteCache(t *testing.T) {
	srv := miniredis.RunT(t)

	c, err := NewRedisRouteCache("redis://"+srv.Addr(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	key := "deadbeef"

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := testRoute()
	if err := c.Put(ctx, key, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if len(got.Stops) != len(want.Stops) {
		t.Fatalf("got %d stops, want %d", len(got.Stops), len(want.Stops))
	}
	for i := range want.Stops {
		if got.Stops[i] != want.Stops[i] {
			t.Errorf("stop %d = %+v, want %+v", i, got.Stops[i], want.Stops[i])
		}
	}
	if got.TotalDistanceKm != want.TotalDistanceKm {
		t.Errorf("total = %f, want %f", got.TotalDistanceKm, want.TotalDistanceKm)
	}
}

func TestRedisRouteCacheEmptyKey(t *testing.T) {
	srv := miniredis.RunT(t)

	c, err := NewRedisRouteCache("redis://"+srv.Addr(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := c.Get(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(context.Background(), "", testRoute()); err == nil {
		t.Fatal("expected error for empty key")
	}
}
