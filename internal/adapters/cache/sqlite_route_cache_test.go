package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"ride-route-service/internal/adapters/repositories"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	c := NewSqliteRouteCache(openTestDB(t))
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := testRoute()
	if err := c.Put(ctx, "abc123", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if len(got.Stops) != 3 || got.Stops[1] != want.Stops[1] {
		t.Fatalf("round trip mismatch: %+v", got.Stops)
	}
}

func TestSqliteRouteCacheOverwrite(t *testing.T) {
	c := NewSqliteRouteCache(openTestDB(t))
	ctx := context.Background()

	first := testRoute()
	if err := c.Put(ctx, "k", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := first
	second.TotalDistanceKm = 99.9
	if err := c.Put(ctx, "k", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.TotalDistanceKm != 99.9 {
		t.Fatalf("overwrite not applied: %f", got.TotalDistanceKm)
	}
}
