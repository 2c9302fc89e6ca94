package repositories

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"ride-route-service/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSaveAndListProblems(t *testing.T) {
	repo := NewSqliteProblemRepository(openTestDB(t))
	ctx := context.Background()

	problem := domain.Problem{
		Driver: domain.Coordinates{Lon: 77.1025, Lat: 28.7041},
		Passengers: []domain.Passenger{
			{
				Pickup:  domain.Coordinates{Lon: 77.0975, Lat: 28.6991},
				Dropoff: domain.Coordinates{Lon: 77.1075, Lat: 28.7091},
				Name:    "Alice",
			},
		},
	}

	id, err := repo.SaveProblem(ctx, problem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero problem id")
	}

	stored, err := repo.ListProblems(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored problem, got %d", len(stored))
	}
	if stored[0].ID != id {
		t.Fatalf("id = %d, want %d", stored[0].ID, id)
	}

	got := stored[0].Problem
	if got.Driver != problem.Driver {
		t.Errorf("driver = %+v, want %+v", got.Driver, problem.Driver)
	}
	if len(got.Passengers) != 1 || got.Passengers[0] != problem.Passengers[0] {
		t.Errorf("passengers = %+v, want %+v", got.Passengers, problem.Passengers)
	}
}

func TestListProblemsEmpty(t *testing.T) {
	repo := NewSqliteProblemRepository(openTestDB(t))

	stored, err := repo.ListProblems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no problems, got %d", len(stored))
	}
}

func TestSeedFromJSONMissingFileIsFine(t *testing.T) {
	db := openTestDB(t)
	if err := SeedFromJSON(db, "does/not/exist.json"); err != nil {
		t.Fatalf("missing seed file must not fail: %v", err)
	}
}
