package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"ride-route-service/internal/adapters/cache"
	"ride-route-service/internal/adapters/repositories"
	"ride-route-service/internal/adapters/solver"
	"ride-route-service/internal/api"
	"ride-route-service/internal/config"
	"ride-route-service/internal/platform/db"
	"ride-route-service/internal/platform/metrics"
	"ride-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, the external solver) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/problems.json")
	port := config.Get("PORT", "8080")

	sqliteDB, err := openSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed demo problems on startup for local runs.
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	routeCache, err := buildRouteCache(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	var exactSolver ports.ExactSolver
	if solverURL := config.Get("SOLVER_URL", ""); strings.TrimSpace(solverURL) != "" {
		exactSolver, err = solver.NewHTTPSolver(solverURL)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("SOLVER_URL not set; external strategy disabled")
	}

	repo := repositories.NewSqliteProblemRepository(sqliteDB)

	metrics.RegisterDefault()
	router := api.NewRouter(exactSolver, routeCache, repo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildRouteCache selects the route-cache backend from CACHE_BACKEND.
// The default keeps the engine fully stateless.
func buildRouteCache(sqliteDB *sql.DB) (ports.RouteCache, error) {
	backend := config.Get("CACHE_BACKEND", "none")

	switch backend {
	case "none":
		return nil, nil
	case "sqlite":
		return cache.NewSqliteRouteCache(sqliteDB), nil
	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, fmt.Errorf("build route cache: DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("build route cache: %w", err)
		}
		c := cache.NewSQLRouteCache(pgDB)
		if err := c.InitSchema(context.Background()); err != nil {
			return nil, fmt.Errorf("build route cache: %w", err)
		}
		return c, nil
	case "redis":
		redisURL := config.Get("REDIS_URL", "")
		if strings.TrimSpace(redisURL) == "" {
			return nil, fmt.Errorf("build route cache: REDIS_URL is required for CACHE_BACKEND=redis")
		}
		return cache.NewRedisRouteCache(redisURL, cache.DefaultRouteTTL)
	default:
		return nil, fmt.Errorf("build route cache: unknown CACHE_BACKEND %q", backend)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sdb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sdb.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sdb, nil
}

func initAndSeed(sdb *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(sdb); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(sdb, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
