package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ride-route-service/internal/api/handlers"
	"ride-route-service/internal/platform/metrics"
	"ride-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// solver, cache and repo may be nil; the corresponding endpoints degrade to
// structured errors instead of failing to boot.
func NewRouter(solver ports.ExactSolver, cache ports.RouteCache, repo ports.ProblemRepository) http.Handler {
	mux := http.NewServeMux()

	solveHandler := &handlers.SolveHandler{Solver: solver, Cache: cache}
	problemHandler := &handlers.ProblemHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/solve", solveHandler.Solve)
	mux.HandleFunc("/api/random-problem", problemHandler.Random)
	mux.HandleFunc("/api/problems", problemHandler.List)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
