package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"ride-route-service/internal/api/dto"
	"ride-route-service/internal/platform/metrics"
	"ride-route-service/internal/ports"
	"ride-route-service/internal/services"
)

type SolveHandler struct {
	Solver ports.ExactSolver
	Cache  ports.RouteCache
}

// Solve plans a route for the submitted problem with the requested strategy.
// Validation failures reject the whole problem; planning dead ends surface
// as structured errors rather than partial routes.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, dto.ErrMalformedLocation) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	problem, err := req.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	strategy, err := services.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	route, err := services.Plan(r.Context(), problem, strategy, h.Solver, h.Cache)
	metrics.PlanDuration.WithLabelValues(string(strategy)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PlanRequests.WithLabelValues(string(strategy), "error").Inc()
		h.writePlanError(w, r, strategy, err)
		return
	}
	metrics.PlanRequests.WithLabelValues(string(strategy), "ok").Inc()

	writeJSON(w, r, http.StatusOK, dto.SolveResponseFromDomain(route, string(strategy)))
}

func (h *SolveHandler) writePlanError(w http.ResponseWriter, r *http.Request, strategy services.Strategy, err error) {
	var blocked *services.PrecedenceBlockedError

	switch {
	case errors.Is(err, services.ErrNoSolver):
		writeError(w, r, http.StatusServiceUnavailable, "external solver not configured")
	case strategy == services.StrategyExternalSolver:
		log.Printf("external solve failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "external solver failed")
	case errors.Is(err, services.ErrUnreachableNode), errors.As(err, &blocked):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
