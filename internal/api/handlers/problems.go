package handlers

import (
	"log"
	"net/http"
	"strconv"

	"ride-route-service/internal/api/dto"
	"ride-route-service/internal/ports"
	"ride-route-service/internal/services"
)

const maxRandomPassengers = 25

// ProblemHandler serves demo problem generation and stored-problem retrieval.
// Repo may be nil when persistence is disabled.
type ProblemHandler struct {
	Repo ports.ProblemRepository
}

// Random generates a demo problem around the Delhi center.
// Query params: passengers (1..25, default 4), save=true to persist it.
func (h *ProblemHandler) Random(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	passengers := services.DefaultRandomPassengers
	if raw := r.URL.Query().Get("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRandomPassengers {
			writeError(w, r, http.StatusBadRequest, "passengers must be an integer between 1 and 25")
			return
		}
		passengers = n
	}

	problem := services.RandomProblem(passengers)

	if r.URL.Query().Get("save") == "true" {
		if h.Repo == nil {
			writeError(w, r, http.StatusServiceUnavailable, "problem storage not configured")
			return
		}
		if _, err := h.Repo.SaveProblem(r.Context(), problem); err != nil {
			log.Printf("save problem failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	writeJSON(w, r, http.StatusOK, dto.ProblemFromDomain(problem))
}

// List returns all stored problems.
func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "problem storage not configured")
		return
	}

	stored, err := h.Repo.ListProblems(r.Context())
	if err != nil {
		log.Printf("list problems failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListProblemsResponse{Problems: make([]dto.StoredProblem, 0, len(stored))}
	for _, sp := range stored {
		res.Problems = append(res.Problems, dto.StoredProblem{
			ID:      sp.ID,
			Problem: dto.ProblemFromDomain(sp.Problem),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
