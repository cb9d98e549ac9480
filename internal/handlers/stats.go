package handlers

import (
	"net/http"

	"github.com/jobdeck/jobdeck-api/internal/authz"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/repository"
	"github.com/jobdeck/jobdeck-api/internal/stats"
	"github.com/rs/zerolog"
)

type StatsHandler struct {
	repo       repository.JobRepository
	calculator *stats.Calculator
	logger     zerolog.Logger
}

func NewStatsHandler(repo repository.JobRepository, calculator *stats.Calculator, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		repo:       repo,
		calculator: calculator,
		logger:     logger.With().Str("handler", "stats").Logger(),
	}
}

// Dashboard recomputes the derived stats from the caller's full job set.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobs, err := h.repo.ListByUser(r.Context(), userID, models.JobFilter{})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch jobs for stats")
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.calculator.Compute(jobs))
}
