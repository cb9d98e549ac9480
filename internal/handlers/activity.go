package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jobdeck/jobdeck-api/internal/activity"
	"github.com/jobdeck/jobdeck-api/internal/authz"
	"github.com/rs/zerolog"
)

type ActivityHandler struct {
	service activity.Service
	logger  zerolog.Logger
}

func NewActivityHandler(service activity.Service, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("handler", "activity").Logger(),
	}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 10
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	activities, err := h.service.ListRecent(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list activities")
		http.Error(w, "Failed to fetch activities", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}
