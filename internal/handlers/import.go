package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck-api/internal/authz"
	"github.com/jobdeck/jobdeck-api/internal/llm"
	"github.com/jobdeck/jobdeck-api/internal/scraper"
	"github.com/rs/zerolog"
)

// ImportHandler fetches a job posting URL and returns a draft application.
// Nothing is persisted; the caller reviews the draft and POSTs it to /jobs.
type ImportHandler struct {
	fetcher   *scraper.Fetcher
	extractor llm.Extractor
	logger    zerolog.Logger
}

func NewImportHandler(fetcher *scraper.Fetcher, extractor llm.Extractor, logger zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger.With().Str("handler", "import").Logger(),
	}
}

func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if _, ok := authz.UserIDFromRequest(r); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	payload.URL = strings.TrimSpace(payload.URL)
	if payload.URL == "" {
		http.Error(w, "URL is required", http.StatusBadRequest)
		return
	}

	html, err := h.fetcher.Fetch(r.Context(), payload.URL)
	if err != nil {
		h.logger.Warn().Err(err).Str("url", payload.URL).Msg("failed to fetch posting")
		http.Error(w, "Failed to fetch URL content", http.StatusBadGateway)
		return
	}

	posting, err := h.extractor.ExtractJobData(r.Context(), html, payload.URL)
	if err != nil {
		h.logger.Error().Err(err).Str("url", payload.URL).Msg("failed to extract posting")
		http.Error(w, "Failed to analyze job posting", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, posting)
}
