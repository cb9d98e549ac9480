// Package llm provides AI-backed extraction of job-posting fields from HTML.
package llm

import (
	"context"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/config"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/scraper"
	"github.com/rs/zerolog"
)

// Extractor turns fetched HTML into a draft job posting.
type Extractor interface {
	ExtractJobData(ctx context.Context, html, url string) (*models.JobPosting, error)
}

// NewExtractor returns the Claude-backed extractor when an API key is
// configured, otherwise the regex/selector heuristic parser.
func NewExtractor(cfg config.LLMConfig, logger zerolog.Logger) Extractor {
	if cfg.APIKey != "" {
		return NewClaudeExtractor(cfg, logger)
	}
	logger.Info().Msg("no LLM API key configured, using heuristic job-posting parser")
	return scraper.NewParser()
}

// Timeout applied to extraction calls when the caller has no tighter deadline.
const extractTimeout = 45 * time.Second
