package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jobdeck/jobdeck-api/internal/config"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ClaudeExtractor extracts structured posting fields with Anthropic's Claude.
type ClaudeExtractor struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    zerolog.Logger
}

func NewClaudeExtractor(cfg config.LLMConfig, logger zerolog.Logger) *ClaudeExtractor {
	model := anthropic.Model(cfg.Model)
	if cfg.Model == "" {
		model = anthropic.ModelClaude3_7SonnetLatest
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &ClaudeExtractor{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     model,
		maxTokens: maxTokens,
		logger:    logger.With().Str("component", "claude_extractor").Logger(),
	}
}

func (e *ClaudeExtractor) ExtractJobData(ctx context.Context, html, url string) (*models.JobPosting, error) {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	// Rough estimation of 3 chars per token keeps the prompt inside limits.
	maxContent := int(e.maxTokens) * 3
	if len(html) > maxContent {
		html = truncateUTF8(html, maxContent) + "..."
	}

	response, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: buildPrompt(html, url)},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "call Claude API")
	}

	posting, err := parseResponse(response)
	if err != nil {
		return nil, err
	}
	if posting.URL == "" {
		posting.URL = url
	}
	e.logger.Debug().Str("company", posting.Company).Str("position", posting.Position).Msg("extracted job posting")
	return posting, nil
}

func buildPrompt(content, url string) string {
	return fmt.Sprintf(`You are a job posting analyzer. Extract structured job information from the provided page content and return it as a JSON object with exactly these fields:

{
  "company": "string - the company name",
  "position": "string - the job title",
  "location": "string - city/state/country or 'Remote'",
  "url": "string - the posting URL (%s)",
  "salary": "string - salary as displayed, empty if not mentioned",
  "description": "string - brief summary, 2-3 sentences max",
  "requirements": ["array of strings - required qualifications and skills"]
}

Return ONLY valid JSON with no additional text. Use empty strings and empty arrays for anything not found. If the content is not a job posting, return the structure with empty values.

PAGE CONTENT:
%s`, url, content)
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func parseResponse(response *anthropic.Message) (*models.JobPosting, error) {
	if len(response.Content) == 0 {
		return nil, errors.New("empty response from Claude")
	}
	text := strings.TrimSpace(response.Content[0].AsText().Text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(strings.TrimSuffix(text, "```"))

	var posting models.JobPosting
	if err := json.Unmarshal([]byte(text), &posting); err != nil {
		return nil, errors.Wrap(err, "parse Claude response")
	}
	return &posting, nil
}
