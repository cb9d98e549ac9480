// Package scraper fetches job-posting pages and extracts draft application
// fields from them with best-effort heuristics.
package scraper

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var scriptTags = regexp.MustCompile(`(?is)<script\b.*?</script>`)

// Fetcher downloads job-posting HTML with a capped body size and timeout.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

func NewFetcher(timeout time.Duration, maxBodyBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 2 << 20
	}
	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		userAgent:    defaultUserAgent,
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch retrieves the page at rawURL and returns its HTML with script tags
// stripped. Only http and https URLs are accepted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", errors.Errorf("invalid URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetch URL")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errors.Errorf("fetch URL: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", errors.Wrap(err, "read body")
	}

	return scriptTags.ReplaceAllString(string(body), ""), nil
}
