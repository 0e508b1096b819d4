// Package scrape extracts usable hero/about text from a project website.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
	"token-promo-lab/internal/retry"
)

// Default configuration values.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultMaxChars = 2000
	// minUsableChars is the threshold below which extracted text is
	// treated as not found.
	minUsableChars = 20
	// maxBodyBytes bounds how much HTML is read from a page.
	maxBodyBytes = 2 << 20
)

// Scraper implements the website-scrape stage contract.
type Scraper struct {
	client   *http.Client
	policy   retry.Policy
	maxChars int
	metrics  *observability.Metrics
	log      *zap.Logger
}

// ScraperOption configures Scraper.
type ScraperOption func(*Scraper)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ScraperOption {
	return func(s *Scraper) {
		s.client = client
	}
}

// WithRetryPolicy overrides the retry policy used for fetches.
func WithRetryPolicy(p retry.Policy) ScraperOption {
	return func(s *Scraper) {
		s.policy = p
	}
}

// WithMaxChars bounds the length of extracted text.
func WithMaxChars(n int) ScraperOption {
	return func(s *Scraper) {
		s.maxChars = n
	}
}

// WithMetrics enables remote-call metrics for fetches.
func WithMetrics(m *observability.Metrics) ScraperOption {
	return func(s *Scraper) {
		s.metrics = m
	}
}

// NewScraper creates a website scraper.
func NewScraper(log *zap.Logger, opts ...ScraperOption) *Scraper {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scraper{
		client:   &http.Client{Timeout: DefaultTimeout},
		policy:   retry.Policy{Label: "website-scrape"},
		maxChars: DefaultMaxChars,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape never fails: any fetch or extraction problem yields Found=false.
func (s *Scraper) Scrape(ctx context.Context, url string) domain.WebsiteScrapeResult {
	if url == "" {
		return domain.WebsiteScrapeResult{Found: false}
	}

	body, err := retry.DoValue(ctx, s.policy, func(ctx context.Context) ([]byte, error) {
		return s.fetch(ctx, url)
	})
	if err != nil {
		s.log.Debug("website fetch failed", zap.String("url", url), zap.Error(err))
		return domain.WebsiteScrapeResult{Found: false}
	}

	text, err := ExtractText(body, s.maxChars)
	if err != nil {
		s.log.Debug("website extraction failed", zap.String("url", url), zap.Error(err))
		return domain.WebsiteScrapeResult{Found: false}
	}
	if utf8.RuneCountInString(text) < minUsableChars {
		return domain.WebsiteScrapeResult{Found: false}
	}

	return domain.WebsiteScrapeResult{Text: text, Found: true}
}

func (s *Scraper) fetch(ctx context.Context, url string) (body []byte, err error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordRemoteCall("website", time.Since(start).Seconds(), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
