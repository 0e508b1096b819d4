// Package stub provides canned stage implementations for testing and for
// offline runs without remote services.
package stub

import (
	"context"
	"sync"

	"token-promo-lab/internal/domain"
)

// TokenResolver returns a fixed resolution.
type TokenResolver struct {
	Resolution domain.TokenResolution
}

// Resolve returns the canned resolution.
func (r *TokenResolver) Resolve(_ context.Context, _, _ string) domain.TokenResolution {
	return r.Resolution
}

// WebsiteScraper returns a fixed scrape result and records the URL asked for.
type WebsiteScraper struct {
	Result domain.WebsiteScrapeResult

	mu      sync.Mutex
	LastURL string
}

// Scrape returns the canned scrape result.
func (s *WebsiteScraper) Scrape(_ context.Context, url string) domain.WebsiteScrapeResult {
	s.mu.Lock()
	s.LastURL = url
	s.mu.Unlock()
	return s.Result
}

// LogoManager returns a fixed logo result.
type LogoManager struct {
	Result domain.LogoResult
}

// Manage returns the canned logo result.
func (m *LogoManager) Manage(_ context.Context, _, _ string) domain.LogoResult {
	return m.Result
}

// PostGenerator returns a fixed posts result and records its inputs.
type PostGenerator struct {
	Result domain.PostsResult

	mu        sync.Mutex
	LastBrief domain.CreativeBrief
	LastTone  domain.ToneProfile
}

// GeneratePosts returns the canned posts result.
func (g *PostGenerator) GeneratePosts(_ context.Context, brief domain.CreativeBrief, tone domain.ToneProfile, _ domain.WebsiteScrapeResult) domain.PostsResult {
	g.mu.Lock()
	g.LastBrief = brief
	g.LastTone = tone
	g.mu.Unlock()
	return g.Result
}

// BannerGenerator returns a fixed banner result and records the request.
type BannerGenerator struct {
	Result domain.BannerResult

	mu          sync.Mutex
	LastRequest domain.BannerRequest
	Calls       int
}

// GenerateBanner returns the canned banner result.
func (g *BannerGenerator) GenerateBanner(_ context.Context, req domain.BannerRequest) domain.BannerResult {
	g.mu.Lock()
	g.LastRequest = req
	g.Calls++
	g.mu.Unlock()
	return g.Result
}

// Request returns the last recorded banner request.
func (g *BannerGenerator) Request() domain.BannerRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.LastRequest
}

// VideoGenerator returns a fixed video result and records the request.
type VideoGenerator struct {
	Result domain.VideoResult

	mu          sync.Mutex
	LastRequest domain.VideoRequest
	Calls       int
}

// GenerateVideo returns the canned video result.
func (g *VideoGenerator) GenerateVideo(_ context.Context, req domain.VideoRequest) domain.VideoResult {
	g.mu.Lock()
	g.LastRequest = req
	g.Calls++
	g.mu.Unlock()
	return g.Result
}

// Request returns the last recorded video request.
func (g *VideoGenerator) Request() domain.VideoRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.LastRequest
}
