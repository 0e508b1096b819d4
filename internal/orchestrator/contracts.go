package orchestrator

import (
	"context"

	"token-promo-lab/internal/domain"
)

// Stage contracts. Every collaborator is total: it returns a usable value or
// a degraded substitute, never an error. Failure is visible only through the
// result's provenance fields.

// TokenResolver resolves token metadata from a ticker and/or contract
// address. The result is always tagged with its resolution source.
type TokenResolver interface {
	Resolve(ctx context.Context, ticker, address string) domain.TokenResolution
}

// WebsiteScraper extracts usable text from the project website.
// Found is false on fetch error or when too little text is extracted.
type WebsiteScraper interface {
	Scrape(ctx context.Context, url string) domain.WebsiteScrapeResult
}

// LogoManager produces the final logo asset and the brand color palette,
// synthesizing a placeholder when the official logo is unavailable.
type LogoManager interface {
	Manage(ctx context.Context, ticker, logoURL string) domain.LogoResult
}

// PostGenerator produces exactly three social posts, each at most 280
// characters, plus visual themes for the downstream generators.
type PostGenerator interface {
	GeneratePosts(ctx context.Context, brief domain.CreativeBrief, tone domain.ToneProfile, website domain.WebsiteScrapeResult) domain.PostsResult
}

// BannerGenerator produces the hero banner.
type BannerGenerator interface {
	GenerateBanner(ctx context.Context, req domain.BannerRequest) domain.BannerResult
}

// VideoGenerator produces the launch video and reports how many clips
// succeeded out of those attempted.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, req domain.VideoRequest) domain.VideoResult
}
