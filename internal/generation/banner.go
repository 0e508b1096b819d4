package generation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/logo"
	"token-promo-lab/internal/retry"
)

const (
	bannerWidth  = 1500
	bannerHeight = 500
)

// BannerGenerator renders the hero banner: a themed background with the
// logo and tagline composited on top. When the background render fails the
// banner degrades to a plain brand-color gradient; when only the composite
// fails the bare background ships as-is.
type BannerGenerator struct {
	render *RenderClient
	policy retry.Policy
	log    *zap.Logger
}

// BannerOption configures BannerGenerator.
type BannerOption func(*BannerGenerator)

// WithBannerRetryPolicy overrides the render-call retry policy.
func WithBannerRetryPolicy(p retry.Policy) BannerOption {
	return func(g *BannerGenerator) {
		g.policy = p
	}
}

// NewBannerGenerator creates a banner generator backed by the render service.
func NewBannerGenerator(render *RenderClient, log *zap.Logger, opts ...BannerOption) *BannerGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &BannerGenerator{
		render: render,
		policy: retry.Policy{Label: "banner render"},
		log:    log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateBanner renders the hero banner. It always returns a usable asset.
func (g *BannerGenerator) GenerateBanner(ctx context.Context, req domain.BannerRequest) domain.BannerResult {
	backgroundURL, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (string, error) {
		return g.render.GenerateImage(ctx, backgroundSpec(req))
	})
	if err != nil {
		g.log.Warn("background render failed, using gradient banner", zap.Error(err))
		return domain.BannerResult{HeroBannerURL: gradientBanner(req.Brief.Colors)}
	}

	finalURL, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (string, error) {
		return g.render.Composite(ctx, backgroundURL, req.LogoURL, req.Tagline)
	})
	if err != nil {
		g.log.Warn("banner composite failed, shipping bare background", zap.Error(err))
		return domain.BannerResult{HeroBannerURL: backgroundURL}
	}

	return domain.BannerResult{HeroBannerURL: finalURL}
}

func backgroundSpec(req domain.BannerRequest) ImageSpec {
	prompt := fmt.Sprintf("%s hero banner background for the %s token", req.Tone.Theme, req.Ticker)
	if len(req.VisualThemes) > 0 {
		prompt += ": " + strings.Join(req.VisualThemes, ", ")
	}
	return ImageSpec{
		Prompt: prompt,
		Width:  bannerWidth,
		Height: bannerHeight,
		Colors: []string{req.Brief.Colors.Primary, req.Brief.Colors.Secondary},
	}
}

// gradientBanner synthesizes a local gradient image as a data URI. Encoding
// of the default palette cannot fail, so this always yields an asset.
func gradientBanner(colors domain.BrandColors) string {
	data, err := logo.GradientPNG(colors)
	if err != nil {
		data, _ = logo.GradientPNG(logo.DefaultPalette)
	}
	return logo.DataURI(data)
}
