// Package orchestrator drives the promo pipeline end to end:
// token resolution → website scrape → logo/colors → classification →
// brief → tone → posts → banner ∥ video → confidence scoring → report.
package orchestrator

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"token-promo-lab/internal/brief"
	"token-promo-lab/internal/classify"
	"token-promo-lab/internal/confidence"
	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
	"token-promo-lab/internal/tone"
)

// minClipsForPrimaryPath is the clip count below which video generation is
// considered to have used a non-primary path.
const minClipsForPrimaryPath = 2

// Classifier derives a utility class from token text.
type Classifier func(description, projectName string) domain.UtilityClass

// Orchestrator coordinates the promo pipeline execution. It exclusively
// owns the evolving job state; no stage retains state after returning.
type Orchestrator struct {
	tokenResolver   TokenResolver
	websiteScraper  WebsiteScraper
	logoManager     LogoManager
	postGenerator   PostGenerator
	bannerGenerator BannerGenerator
	videoGenerator  VideoGenerator

	classifier Classifier
	logger     *zap.Logger
	metrics    *observability.Metrics
	now        func() time.Time
}

// Options for creating Orchestrator.
type Options struct {
	// Required stage collaborators
	TokenResolver   TokenResolver
	WebsiteScraper  WebsiteScraper
	LogoManager     LogoManager
	PostGenerator   PostGenerator
	BannerGenerator BannerGenerator
	VideoGenerator  VideoGenerator

	// Optional overrides
	Classifier Classifier // defaults to classify.Utility
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Now        func() time.Time // injectable clock for deterministic tests
}

// New creates a new Orchestrator.
func New(opts Options) *Orchestrator {
	if opts.Classifier == nil {
		opts.Classifier = classify.Utility
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Orchestrator{
		tokenResolver:   opts.TokenResolver,
		websiteScraper:  opts.WebsiteScraper,
		logoManager:     opts.LogoManager,
		postGenerator:   opts.PostGenerator,
		bannerGenerator: opts.BannerGenerator,
		videoGenerator:  opts.VideoGenerator,
		classifier:      opts.Classifier,
		logger:          opts.Logger,
		metrics:         opts.Metrics,
		now:             opts.Now,
	}
}

// Run executes the full promo pipeline for one job. It is total: every
// stage either returns a usable value or a degraded substitute, so Run
// always produces a complete JobOutput and never returns an error.
func (o *Orchestrator) Run(ctx context.Context, input domain.JobInput) domain.JobOutput {
	start := o.now()
	log := o.logger.With(
		zap.String("job_id", uuid.NewString()),
		zap.String("ticker", input.Ticker),
	)
	log.Info("promo job started",
		zap.String("contract_address", input.ContractAddress),
		zap.String("intent", input.Intent),
		zap.String("theme", input.Theme))

	fallbacksUsed := false

	// Sequential data-resolution stages. Each consumes the previous
	// stage's output, so ordering is fixed.
	token := o.runTokenStage(ctx, log, input)
	if token.Source == domain.SourceFallback {
		fallbacksUsed = true
		o.metrics.RecordFallback("token_resolution")
	}

	website := o.runScrapeStage(ctx, log, token.WebsiteURL)
	ticker := displayTicker(input, token)
	logo := o.runLogoStage(ctx, log, ticker, token.LogoURL)
	utility := o.classifier(token.Description, token.ProjectName)
	if !utility.IsValid() {
		// The classifier is injectable; guard against a custom one
		// emitting a class the tone tables do not know.
		utility = domain.UtilityHybrid
	}

	jobBrief := brief.Build(token, website, logo, utility, ticker, o.now())
	profile := tone.Resolve(utility, input.Intent, input.Theme, jobBrief.TokenAgeSeconds)
	log.Info("tone profile resolved",
		zap.String("utility", utility.String()),
		zap.String("intent", profile.Intent),
		zap.String("theme", profile.Theme),
		zap.String("profile", profile.ProfileName))

	posts := o.runPostsStage(ctx, log, jobBrief, profile, website)
	tagline := extractTagline(posts.Posts, ticker)
	cta := extractCallToAction(posts.Posts, ticker)

	// Banner and video only need the brief, tone, logo, and post-derived
	// text, so they run as two concurrent branches. Both are awaited.
	banner, video := o.runGenerationStages(ctx, log, domain.BannerRequest{
		Ticker:       ticker,
		VisualThemes: posts.VisualThemes,
		LogoURL:      logo.FinalLogoURL,
		Tagline:      tagline,
		Brief:        jobBrief,
		Tone:         profile,
	}, domain.VideoRequest{
		Ticker:       ticker,
		VisualThemes: posts.VisualThemes,
		LogoURL:      logo.FinalLogoURL,
		Brief:        jobBrief,
		Tone:         profile,
		CallToAction: cta,
	})

	if video.ClipsSucceeded < minClipsForPrimaryPath {
		fallbacksUsed = true
		o.metrics.RecordFallback("video_generation")
	}

	factors := domain.ConfidenceFactors{
		WebsiteFound: website.Found,
		OfficialLogo: token.Source.Official(),
		AllClipsOK:   video.ClipsAttempted > 0 && video.ClipsSucceeded == video.ClipsAttempted,
		NoFallbacks:  !fallbacksUsed,
	}
	level := confidence.Score(factors)
	dataSource := deriveDataSource(website, token.Source)
	elapsed := roundSeconds(o.now().Sub(start))

	o.metrics.RecordJob(dataSource.String(), level, elapsed)
	log.Info("promo job completed",
		zap.String("data_source", dataSource.String()),
		zap.Int("confidence_level", level),
		zap.Float64("elapsed_seconds", elapsed))

	return domain.JobOutput{
		BannerURL:       banner.HeroBannerURL,
		VideoURL:        video.LaunchVideoURL,
		Posts:           posts.Posts,
		BrandColors:     logo.Colors,
		ToneProfileName: profile.ProfileName,
		ConfidenceLevel: level,
		ElapsedSeconds:  elapsed,
		DataSource:      dataSource,
	}
}

func (o *Orchestrator) runTokenStage(ctx context.Context, log *zap.Logger, input domain.JobInput) domain.TokenResolution {
	start := o.now()
	token := o.tokenResolver.Resolve(ctx, input.Ticker, input.ContractAddress)
	o.metrics.RecordStage("token_resolution", o.now().Sub(start).Seconds())
	log.Info("token resolved",
		zap.String("source", token.Source.String()),
		zap.String("project", token.ProjectName))
	return token
}

func (o *Orchestrator) runScrapeStage(ctx context.Context, log *zap.Logger, url string) domain.WebsiteScrapeResult {
	start := o.now()
	website := o.websiteScraper.Scrape(ctx, url)
	o.metrics.RecordStage("website_scrape", o.now().Sub(start).Seconds())
	if !website.Found {
		o.metrics.RecordFallback("website_scrape")
	}
	log.Info("website scraped", zap.Bool("found", website.Found), zap.Int("chars", len(website.Text)))
	return website
}

func (o *Orchestrator) runLogoStage(ctx context.Context, log *zap.Logger, ticker, logoURL string) domain.LogoResult {
	start := o.now()
	logo := o.logoManager.Manage(ctx, ticker, logoURL)
	o.metrics.RecordStage("logo_colors", o.now().Sub(start).Seconds())
	if logo.Placeholder {
		o.metrics.RecordFallback("logo_colors")
	}
	log.Info("logo processed",
		zap.Bool("placeholder", logo.Placeholder),
		zap.String("primary_color", logo.Colors.Primary))
	return logo
}

func (o *Orchestrator) runPostsStage(ctx context.Context, log *zap.Logger, jobBrief domain.CreativeBrief, profile domain.ToneProfile, website domain.WebsiteScrapeResult) domain.PostsResult {
	start := o.now()
	posts := o.postGenerator.GeneratePosts(ctx, jobBrief, profile, website)
	o.metrics.RecordStage("text_generation", o.now().Sub(start).Seconds())
	if posts.Degraded {
		o.metrics.RecordFallback("text_generation")
	}
	log.Info("posts generated",
		zap.Int("posts", len(posts.Posts)),
		zap.Bool("degraded", posts.Degraded))
	return posts
}

// runGenerationStages fans out banner and video generation and waits for
// both. Neither branch can fail: each generator degrades internally.
func (o *Orchestrator) runGenerationStages(ctx context.Context, log *zap.Logger, bannerReq domain.BannerRequest, videoReq domain.VideoRequest) (domain.BannerResult, domain.VideoResult) {
	var (
		banner domain.BannerResult
		video  domain.VideoResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := o.now()
		banner = o.bannerGenerator.GenerateBanner(gctx, bannerReq)
		o.metrics.RecordStage("banner_generation", o.now().Sub(start).Seconds())
		return nil
	})
	g.Go(func() error {
		start := o.now()
		video = o.videoGenerator.GenerateVideo(gctx, videoReq)
		o.metrics.RecordStage("video_generation", o.now().Sub(start).Seconds())
		return nil
	})
	_ = g.Wait()

	log.Info("generation branches completed",
		zap.String("banner_url", banner.HeroBannerURL),
		zap.String("video_url", video.LaunchVideoURL),
		zap.Int("clips_succeeded", video.ClipsSucceeded),
		zap.Int("clips_attempted", video.ClipsAttempted))
	return banner, video
}

// deriveDataSource summarizes provenance: "website" when real website
// content backed a resolution from an official metadata source,
// "thematic_only" when neither was available, "mixed" otherwise.
func deriveDataSource(website domain.WebsiteScrapeResult, source domain.ResolutionSource) domain.DataSource {
	switch {
	case website.Found && source.Official():
		return domain.DataSourceWebsite
	case !website.Found && source == domain.SourceFallback:
		return domain.DataSourceThematicOnly
	default:
		return domain.DataSourceMixed
	}
}

// displayTicker picks the ticker used in templates and prompts: the
// user-supplied ticker, else the resolved project name, else a generic tag.
func displayTicker(input domain.JobInput, token domain.TokenResolution) string {
	if input.Ticker != "" {
		return strings.ToUpper(input.Ticker)
	}
	if token.ProjectName != "" {
		return strings.ToUpper(strings.ReplaceAll(token.ProjectName, " ", ""))
	}
	return "TOKEN"
}

// roundSeconds reports elapsed wall-clock time rounded to two decimals.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
