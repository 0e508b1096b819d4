package orchestrator

import (
	"context"
	"testing"
	"time"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/stage/stub"
)

func newTestOrchestrator(set *stub.Set, opts ...func(*Options)) *Orchestrator {
	o := Options{
		TokenResolver:   set.Tokens,
		WebsiteScraper:  set.Scraper,
		LogoManager:     set.Logos,
		PostGenerator:   set.Posts,
		BannerGenerator: set.Banners,
		VideoGenerator:  set.Videos,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return New(o)
}

func TestRun_FullyHealthyJob(t *testing.T) {
	set := stub.HealthySet("LEND")
	// Protocol-only description so the classification is unambiguous.
	set.Tokens.Resolution.Description = "A lending protocol with oracle infrastructure"

	out := newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "LEND"})

	if out.ConfidenceLevel != 4 {
		t.Errorf("ConfidenceLevel = %d, want 4", out.ConfidenceLevel)
	}
	if out.DataSource != domain.DataSourceWebsite {
		t.Errorf("DataSource = %s, want website", out.DataSource)
	}
	if len(out.Posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(out.Posts))
	}
	for i, p := range out.Posts {
		if p == "" {
			t.Errorf("Post %d is empty", i)
		}
		if len([]rune(p)) > 280 {
			t.Errorf("Post %d exceeds 280 characters: %d", i, len([]rune(p)))
		}
	}
	if out.BannerURL == "" || out.VideoURL == "" {
		t.Errorf("Expected banner and video URLs, got %q / %q", out.BannerURL, out.VideoURL)
	}
}

func TestRun_UnknownClassifierOutputTreatedAsHybrid(t *testing.T) {
	bogus := newTestOrchestrator(stub.HealthySet("LEND"), func(o *Options) {
		o.Classifier = func(description, projectName string) domain.UtilityClass {
			return domain.UtilityClass("galactic")
		}
	})
	hybrid := newTestOrchestrator(stub.HealthySet("LEND"), func(o *Options) {
		o.Classifier = func(description, projectName string) domain.UtilityClass {
			return domain.UtilityHybrid
		}
	})

	input := domain.JobInput{Ticker: "LEND"}
	got := bogus.Run(context.Background(), input)
	want := hybrid.Run(context.Background(), input)

	if got.ToneProfileName != want.ToneProfileName {
		t.Errorf("ToneProfileName = %q, want the hybrid profile %q", got.ToneProfileName, want.ToneProfileName)
	}
}

func TestRun_EverythingDegraded(t *testing.T) {
	// DOGE scenario: no contract address, no website, resolution exhausted
	// to fallback, no clips. The job must still complete.
	out := newTestOrchestrator(stub.DegradedSet()).Run(context.Background(), domain.JobInput{Ticker: "DOGE"})

	if out.ConfidenceLevel != 1 {
		t.Errorf("ConfidenceLevel = %d, want 1", out.ConfidenceLevel)
	}
	if out.DataSource != domain.DataSourceThematicOnly {
		t.Errorf("DataSource = %s, want thematic_only", out.DataSource)
	}
	if len(out.Posts) != 3 {
		t.Fatalf("Expected 3 posts even when degraded, got %d", len(out.Posts))
	}
	for i, p := range out.Posts {
		if p == "" {
			t.Errorf("Post %d is empty", i)
		}
		if len([]rune(p)) > 280 {
			t.Errorf("Post %d exceeds 280 characters", i)
		}
	}
}

func TestRun_MixedProvenance(t *testing.T) {
	// Website found but the token resolution fell back: neither pure
	// website nor pure thematic.
	set := stub.HealthySet("MIX")
	set.Tokens.Resolution.Source = domain.SourceFallback

	out := newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "MIX"})

	if out.DataSource != domain.DataSourceMixed {
		t.Errorf("DataSource = %s, want mixed", out.DataSource)
	}
}

func TestRun_WebsiteMissingWithOfficialToken(t *testing.T) {
	set := stub.HealthySet("ABC")
	set.Scraper.Result = domain.WebsiteScrapeResult{Found: false}

	out := newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "ABC"})

	if out.DataSource != domain.DataSourceMixed {
		t.Errorf("DataSource = %s, want mixed", out.DataSource)
	}
}

func TestRun_PartialClipsLowerConfidence(t *testing.T) {
	set := stub.HealthySet("CLIP")
	set.Videos.Result = domain.VideoResult{
		LaunchVideoURL: "https://assets.example.com/videos/clip.mp4",
		ClipsSucceeded: 1,
		ClipsAttempted: 2,
	}

	out := newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "CLIP"})

	// websiteFound + officialLogo hold; allClipsOK and noFallbacks do not
	// (fewer than 2 clips marks the job as having used a fallback).
	if out.ConfidenceLevel != 2 {
		t.Errorf("ConfidenceLevel = %d, want 2", out.ConfidenceLevel)
	}
}

func TestRun_TokenFallbackClearsNoFallbacksFactor(t *testing.T) {
	set := stub.HealthySet("FB")
	set.Tokens.Resolution.Source = domain.SourceFallback

	out := newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "FB"})

	// websiteFound + allClipsOK hold; officialLogo and noFallbacks do not.
	if out.ConfidenceLevel != 2 {
		t.Errorf("ConfidenceLevel = %d, want 2", out.ConfidenceLevel)
	}
}

func TestRun_GenerationRequestsCarryPostDerivedText(t *testing.T) {
	set := stub.HealthySet("REQ")
	set.Posts.Result = domain.PostsResult{
		Posts: []string{
			"A launch for the ages. Everything changes now, and nothing will be the same.\nJoin $REQ today\nmore text",
			"second post",
			"third post",
		},
		VisualThemes: []string{"theme-a", "theme-b"},
	}

	newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "REQ"})

	bannerReq := set.Banners.Request()
	if bannerReq.Tagline != "A launch for the ages" {
		t.Errorf("Banner tagline = %q, want first-sentence tagline", bannerReq.Tagline)
	}
	if len(bannerReq.VisualThemes) != 2 {
		t.Errorf("Banner visual themes not passed through: %+v", bannerReq.VisualThemes)
	}

	videoReq := set.Videos.Request()
	if videoReq.CallToAction != "Join $REQ today" {
		t.Errorf("Video CTA = %q, want first fitting line", videoReq.CallToAction)
	}
	if videoReq.Ticker != "REQ" {
		t.Errorf("Video ticker = %q, want REQ", videoReq.Ticker)
	}
}

func TestRun_BothGenerationBranchesRun(t *testing.T) {
	set := stub.HealthySet("PAR")
	newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "PAR"})

	if set.Banners.Calls != 1 {
		t.Errorf("Banner generator calls = %d, want 1", set.Banners.Calls)
	}
	if set.Videos.Calls != 1 {
		t.Errorf("Video generator calls = %d, want 1", set.Videos.Calls)
	}
}

func TestRun_ElapsedSecondsRounded(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ticks := 0
	clock := func() time.Time {
		// Every observation advances the clock; the job sees a non-zero,
		// fraction-bearing elapsed time.
		ticks++
		return base.Add(time.Duration(ticks) * 123 * time.Millisecond)
	}

	set := stub.HealthySet("TIME")
	out := newTestOrchestrator(set, func(o *Options) { o.Now = clock }).
		Run(context.Background(), domain.JobInput{Ticker: "TIME"})

	if out.ElapsedSeconds <= 0 {
		t.Fatalf("ElapsedSeconds = %f, want > 0", out.ElapsedSeconds)
	}
	cents := out.ElapsedSeconds * 100
	if cents != float64(int64(cents)) {
		t.Errorf("ElapsedSeconds %f not rounded to two decimals", out.ElapsedSeconds)
	}
}

func TestRun_ScrapesResolvedWebsiteURL(t *testing.T) {
	set := stub.HealthySet("URL")
	set.Tokens.Resolution.WebsiteURL = "https://url.example.com"

	newTestOrchestrator(set).Run(context.Background(), domain.JobInput{Ticker: "URL"})

	if set.Scraper.LastURL != "https://url.example.com" {
		t.Errorf("Scraped %q, want the resolved website URL", set.Scraper.LastURL)
	}
}

func TestDeriveDataSource(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		source domain.ResolutionSource
		want   domain.DataSource
	}{
		{"website with primary source", true, domain.SourcePrimary, domain.DataSourceWebsite},
		{"website with address source", true, domain.SourceAddress, domain.DataSourceWebsite},
		{"website with user-provided source", true, domain.SourceUserProvided, domain.DataSourceMixed},
		{"no website with fallback", false, domain.SourceFallback, domain.DataSourceThematicOnly},
		{"no website with primary source", false, domain.SourcePrimary, domain.DataSourceMixed},
		{"website with fallback", true, domain.SourceFallback, domain.DataSourceMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveDataSource(domain.WebsiteScrapeResult{Found: tt.found}, tt.source)
			if got != tt.want {
				t.Errorf("deriveDataSource = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDisplayTicker(t *testing.T) {
	tests := []struct {
		name  string
		input domain.JobInput
		token domain.TokenResolution
		want  string
	}{
		{"user ticker uppercased", domain.JobInput{Ticker: "doge"}, domain.TokenResolution{}, "DOGE"},
		{"project name fallback", domain.JobInput{}, domain.TokenResolution{ProjectName: "Lend Core"}, "LENDCORE"},
		{"generic fallback", domain.JobInput{}, domain.TokenResolution{}, "TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayTicker(tt.input, tt.token); got != tt.want {
				t.Errorf("displayTicker = %q, want %q", got, tt.want)
			}
		})
	}
}
