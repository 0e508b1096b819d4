package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/retry"
)

const (
	minClips            = 2
	maxClips            = 3
	clipDurationSeconds = 4
)

// VideoGenerator renders the launch video: two or three themed clips
// rendered in parallel, stitched into one asset. Failed clips are dropped
// rather than failing the branch. With no surviving clips a static
// text-card video is the last resort.
type VideoGenerator struct {
	render *RenderClient
	policy retry.Policy
	log    *zap.Logger
}

// VideoOption configures VideoGenerator.
type VideoOption func(*VideoGenerator)

// WithVideoRetryPolicy overrides the render-call retry policy.
func WithVideoRetryPolicy(p retry.Policy) VideoOption {
	return func(g *VideoGenerator) {
		g.policy = p
	}
}

// NewVideoGenerator creates a video generator backed by the render service.
func NewVideoGenerator(render *RenderClient, log *zap.Logger, opts ...VideoOption) *VideoGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &VideoGenerator{
		render: render,
		policy: retry.Policy{Label: "clip render"},
		log:    log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateVideo renders and stitches the launch video. It reports how many
// clips were attempted and how many survived.
func (g *VideoGenerator) GenerateVideo(ctx context.Context, req domain.VideoRequest) domain.VideoResult {
	specs := clipSpecs(req)
	urls := make([]string, len(specs))

	// All clips settle before the join; one bad clip must not cancel
	// its siblings, so goroutines record errors instead of returning them.
	var group errgroup.Group
	for i, spec := range specs {
		group.Go(func() error {
			url, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (string, error) {
				return g.render.GenerateClip(ctx, spec)
			})
			if err != nil {
				g.log.Warn("clip render failed", zap.Int("clip", i), zap.Error(err))
				return nil
			}
			urls[i] = url
			return nil
		})
	}
	_ = group.Wait()

	clips := make([]string, 0, len(urls))
	for _, url := range urls {
		if url != "" {
			clips = append(clips, url)
		}
	}

	result := domain.VideoResult{
		ClipsSucceeded: len(clips),
		ClipsAttempted: len(specs),
	}

	switch {
	case len(clips) == 0:
		result.LaunchVideoURL = g.textCard(ctx, req)
	case len(clips) == 1:
		result.LaunchVideoURL = clips[0]
	default:
		stitched, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (string, error) {
			return g.render.StitchClips(ctx, clips)
		})
		if err != nil {
			g.log.Warn("stitch failed, shipping first clip", zap.Error(err))
			result.LaunchVideoURL = clips[0]
			break
		}
		result.LaunchVideoURL = stitched
	}

	return result
}

// textCard renders the static fallback video. A failure here leaves the
// video URL empty; the job still completes with the remaining assets.
func (g *VideoGenerator) textCard(ctx context.Context, req domain.VideoRequest) string {
	text := req.CallToAction
	if text == "" {
		text = "$" + req.Ticker
	}
	url, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (string, error) {
		return g.render.TextCard(ctx, text, req.Brief.Colors)
	})
	if err != nil {
		g.log.Error("text-card render failed, no video asset", zap.Error(err))
		return ""
	}
	return url
}

// clipSpecs derives between minClips and maxClips clip prompts from the
// visual themes, padding with a generic prompt when themes run short.
func clipSpecs(req domain.VideoRequest) []ClipSpec {
	count := len(req.VisualThemes)
	if count < minClips {
		count = minClips
	}
	if count > maxClips {
		count = maxClips
	}

	specs := make([]ClipSpec, 0, count)
	for i := 0; i < count; i++ {
		prompt := fmt.Sprintf("%s launch teaser for the %s token", req.Tone.Theme, req.Ticker)
		if i < len(req.VisualThemes) {
			prompt += ": " + req.VisualThemes[i]
		}
		specs = append(specs, ClipSpec{
			Prompt:          prompt,
			DurationSeconds: clipDurationSeconds,
			Style:           req.Tone.Theme,
		})
	}
	return specs
}
