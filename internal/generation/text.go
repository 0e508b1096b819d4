package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
	"token-promo-lab/internal/retry"
)

const (
	postCount      = 3
	maxPostRunes   = 280
	maxModelTokens = 2048
)

// messageCreator is the slice of the Anthropic client the text generator
// uses. Kept narrow so tests can substitute a canned responder.
type messageCreator interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// TextGenerator produces the social post set from a creative brief via a
// language model. A malformed or failed model response degrades to
// templated posts rather than failing the job.
type TextGenerator struct {
	messages messageCreator
	model    anthropic.Model
	policy   retry.Policy
	metrics  *observability.Metrics
	log      *zap.Logger
}

// TextOption configures TextGenerator.
type TextOption func(*TextGenerator)

// WithTextRetryPolicy overrides the model-call retry policy.
func WithTextRetryPolicy(p retry.Policy) TextOption {
	return func(g *TextGenerator) {
		g.policy = p
	}
}

// WithTextMetrics enables remote-call metrics for model calls.
func WithTextMetrics(m *observability.Metrics) TextOption {
	return func(g *TextGenerator) {
		g.metrics = m
	}
}

// NewTextGenerator creates a post generator backed by the given Anthropic
// client and model name.
func NewTextGenerator(client anthropic.Client, model string, log *zap.Logger, opts ...TextOption) *TextGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &TextGenerator{
		messages: &client.Messages,
		model:    anthropic.Model(model),
		policy:   retry.Policy{Label: "post generation"},
		log:      log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// postsPayload is the JSON document the model is instructed to emit.
type postsPayload struct {
	Posts        []string `json:"posts"`
	VisualThemes []string `json:"visual_themes"`
}

// GeneratePosts asks the model for three posts plus visual themes. Any
// failure path yields templated posts with Degraded set.
func (g *TextGenerator) GeneratePosts(ctx context.Context, brief domain.CreativeBrief, tone domain.ToneProfile, website domain.WebsiteScrapeResult) domain.PostsResult {
	prompt := buildPostsPrompt(brief, tone, website)

	msg, err := retry.DoValue(ctx, g.policy, func(ctx context.Context) (*anthropic.Message, error) {
		start := time.Now()
		m, err := g.messages.New(ctx, anthropic.MessageNewParams{
			Model:     g.model,
			MaxTokens: maxModelTokens,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		g.metrics.RecordRemoteCall("anthropic", time.Since(start).Seconds(), err)
		return m, err
	})
	if err != nil {
		g.log.Warn("model call failed, using templated posts", zap.Error(err))
		return FallbackPosts(brief, tone)
	}

	payload, err := parsePostsResponse(messageText(msg))
	if err != nil {
		g.log.Warn("unusable model response, using templated posts", zap.Error(err))
		return FallbackPosts(brief, tone)
	}

	themes := payload.VisualThemes
	if len(themes) == 0 {
		themes = fallbackThemes(tone.Theme)
	}

	return domain.PostsResult{
		Posts:        clampPosts(payload.Posts),
		VisualThemes: themes,
	}
}

func buildPostsPrompt(brief domain.CreativeBrief, tone domain.ToneProfile, website domain.WebsiteScrapeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d social posts announcing the crypto token %q.\n", postCount, brief.ProjectName)
	fmt.Fprintf(&b, "One-liner: %s\n", brief.OneLiner)
	fmt.Fprintf(&b, "Voice: %q archetype, %s intent, %s visual theme.\n", tone.ProfileName, tone.Intent, tone.Theme)
	if website.Found && website.Text != "" {
		fmt.Fprintf(&b, "Website copy for grounding:\n%s\n", website.Text)
	}
	fmt.Fprintf(&b, "Each post must be at most %d characters. ", maxPostRunes)
	b.WriteString(`Respond with JSON only: {"posts": ["...", "...", "..."], "visual_themes": ["...", "..."]}`)
	return b.String()
}

// messageText concatenates the text blocks of a model response.
func messageText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// parsePostsResponse extracts the JSON document from the model output.
// Models occasionally wrap the document in prose, so parsing starts at the
// first brace and ends at the last.
func parsePostsResponse(raw string) (postsPayload, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return postsPayload{}, fmt.Errorf("no JSON object in response")
	}

	var payload postsPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return postsPayload{}, fmt.Errorf("decode posts payload: %w", err)
	}

	usable := payload.Posts[:0]
	for _, post := range payload.Posts {
		if strings.TrimSpace(post) != "" {
			usable = append(usable, post)
		}
	}
	payload.Posts = usable
	if len(payload.Posts) < postCount {
		return postsPayload{}, fmt.Errorf("expected %d posts, got %d", postCount, len(payload.Posts))
	}
	return payload, nil
}

// clampPosts trims the set to exactly postCount entries of at most
// maxPostRunes runes each.
func clampPosts(posts []string) []string {
	out := make([]string, 0, postCount)
	for _, post := range posts[:postCount] {
		runes := []rune(strings.TrimSpace(post))
		if len(runes) > maxPostRunes {
			runes = runes[:maxPostRunes]
		}
		out = append(out, string(runes))
	}
	return out
}
