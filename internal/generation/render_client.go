package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
)

// Default configuration values.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultPollInterval = 2 * time.Second
	DefaultMaxPollWait  = 3 * time.Minute
)

// RenderClient talks to the media render service: image generation,
// compositing, video clips, stitching, and text cards. Every render is
// asynchronous server-side: submission returns a job id which is polled
// until completion. The poll loop enforces its own maximum wait,
// independent of any outer timeout.
//
// The client performs single submissions only; retry decisions belong to
// the retry executor at the call site.
type RenderClient struct {
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	maxPollWait  time.Duration
	metrics      *observability.Metrics
}

// RenderOption configures RenderClient.
type RenderOption func(*RenderClient)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) RenderOption {
	return func(c *RenderClient) {
		c.client = client
	}
}

// WithPollInterval sets the render-completion poll interval.
func WithPollInterval(d time.Duration) RenderOption {
	return func(c *RenderClient) {
		c.pollInterval = d
	}
}

// WithMaxPollWait sets the maximum time to wait for one render job.
func WithMaxPollWait(d time.Duration) RenderOption {
	return func(c *RenderClient) {
		c.maxPollWait = d
	}
}

// WithRenderMetrics enables remote-call metrics for render requests.
func WithRenderMetrics(m *observability.Metrics) RenderOption {
	return func(c *RenderClient) {
		c.metrics = m
	}
}

// NewRenderClient creates a render service client.
func NewRenderClient(baseURL string, opts ...RenderOption) *RenderClient {
	c := &RenderClient{
		baseURL:      baseURL,
		client:       &http.Client{Timeout: DefaultTimeout},
		pollInterval: DefaultPollInterval,
		maxPollWait:  DefaultMaxPollWait,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImageSpec describes a background image render.
type ImageSpec struct {
	Prompt string   `json:"prompt"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Colors []string `json:"colors,omitempty"`
}

// ClipSpec describes a single video clip render.
type ClipSpec struct {
	Prompt          string `json:"prompt"`
	DurationSeconds int    `json:"duration_seconds"`
	Style           string `json:"style,omitempty"`
}

// GenerateImage renders a background image and returns its URL.
func (c *RenderClient) GenerateImage(ctx context.Context, spec ImageSpec) (string, error) {
	return c.submitAndPoll(ctx, "/v1/images", spec)
}

// Composite overlays a logo and caption onto a background image.
func (c *RenderClient) Composite(ctx context.Context, backgroundURL, overlayURL, caption string) (string, error) {
	return c.submitAndPoll(ctx, "/v1/composites", map[string]string{
		"background_url": backgroundURL,
		"overlay_url":    overlayURL,
		"caption":        caption,
	})
}

// GenerateClip renders one video clip and returns its URL.
func (c *RenderClient) GenerateClip(ctx context.Context, spec ClipSpec) (string, error) {
	return c.submitAndPoll(ctx, "/v1/clips", spec)
}

// StitchClips concatenates clips into one video.
func (c *RenderClient) StitchClips(ctx context.Context, clipURLs []string) (string, error) {
	return c.submitAndPoll(ctx, "/v1/stitches", map[string][]string{"clip_urls": clipURLs})
}

// TextCard renders a static text-card video, the last-resort video asset.
func (c *RenderClient) TextCard(ctx context.Context, text string, colors domain.BrandColors) (string, error) {
	return c.submitAndPoll(ctx, "/v1/textcards", map[string]string{
		"text":      text,
		"primary":   colors.Primary,
		"secondary": colors.Secondary,
	})
}

// submitResponse is returned by render submissions. Small renders may
// complete inline and return a URL immediately.
type submitResponse struct {
	JobID string `json:"job_id"`
	URL   string `json:"url"`
}

// jobStatus is returned by the job-poll endpoint.
type jobStatus struct {
	Status string `json:"status"` // pending | processing | done | failed
	URL    string `json:"url"`
	Error  string `json:"error"`
}

func (c *RenderClient) submitAndPoll(ctx context.Context, path string, payload any) (string, error) {
	var submitted submitResponse
	if err := c.post(ctx, path, payload, &submitted); err != nil {
		return "", err
	}
	if submitted.URL != "" {
		return submitted.URL, nil
	}
	if submitted.JobID == "" {
		return "", fmt.Errorf("render submission returned neither url nor job id")
	}
	return c.pollJob(ctx, submitted.JobID)
}

// pollJob polls a render job until done, failed, or the poll budget runs out.
func (c *RenderClient) pollJob(ctx context.Context, jobID string) (string, error) {
	deadline := time.Now().Add(c.maxPollWait)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("render job %s: poll wait exceeded %s", jobID, c.maxPollWait)
		}

		var status jobStatus
		if err := c.get(ctx, "/v1/jobs/"+jobID, &status); err != nil {
			return "", err
		}

		switch status.Status {
		case "done":
			if status.URL == "" {
				return "", fmt.Errorf("render job %s: done without url", jobID)
			}
			return status.URL, nil
		case "failed":
			return "", fmt.Errorf("render job %s failed: %s", jobID, status.Error)
		}
	}
}

func (c *RenderClient) post(ctx context.Context, path string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *RenderClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, result)
}

func (c *RenderClient) do(req *http.Request, result any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordRemoteCall("render_api", time.Since(start).Seconds(), err)
	}()

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
