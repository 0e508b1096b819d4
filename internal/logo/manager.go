// Package logo manages the job's logo asset and brand color palette:
// download the official logo and extract its palette, or synthesize a
// placeholder when no logo is available.
package logo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Registered decoders for official logo formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
	"token-promo-lab/internal/retry"
)

// Default configuration values.
const (
	DefaultTimeout = 10 * time.Second
	maxLogoBytes   = 5 << 20
)

// Manager implements the logo/colors stage contract.
type Manager struct {
	client  *http.Client
	policy  retry.Policy
	metrics *observability.Metrics
	log     *zap.Logger
}

// ManagerOption configures Manager.
type ManagerOption func(*Manager)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ManagerOption {
	return func(m *Manager) {
		m.client = client
	}
}

// WithRetryPolicy overrides the retry policy used for downloads.
func WithRetryPolicy(p retry.Policy) ManagerOption {
	return func(m *Manager) {
		m.policy = p
	}
}

// WithMetrics enables remote-call metrics for downloads.
func WithMetrics(m *observability.Metrics) ManagerOption {
	return func(mgr *Manager) {
		mgr.metrics = m
	}
}

// NewManager creates a logo manager.
func NewManager(log *zap.Logger, opts ...ManagerOption) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		client: &http.Client{Timeout: DefaultTimeout},
		policy: retry.Policy{Label: "logo-download"},
		log:    log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Manage never fails: when the official logo cannot be downloaded or
// decoded, a synthesized placeholder and its palette are used instead.
func (m *Manager) Manage(ctx context.Context, ticker, logoURL string) domain.LogoResult {
	if logoURL != "" {
		data, err := retry.DoValue(ctx, m.policy, func(ctx context.Context) ([]byte, error) {
			return m.download(ctx, logoURL)
		})
		if err == nil {
			img, _, decodeErr := image.Decode(bytes.NewReader(data))
			if decodeErr == nil {
				return domain.LogoResult{
					FinalLogoURL: logoURL,
					Colors:       ExtractPalette(img),
				}
			}
			m.log.Debug("logo decode failed", zap.String("url", logoURL), zap.Error(decodeErr))
		} else {
			m.log.Debug("logo download failed", zap.String("url", logoURL), zap.Error(err))
		}
	}

	data, colors, err := PlaceholderPNG(ticker)
	if err != nil {
		// PNG encoding of a synthetic image should not fail; if it
		// somehow does, the palette still holds.
		m.log.Warn("placeholder synthesis failed", zap.Error(err))
		return domain.LogoResult{Colors: DefaultPalette, Placeholder: true}
	}

	return domain.LogoResult{
		FinalLogoURL: DataURI(data),
		Colors:       colors,
		Placeholder:  true,
	}
}

func (m *Manager) download(ctx context.Context, url string) (data []byte, err error) {
	start := time.Now()
	defer func() {
		m.metrics.RecordRemoteCall("logo_cdn", time.Since(start).Seconds(), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
