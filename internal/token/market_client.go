package token

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
)

// Default configuration values.
const (
	DefaultTimeout = 15 * time.Second
)

// MarketClient queries the market-data API for token metadata by ticker or
// contract address. It performs single attempts only; retry decisions
// belong to the retry executor at the call site.
type MarketClient struct {
	baseURL string
	client  *http.Client
	metrics *observability.Metrics
}

// MarketOption configures MarketClient.
type MarketOption func(*MarketClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) MarketOption {
	return func(c *MarketClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) MarketOption {
	return func(c *MarketClient) {
		c.client = client
	}
}

// WithMetrics enables remote-call metrics for lookups.
func WithMetrics(m *observability.Metrics) MarketOption {
	return func(c *MarketClient) {
		c.metrics = m
	}
}

// NewMarketClient creates a new market-data API client.
func NewMarketClient(baseURL string, opts ...MarketOption) *MarketClient {
	c := &MarketClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pairResponse mirrors the market API pair schema.
type pairResponse struct {
	Pairs []pairInfo `json:"pairs"`
}

type pairInfo struct {
	BaseToken struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	Info struct {
		ImageURL    string `json:"imageUrl"`
		Description string `json:"description"`
		Websites    []struct {
			URL string `json:"url"`
		} `json:"websites"`
		Socials []struct {
			Type string `json:"type"`
			URL  string `json:"url"`
		} `json:"socials"`
	} `json:"info"`
	PairCreatedAt int64 `json:"pairCreatedAt"` // ms since epoch, 0 when unknown
}

// LookupTicker resolves token metadata by ticker symbol.
func (c *MarketClient) LookupTicker(ctx context.Context, ticker string) (domain.TokenResolution, error) {
	endpoint := fmt.Sprintf("%s/v1/pairs/search?q=%s", c.baseURL, url.QueryEscape(ticker))
	pair, err := c.fetchPair(ctx, endpoint)
	if err != nil {
		return domain.TokenResolution{}, err
	}
	return pair.toResolution(domain.SourcePrimary), nil
}

// LookupAddress resolves token metadata by contract address.
func (c *MarketClient) LookupAddress(ctx context.Context, address string) (domain.TokenResolution, error) {
	endpoint := fmt.Sprintf("%s/v1/pairs/token/%s", c.baseURL, url.PathEscape(address))
	pair, err := c.fetchPair(ctx, endpoint)
	if err != nil {
		return domain.TokenResolution{}, err
	}
	return pair.toResolution(domain.SourceAddress), nil
}

func (c *MarketClient) fetchPair(ctx context.Context, endpoint string) (pair *pairInfo, err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordRemoteCall("market_api", time.Since(start).Seconds(), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var parsed pairResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Pairs) == 0 {
		return nil, fmt.Errorf("no pairs found")
	}
	return &parsed.Pairs[0], nil
}

// toResolution maps a market pair to the domain resolution.
func (p *pairInfo) toResolution(source domain.ResolutionSource) domain.TokenResolution {
	res := domain.TokenResolution{
		ProjectName:     p.BaseToken.Name,
		Description:     p.Info.Description,
		LogoURL:         p.Info.ImageURL,
		ContractAddress: p.BaseToken.Address,
		Source:          source,
	}

	if len(p.Info.Websites) > 0 {
		res.WebsiteURL = p.Info.Websites[0].URL
	}
	if len(p.Info.Socials) > 0 {
		res.SocialLinks = make(map[string]string, len(p.Info.Socials))
		for _, s := range p.Info.Socials {
			res.SocialLinks[s.Type] = s.URL
		}
	}
	if p.PairCreatedAt > 0 {
		created := time.UnixMilli(p.PairCreatedAt).UTC()
		res.PairCreatedAt = &created
	}
	return res
}
