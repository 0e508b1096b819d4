// Package token resolves token metadata through an ordered chain of
// sources: ticker lookup, address lookup, the user-provided address, and
// finally empty defaults tagged as fallback.
package token

import (
	"context"

	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/resolve"
	"token-promo-lab/internal/retry"
)

// Resolver implements the token-resolution stage contract.
type Resolver struct {
	market *MarketClient
	policy retry.Policy
	log    *zap.Logger
}

// ResolverOption configures Resolver.
type ResolverOption func(*Resolver)

// WithRetryPolicy overrides the retry policy used for lookups.
func WithRetryPolicy(p retry.Policy) ResolverOption {
	return func(r *Resolver) {
		r.policy = p
	}
}

// NewResolver creates a token resolver backed by the market-data client.
func NewResolver(market *MarketClient, log *zap.Logger, opts ...ResolverOption) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{
		market: market,
		policy: retry.Policy{},
		log:    log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve never fails: when every source is exhausted it returns empty
// defaults tagged with the fallback source.
func (r *Resolver) Resolve(ctx context.Context, ticker, address string) domain.TokenResolution {
	fallback := domain.TokenResolution{Source: domain.SourceFallback}

	result := resolve.Chain(ctx, r.log, r.policy, fallback,
		resolve.Strategy[domain.TokenResolution]{
			Name: "ticker-lookup",
			Skip: ticker == "",
			Run: func(ctx context.Context) (domain.TokenResolution, error) {
				return r.market.LookupTicker(ctx, ticker)
			},
			Accept: usable,
		},
		resolve.Strategy[domain.TokenResolution]{
			Name: "address-lookup",
			Skip: !ValidAddress(address),
			Run: func(ctx context.Context) (domain.TokenResolution, error) {
				return r.market.LookupAddress(ctx, address)
			},
			Accept: usable,
		},
		resolve.Strategy[domain.TokenResolution]{
			Name: "user-provided",
			Skip: address == "",
			Run: func(ctx context.Context) (domain.TokenResolution, error) {
				canonical, err := NormalizeAddress(address)
				if err != nil {
					return domain.TokenResolution{}, err
				}
				return domain.TokenResolution{
					ContractAddress: canonical,
					Source:          domain.SourceUserProvided,
				}, nil
			},
		},
	)

	if result.Fallback && LooksLikeWallet(address) {
		r.log.Warn("unresolvable address is on-curve, possibly a wallet address",
			zap.String("address", address))
	}

	return result.Value
}

// usable rejects lookups that returned a pair without a project name.
func usable(t domain.TokenResolution) bool {
	return t.ProjectName != ""
}
