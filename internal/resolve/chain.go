// Package resolve implements the ordered-fallback resolution chain used for
// token metadata and brand-color resolution: try source A, else source B,
// else a default tagged as fallback.
package resolve

import (
	"context"

	"go.uber.org/zap"

	"token-promo-lab/internal/retry"
)

// Strategy is one candidate source in a resolution chain.
type Strategy[T any] struct {
	// Name labels the strategy in logs and retry errors.
	Name string
	// Run attempts to produce a value. Retried per the chain policy.
	Run func(ctx context.Context) (T, error)
	// Accept decides whether the returned value is usable. A nil Accept
	// accepts everything.
	Accept func(T) bool
	// Skip disables the strategy for this job (e.g. no ticker to look up).
	Skip bool
}

// Result is the outcome of a chain resolution.
type Result[T any] struct {
	Value    T
	Strategy string // name of the strategy that produced the value
	Fallback bool   // true when every strategy failed and the default was used
}

// Chain tries each strategy in order through the retry executor and stops at
// the first acceptable value. If all strategies fail, the fallback value is
// returned tagged with Fallback=true. Chain itself never fails.
func Chain[T any](ctx context.Context, log *zap.Logger, policy retry.Policy, fallback T, strategies ...Strategy[T]) Result[T] {
	for _, s := range strategies {
		if s.Skip {
			continue
		}

		p := policy
		p.Label = s.Name

		value, err := retry.DoValue(ctx, p, s.Run)
		if err != nil {
			log.Debug("resolution strategy failed",
				zap.String("strategy", s.Name),
				zap.Error(err))
			continue
		}
		if s.Accept != nil && !s.Accept(value) {
			log.Debug("resolution strategy rejected value",
				zap.String("strategy", s.Name))
			continue
		}

		return Result[T]{Value: value, Strategy: s.Name}
	}

	log.Warn("all resolution strategies exhausted, using fallback")
	return Result[T]{Value: fallback, Strategy: "fallback", Fallback: true}
}
