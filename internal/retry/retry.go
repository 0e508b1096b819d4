// Package retry wraps unreliable remote calls with bounded retries and
// exponential backoff. It is the only place where a remote-call failure
// becomes a retry decision; callers never retry directly.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Default policy values.
const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = 1 * time.Second
)

// Policy configures retry behavior for a labeled operation.
// The delay before retry attempt n is BaseDelay * 2^n. No jitter,
// no circuit breaking: every call pays the same fixed schedule.
type Policy struct {
	MaxRetries int           // retries after the initial attempt
	BaseDelay  time.Duration // doubled per attempt
	Label      string        // tags the final error for diagnostics
}

// withDefaults fills zero fields with default values.
func (p Policy) withDefaults() Policy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.Label == "" {
		p.Label = "operation"
	}
	return p
}

// Do invokes fn, retrying on failure per the policy. On final failure the
// last error is propagated, wrapped with the policy label.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	p = p.withDefaults()

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == p.MaxRetries {
			break
		}

		delay := p.BaseDelay << uint(attempt)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", p.Label, ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s: retries exhausted: %w", p.Label, lastErr)
}

// DoValue is Do for operations that produce a value. On final failure the
// zero value is returned alongside the wrapped last error.
func DoValue[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var value T
	err := Do(ctx, p, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
