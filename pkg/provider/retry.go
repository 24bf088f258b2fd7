package provider

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// retryAfterCap bounds how long a rate-limit hint can stall a call. Longer
// hints defer to the stage deadline instead.
const retryAfterCap = 30 * time.Second

// FetchWithRetry runs p.Fetch with exponential backoff on transient failures.
// Fatal kinds (auth_error, bad_request, decode_error) stop immediately.
// Rate-limit hints are honored up to retryAfterCap before the next attempt.
func FetchWithRetry(ctx context.Context, p Provider, cfg *config.ProviderConfig, q Query) (*Response, error) {
	var resp *Response

	operation := func() error {
		r, err := p.Fetch(ctx, q)
		if err != nil {
			var pe *Error
			if errors.As(err, &pe) {
				if !pe.IsTransient() {
					return backoff.Permanent(err)
				}
				if pe.RetryAfter > 0 {
					wait := pe.RetryAfter
					if wait > retryAfterCap {
						wait = retryAfterCap
					}
					select {
					case <-time.After(wait):
					case <-ctx.Done():
						return backoff.Permanent(ctx.Err())
					}
				}
				return err
			}
			return err
		}
		resp = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 20 * time.Second
	bo.MaxElapsedTime = 0 // bounded by retry count and ctx, not wall time

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxRetries)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return resp, nil
}
