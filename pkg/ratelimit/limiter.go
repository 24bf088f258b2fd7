// Package ratelimit provides fixed-window rate limiting with a shared
// Postgres backend and a per-process in-memory fallback.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one check_and_consume call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is the single interface both backends implement. Allow atomically
// checks and consumes one unit for the key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
