package ratelimit

import (
	"context"
	"log/slog"
)

// FallbackLimiter prefers the shared backend and degrades to the in-process
// limiter when the store is unreachable. One interface, two backends; the
// in-memory path is a fallback, not a parallel code path.
type FallbackLimiter struct {
	primary  Limiter
	fallback Limiter
	logger   *slog.Logger
}

// NewFallbackLimiter composes a shared limiter with an in-process fallback.
func NewFallbackLimiter(primary, fallback Limiter) *FallbackLimiter {
	return &FallbackLimiter{
		primary:  primary,
		fallback: fallback,
		logger:   slog.With("component", "ratelimit"),
	}
}

// Allow consults the shared store first; on store error it falls back to the
// local limiter with the same ceilings.
func (l *FallbackLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	d, err := l.primary.Allow(ctx, key)
	if err == nil {
		return d, nil
	}
	l.logger.Warn("Shared rate limit store unavailable, using in-process fallback",
		"key", key, "error", err)
	return l.fallback.Allow(ctx, key)
}
