package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the per-process fixed-window fallback. Same ceilings as
// the shared backend, but counts are local to this process.
type MemoryLimiter struct {
	max    int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*memBucket
	now     func() time.Time
}

type memBucket struct {
	windowStart time.Time
	count       int
}

// NewMemoryLimiter creates an in-memory fixed-window limiter.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		window:  window,
		buckets: make(map[string]*memBucket),
		now:     time.Now,
	}
}

// Allow consumes one unit for the key within the current window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	start := now.Truncate(l.window)

	b, ok := l.buckets[key]
	if !ok || b.windowStart.Before(start) {
		b = &memBucket{windowStart: start}
		l.buckets[key] = b
	}

	if b.count >= l.max {
		return Decision{
			Allowed:    false,
			RetryAfter: b.windowStart.Add(l.window).Sub(now),
		}, nil
	}
	b.count++
	return Decision{Allowed: true, Remaining: l.max - b.count}, nil
}
