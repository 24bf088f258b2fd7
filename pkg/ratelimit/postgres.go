package ratelimit

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// PostgresLimiter enforces shared ceilings across all replicas using an
// atomic upsert on the rate_buckets table.
type PostgresLimiter struct {
	db     *stdsql.DB
	max    int
	window time.Duration
	now    func() time.Time
}

// NewPostgresLimiter creates a Postgres-backed fixed-window limiter.
func NewPostgresLimiter(db *stdsql.DB, max int, window time.Duration) *PostgresLimiter {
	return &PostgresLimiter{db: db, max: max, window: window, now: time.Now}
}

// Allow atomically increments the key's counter for the current window and
// reports whether the ceiling was exceeded. The increment-then-compare order
// makes concurrent callers race-free: only max callers see count <= max.
func (l *PostgresLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now().UTC()
	start := now.Truncate(l.window)
	id := fmt.Sprintf("%s:%d", key, start.Unix())

	var count int
	err := l.db.QueryRowContext(ctx, `
		INSERT INTO rate_buckets (id, "key", window_start, count, updated_at)
		VALUES ($1, $2, $3, 1, $4)
		ON CONFLICT (id)
		DO UPDATE SET count = rate_buckets.count + 1, updated_at = $4
		RETURNING count`,
		id, key, start, now,
	).Scan(&count)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check for %s: %w", key, err)
	}

	if count > l.max {
		return Decision{
			Allowed:    false,
			RetryAfter: start.Add(l.window).Sub(now),
		}, nil
	}
	return Decision{Allowed: true, Remaining: l.max - count}, nil
}
