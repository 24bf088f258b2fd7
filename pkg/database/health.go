package database

import (
	"context"
	"time"

	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
)

// PoolStats is a snapshot of database/sql connection pool pressure.
type PoolStats struct {
	Open         int   `json:"open"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"wait_count"`
	WaitDuration int64 `json:"wait_duration_ms"`
	MaxOpen      int   `json:"max_open"`
}

// HealthStatus reports database reachability, pool pressure, and the request
// backlog visible through the tracking table.
type HealthStatus struct {
	Status         string    `json:"status"`
	ResponseTime   int64     `json:"response_time_ms"`
	Pool           PoolStats `json:"pool"`
	QueueDepth     int       `json:"queue_depth"`
	ActiveRequests int       `json:"active_requests"`
}

// Health pings the database and gathers pool plus workload statistics. The
// backlog counts come from the same connection pool the workers use, so a
// saturated pool surfaces here before requests start failing.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	queued, err := c.ProcessTracking.Query().
		Where(processtracking.StatusEQ(processtracking.StatusSubmitted)).
		Count(ctx)
	if err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	active, err := c.ProcessTracking.Query().
		Where(processtracking.StatusIn(
			processtracking.StatusCollecting,
			processtracking.StatusVerifying,
			processtracking.StatusMerging,
			processtracking.StatusSummarizing,
		)).
		Count(ctx)
	if err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:         stats.OpenConnections,
			InUse:        stats.InUse,
			Idle:         stats.Idle,
			WaitCount:    stats.WaitCount,
			WaitDuration: stats.WaitDuration.Milliseconds(),
			MaxOpen:      stats.MaxOpenConnections,
		},
		QueueDepth:     queued,
		ActiveRequests: active,
	}, nil
}
