package config

import "time"

// QueueConfig contains queue and worker pool configuration. These values
// control how analysis requests are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRequests is the global limit of concurrent requests being
	// processed across ALL replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`

	// P1MaxParallel bounds Phase-1 category fanout within one request.
	// Effective bound is min(category count, P1MaxParallel).
	P1MaxParallel int `yaml:"p1_max_parallel"`

	// PollInterval is the base interval for checking submitted requests.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RequestTimeout is the maximum wall time for one request end-to-end.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active requests
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval updates last_interaction_at for orphan detection.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned requests.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a request can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxRequestRetries bounds how many times an orphaned request is
	// re-queued before failing terminally.
	MaxRequestRetries int `yaml:"max_request_retries"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentRequests:   5,
		P1MaxParallel:           8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RequestTimeout:          45 * time.Minute,
		GracefulShutdownTimeout: 45 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MaxRequestRetries:       1,
	}
}
