package config

import "time"

// RateLimitConfig controls the submission rate limiter.
type RateLimitConfig struct {
	// MaxRequests is the ceiling per window (RATE_LIMIT_MAX_RPM).
	MaxRequests int `yaml:"max_requests"`

	// Window is the fixed window size (RATE_LIMIT_WINDOW_S).
	Window time.Duration `yaml:"window"`
}

// DefaultRateLimitConfig returns the built-in rate limit defaults.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		MaxRequests: 60,
		Window:      time.Minute,
	}
}
