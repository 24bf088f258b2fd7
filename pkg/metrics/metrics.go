// Package metrics exposes Prometheus instrumentation for the analysis engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsSubmitted counts accepted analysis requests.
	RequestsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_requests_submitted_total",
		Help: "Number of analysis requests accepted for processing.",
	})

	// RequestsCompleted counts requests by terminal status.
	RequestsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_requests_completed_total",
		Help: "Number of analysis requests reaching a terminal status.",
	}, []string{"status"})

	// RequestDuration observes end-to-end request processing time.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_request_duration_seconds",
		Help:    "End-to-end processing time per request.",
		Buckets: prometheus.ExponentialBuckets(30, 2, 10),
	})

	// CategoryDuration observes per-category pipeline time by outcome.
	CategoryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_category_duration_seconds",
		Help:    "Four-stage pipeline time per category.",
		Buckets: prometheus.ExponentialBuckets(5, 2, 10),
	}, []string{"category", "status"})

	// ProviderCalls counts upstream provider calls by provider and outcome.
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_calls_total",
		Help: "Upstream provider calls by provider and outcome.",
	}, []string{"provider", "outcome"})

	// ProviderCost accumulates estimated provider spend in USD.
	ProviderCost = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_cost_usd_total",
		Help: "Estimated cumulative provider cost in USD.",
	}, []string{"provider"})

	// ActiveRequests tracks requests currently being processed by this pod.
	ActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "analysis_active_requests",
		Help: "Requests currently claimed by this pod.",
	})

	// OrphansRecovered counts orphaned requests re-queued or failed.
	OrphansRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_orphans_recovered_total",
		Help: "Orphaned requests handled by the recovery loop.",
	}, []string{"action"})

	// WebhookDeliveries counts callback deliveries by outcome.
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "Webhook delivery attempts by final outcome.",
	}, []string{"outcome"})

	// RetentionActions counts rows archived or deleted by the retention loop.
	RetentionActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retention_actions_total",
		Help: "Rows archived or deleted by the retention manager.",
	}, []string{"entity", "action"})

	// RateLimited counts denied rate-limit checks by key.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_limited_total",
		Help: "Denied rate-limit checks by key.",
	}, []string{"key"})
)
