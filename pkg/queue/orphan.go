package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/metrics"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
)

// OrphanRecoverer re-queues requests whose owning replica stopped
// heartbeating, and fails those that exhausted their retry budget.
type OrphanRecoverer struct {
	client   *ent.Client
	cfg      *config.QueueConfig
	tracker  *tracking.Tracker
	recorder *audit.Recorder
	logger   *slog.Logger
}

// NewOrphanRecoverer creates an orphan recovery loop.
func NewOrphanRecoverer(client *ent.Client, cfg *config.QueueConfig, tracker *tracking.Tracker, recorder *audit.Recorder) *OrphanRecoverer {
	return &OrphanRecoverer{
		client:   client,
		cfg:      cfg,
		tracker:  tracker,
		recorder: recorder,
		logger:   slog.With("component", "orphan_recoverer"),
	}
}

// Run sweeps on an interval until the context is cancelled.
func (r *OrphanRecoverer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.OrphanDetectionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RecoverOnce(ctx); err != nil {
				r.logger.Error("Orphan sweep failed", "error", err)
			}
		}
	}
}

// RecoverOnce finds claimed, non-terminal requests with a stale heartbeat and
// either re-queues them or fails them when the retry budget is spent. Claims
// that died before the first transition are released without consuming a
// retry, since no work started.
func (r *OrphanRecoverer) RecoverOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-r.cfg.OrphanThreshold)

	orphans, err := r.client.AnalysisRequest.Query().
		Where(
			analysisrequest.PodIDNotNil(),
			analysisrequest.LastInteractionAtLT(cutoff),
			analysisrequest.HasTrackingWith(
				processtracking.StatusIn(activeStatuses...),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned requests: %w", err)
	}

	for _, req := range orphans {
		if req.RetryCount >= r.cfg.MaxRequestRetries {
			if err := r.fail(ctx, req); err != nil {
				return err
			}
			continue
		}
		if err := r.requeue(ctx, req); err != nil {
			return err
		}
	}

	// A pod can die between claiming a request and the submitted→collecting
	// transition. Such rows still say submitted but carry a pod_id, so the
	// claim query (pod_id IS NULL) would never pick them up again.
	stale, err := r.client.AnalysisRequest.Query().
		Where(
			analysisrequest.PodIDNotNil(),
			analysisrequest.LastInteractionAtLT(cutoff),
			analysisrequest.HasTrackingWith(
				processtracking.StatusEQ(processtracking.StatusSubmitted),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale claims: %w", err)
	}
	for _, req := range stale {
		if err := r.release(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// release clears a dead pod's claim on a request that never left submitted.
// The retry count is untouched; the next poll can claim it normally.
func (r *OrphanRecoverer) release(ctx context.Context, req *ent.AnalysisRequest) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin release transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.AnalysisRequest.UpdateOne(req).
		ClearPodID().
		ClearLastInteractionAt().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to release stale claim on request %s: %w", req.ID, err)
	}

	if err := r.recorder.RecordTx(ctx, tx, audit.Entry{
		EventType:     audit.EventProcessError,
		EntityType:    "analysis_request",
		EntityID:      req.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues: map[string]any{
			"action":    "stale_claim_released",
			"stale_pod": deref(req.PodID),
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit release: %w", err)
	}

	metrics.OrphansRecovered.WithLabelValues("released").Inc()
	r.logger.Warn("Stale claim released", "request_id", req.ID, "stale_pod", deref(req.PodID))
	return nil
}

// requeue resets an orphaned request to submitted for another worker to
// claim. This deliberately bypasses the transition table: re-queueing is a
// system recovery action, not a caller-visible state change, and it is
// audited as such.
func (r *OrphanRecoverer) requeue(ctx context.Context, req *ent.AnalysisRequest) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin requeue transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.AnalysisRequest.UpdateOne(req).
		AddRetryCount(1).
		ClearPodID().
		ClearLastInteractionAt().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to release orphaned request %s: %w", req.ID, err)
	}

	if _, err := tx.ProcessTracking.Update().
		Where(processtracking.RequestID(req.ID)).
		SetStatus(processtracking.StatusSubmitted).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to reset tracking for request %s: %w", req.ID, err)
	}

	if err := r.recorder.RecordTx(ctx, tx, audit.Entry{
		EventType:     audit.EventProcessError,
		EntityType:    "analysis_request",
		EntityID:      req.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues: map[string]any{
			"action":      "orphan_requeued",
			"retry_count": req.RetryCount + 1,
			"stale_pod":   deref(req.PodID),
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit requeue: %w", err)
	}

	metrics.OrphansRecovered.WithLabelValues("requeued").Inc()
	r.logger.Warn("Orphaned request re-queued",
		"request_id", req.ID, "retry_count", req.RetryCount+1)
	return nil
}

func (r *OrphanRecoverer) fail(ctx context.Context, req *ent.AnalysisRequest) error {
	details := fmt.Sprintf("orphaned after %d retries", req.RetryCount)
	if err := r.tracker.Transition(ctx, req.ID, processtracking.StatusFailed, details); err != nil {
		return fmt.Errorf("failed to fail orphaned request %s: %w", req.ID, err)
	}
	metrics.OrphansRecovered.WithLabelValues("failed").Inc()
	r.logger.Error("Orphaned request failed terminally", "request_id", req.ID)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
