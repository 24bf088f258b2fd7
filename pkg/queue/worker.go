package queue

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// activeStatuses are the non-terminal processing states counted against the
// global concurrency cap.
var activeStatuses = []processtracking.Status{
	processtracking.StatusCollecting,
	processtracking.StatusVerifying,
	processtracking.StatusMerging,
	processtracking.StatusSummarizing,
}

// priorityRank orders submissions for claiming. Lower ranks claim first.
var priorityRank = map[analysisrequest.Priority]int{
	analysisrequest.PriorityUrgent: 0,
	analysisrequest.PriorityHigh:   1,
	analysisrequest.PriorityNormal: 2,
	analysisrequest.PriorityLow:    3,
}

// worker polls for submitted requests and processes claims one at a time.
type worker struct {
	id       int
	client   *ent.Client
	cfg      *config.QueueConfig
	executor *RequestExecutor
	podID    string
	logger   *slog.Logger
}

// run polls until pollCtx is cancelled. Claimed requests are processed under
// runCtx so a graceful shutdown lets in-flight work finish.
func (w *worker) run(pollCtx, runCtx context.Context) {
	w.logger.Info("Worker started")
	for {
		select {
		case <-pollCtx.Done():
			w.logger.Info("Worker stopped")
			return
		case <-time.After(w.jitteredInterval()):
		}

		req, err := w.claim(pollCtx)
		if err != nil {
			if pollCtx.Err() == nil {
				w.logger.Error("Claim failed", "error", err)
			}
			continue
		}
		if req == nil {
			continue
		}

		if err := w.executor.Process(runCtx, req.ID); err != nil {
			w.logger.Error("Request processing failed", "request_id", req.ID, "error", err)
		}
	}
}

func (w *worker) jitteredInterval() time.Duration {
	jitter := time.Duration(0)
	if w.cfg.PollIntervalJitter > 0 {
		jitter = time.Duration(rand.Int63n(int64(w.cfg.PollIntervalJitter)))
	}
	return w.cfg.PollInterval + jitter
}

// claim atomically takes ownership of the oldest claimable submitted request,
// respecting the global concurrency cap. SKIP LOCKED keeps concurrent
// replicas from contending on the same rows.
func (w *worker) claim(ctx context.Context) (*ent.AnalysisRequest, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	active, err := tx.ProcessTracking.Query().
		Where(processtracking.StatusIn(activeStatuses...)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active requests: %w", err)
	}
	if active >= w.cfg.MaxConcurrentRequests {
		return nil, nil
	}

	candidates, err := tx.AnalysisRequest.Query().
		Where(
			analysisrequest.PodIDIsNil(),
			analysisrequest.DeletedAtIsNil(),
			analysisrequest.HasTrackingWith(
				processtracking.StatusEQ(processtracking.StatusSubmitted),
			),
		).
		Order(ent.Asc(analysisrequest.FieldCreatedAt)).
		Limit(10).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query claimable requests: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if priorityRank[c.Priority] < priorityRank[best.Priority] {
			best = c
		}
	}

	claimed, err := tx.AnalysisRequest.UpdateOne(best).
		SetPodID(w.podID).
		SetLastInteractionAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim request %s: %w", best.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	w.logger.Info("Claimed request", "request_id", claimed.ID, "priority", claimed.Priority)
	return claimed, nil
}
