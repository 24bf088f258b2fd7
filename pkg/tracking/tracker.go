// Package tracking implements the request status state machine, progress
// computation, completion estimates, and the read-only history projection.
package tracking

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
)

// Tracker owns all writes to ProcessTracking rows.
type Tracker struct {
	client   *ent.Client
	recorder *audit.Recorder
	stages   *config.StagesConfig
	logger   *slog.Logger
}

// NewTracker creates a status tracker.
func NewTracker(client *ent.Client, recorder *audit.Recorder, stages *config.StagesConfig) *Tracker {
	return &Tracker{
		client:   client,
		recorder: recorder,
		stages:   stages,
		logger:   slog.With("component", "tracker"),
	}
}

// Transition moves a request to a new status. Illegal edges are rejected
// with ErrInvalidTransition and the rejection is itself audited; the stored
// status is left unchanged. Legal transitions update stage timestamps and
// progress atomically with their audit event.
func (t *Tracker) Transition(ctx context.Context, requestID string, to processtracking.Status, errDetails string) error {
	tx, err := t.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.ProcessTracking.Query().
		Where(processtracking.RequestID(requestID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracking for request %s: %w", requestID, err)
	}

	from := tr.Status
	if err := validateTransition(from, to); err != nil {
		_ = tx.Rollback()
		// The rejection is audited outside the aborted transaction.
		if auditErr := t.recorder.Record(ctx, audit.Entry{
			EventType:  audit.EventProcessError,
			EntityType: "process_tracking",
			EntityID:   tr.ID,
			RequestID:  requestID,
			NewValues: map[string]any{
				"rejected_transition": fmt.Sprintf("%s -> %s", from, to),
				"reason":              "invalid_transition",
			},
		}); auditErr != nil {
			t.logger.Error("Failed to audit rejected transition", "request_id", requestID, "error", auditErr)
		}
		return err
	}

	now := time.Now().UTC()
	update := tr.Update().SetStatus(to)

	switch to {
	case processtracking.StatusCollecting:
		update.SetCollectingStartedAt(now)
	case processtracking.StatusVerifying:
		update.SetCollectingCompletedAt(now).SetVerifyingStartedAt(now)
	case processtracking.StatusMerging:
		update.SetVerifyingCompletedAt(now).SetMergingStartedAt(now)
	case processtracking.StatusSummarizing:
		update.SetMergingCompletedAt(now).SetSummarizingStartedAt(now)
	case processtracking.StatusCompleted:
		update.SetSummarizingCompletedAt(now)
	}

	if p := Progress(to, tr.CategoriesTotal, tr.CategoriesCompleted); p >= 0 && p > tr.ProgressPercent {
		update.SetProgressPercent(p)
	}
	if errDetails != "" {
		update.SetErrorDetails(errDetails)
	}

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update tracking for request %s: %w", requestID, err)
	}

	if IsTerminal(to) {
		if _, err := tx.AnalysisRequest.UpdateOneID(requestID).SetCompletedAt(now).Save(ctx); err != nil {
			return fmt.Errorf("failed to stamp request completion: %w", err)
		}
	}

	req, err := tx.AnalysisRequest.Query().
		Where(analysisrequest.ID(requestID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load request %s: %w", requestID, err)
	}

	if err := t.recorder.RecordTx(ctx, tx, audit.Entry{
		EventType:     audit.EventUpdate,
		EntityType:    "process_tracking",
		EntityID:      tr.ID,
		RequestID:     requestID,
		CorrelationID: req.CorrelationID,
		OldValues:     map[string]any{"status": from, "progress_percent": tr.ProgressPercent},
		NewValues:     map[string]any{"status": to},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}

	t.logger.Info("Status transition", "request_id", requestID, "from", from, "to", to)
	return nil
}

// SetCategoriesTotal records how many categories are scheduled for a request.
// Called once by the scheduler before dispatch.
func (t *Tracker) SetCategoriesTotal(ctx context.Context, requestID string, total int) error {
	tx, err := t.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.ProcessTracking.Query().
		Where(processtracking.RequestID(requestID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracking for request %s: %w", requestID, err)
	}

	if _, err := tr.Update().SetCategoriesTotal(total).Save(ctx); err != nil {
		return fmt.Errorf("failed to set categories total: %w", err)
	}

	if err := t.recorder.RecordTx(ctx, tx, audit.Entry{
		EventType:  audit.EventUpdate,
		EntityType: "process_tracking",
		EntityID:   tr.ID,
		RequestID:  requestID,
		OldValues:  map[string]any{"categories_total": tr.CategoriesTotal},
		NewValues:  map[string]any{"categories_total": total},
	}); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateCategoryProgress records a completed category and recomputes the
// progress percentage. Progress only moves forward.
func (t *Tracker) UpdateCategoryProgress(ctx context.Context, requestID string, completed int) error {
	tx, err := t.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.ProcessTracking.Query().
		Where(processtracking.RequestID(requestID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracking for request %s: %w", requestID, err)
	}

	update := tr.Update().SetCategoriesCompleted(completed)
	if p := Progress(tr.Status, tr.CategoriesTotal, completed); p >= 0 && p > tr.ProgressPercent {
		update.SetProgressPercent(p)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update category progress: %w", err)
	}

	if err := t.recorder.RecordTx(ctx, tx, audit.Entry{
		EventType:  audit.EventUpdate,
		EntityType: "process_tracking",
		EntityID:   tr.ID,
		RequestID:  requestID,
		OldValues: map[string]any{
			"categories_completed": tr.CategoriesCompleted,
			"progress_percent":     tr.ProgressPercent,
		},
		NewValues: map[string]any{"categories_completed": completed},
	}); err != nil {
		return err
	}
	return tx.Commit()
}

// EstimateCompletion computes the expected completion time from the current
// status, stored mean stage durations, and the submission's drug count.
func (t *Tracker) EstimateCompletion(status processtracking.Status, drugCount int) time.Time {
	order := []processtracking.Status{
		processtracking.StatusCollecting,
		processtracking.StatusVerifying,
		processtracking.StatusMerging,
		processtracking.StatusSummarizing,
	}

	remaining := 0.0
	include := status == processtracking.StatusSubmitted
	for _, s := range order {
		if s == status {
			include = true
		}
		if include {
			remaining += t.stages.MeanDurations[string(s)]
		}
	}

	if drugCount < 1 {
		drugCount = 1
	}
	multiplier := (1 + 0.5*float64(drugCount-1)) * 1.2
	return time.Now().UTC().Add(time.Duration(remaining * multiplier * float64(time.Minute)))
}

// HistoryEntry is one stage-entry event in the history projection.
type HistoryEntry struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMS *int64    `json:"duration_ms,omitempty"`
}

// ProjectHistory reconstructs the chronological stage-entry list from the
// timestamps stored on a tracking row. Read-only; durations are derived where
// both ends of a stage exist.
func ProjectHistory(tr *ent.ProcessTracking) []HistoryEntry {
	entries := []HistoryEntry{{
		Status:    string(processtracking.StatusSubmitted),
		Timestamp: tr.CreatedAt,
	}}

	stage := func(status processtracking.Status, started, completed *time.Time) {
		if started == nil {
			return
		}
		e := HistoryEntry{Status: string(status), Timestamp: *started}
		if completed != nil {
			ms := completed.Sub(*started).Milliseconds()
			e.DurationMS = &ms
		}
		entries = append(entries, e)
	}

	stage(processtracking.StatusCollecting, tr.CollectingStartedAt, tr.CollectingCompletedAt)
	stage(processtracking.StatusVerifying, tr.VerifyingStartedAt, tr.VerifyingCompletedAt)
	stage(processtracking.StatusMerging, tr.MergingStartedAt, tr.MergingCompletedAt)
	stage(processtracking.StatusSummarizing, tr.SummarizingStartedAt, tr.SummarizingCompletedAt)

	if IsTerminal(tr.Status) {
		entries = append(entries, HistoryEntry{
			Status:    string(tr.Status),
			Timestamp: tr.UpdatedAt,
		})
	}
	return entries
}
