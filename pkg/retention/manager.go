// Package retention enforces the data retention policy table: archival of
// aged entities, deletion of expired raw provider data and dead failed
// requests, and the audit-preservation invariants around both.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/metrics"
)

// failedRequestRetryFloor is the retry count above which an aged failed
// request is hard-deleted instead of archived.
const failedRequestRetryFloor = 3

// Report counts what one retention run did (or would do, in dry-run mode).
type Report struct {
	DryRun                   bool      `json:"dry_run"`
	ArchivedRequests         int       `json:"archived_requests"`
	ArchivedTracking         int       `json:"archived_tracking"`
	ArchivedCategoryResults  int       `json:"archived_category_results"`
	ArchivedConflicts        int       `json:"archived_conflicts"`
	ArchivedAuditEvents      int       `json:"archived_audit_events"`
	DeletedProviderResponses int       `json:"deleted_provider_responses"`
	DeletedFailedRequests    int       `json:"deleted_failed_requests"`
	RefusedNoAudit           int       `json:"refused_no_audit"`
	RanAt                    time.Time `json:"ran_at"`
}

// Manager runs the retention loop.
type Manager struct {
	client   *ent.Client
	cfg      *config.RetentionConfig
	recorder *audit.Recorder
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
}

// NewManager creates a retention manager.
func NewManager(client *ent.Client, cfg *config.RetentionConfig, recorder *audit.Recorder) *Manager {
	return &Manager{
		client:   client,
		cfg:      cfg,
		recorder: recorder,
		logger:   slog.With("component", "retention"),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the retention loop on the configured interval until Stop.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.cfg.Interval)
		defer ticker.Stop()
		m.logger.Info("Retention manager started", "interval", m.cfg.Interval)
		for {
			select {
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := m.RunOnce(ctx, false); err != nil {
					m.logger.Error("Retention run failed", "error", err)
				}
			}
		}
	}()
}

// Stop terminates the loop and waits for it to exit.
func (m *Manager) Stop() {
	close(m.stop)
	<-m.done
}

// RunOnce applies every retention policy once. With dryRun, the same rows are
// counted but nothing is mutated. After a mutating run the manager verifies
// the global audit-event count did not decrease.
func (m *Manager) RunOnce(ctx context.Context, dryRun bool) (*Report, error) {
	now := time.Now().UTC()
	report := &Report{DryRun: dryRun, RanAt: now}

	auditBefore, err := m.client.AuditEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit events: %w", err)
	}

	if err := m.archiveRequests(ctx, now, dryRun, report); err != nil {
		return report, err
	}
	if err := m.archiveCategoryResults(ctx, now, dryRun, report); err != nil {
		return report, err
	}
	if err := m.archiveConflicts(ctx, now, dryRun, report); err != nil {
		return report, err
	}
	if err := m.archiveAuditEvents(ctx, now, dryRun, report); err != nil {
		return report, err
	}
	if err := m.deleteExpiredResponses(ctx, now, dryRun, report); err != nil {
		return report, err
	}
	if err := m.deleteDeadFailedRequests(ctx, now, dryRun, report); err != nil {
		return report, err
	}

	if !dryRun {
		auditAfter, err := m.client.AuditEvent.Query().Count(ctx)
		if err != nil {
			return report, fmt.Errorf("failed to recount audit events: %w", err)
		}
		if auditAfter < auditBefore {
			return report, fmt.Errorf("audit event count decreased during retention run: %d -> %d", auditBefore, auditAfter)
		}
	}

	m.logger.Info("Retention run finished",
		"dry_run", dryRun,
		"archived_requests", report.ArchivedRequests,
		"archived_audit_events", report.ArchivedAuditEvents,
		"deleted_provider_responses", report.DeletedProviderResponses,
		"deleted_failed_requests", report.DeletedFailedRequests,
		"refused_no_audit", report.RefusedNoAudit)
	return report, nil
}

// archiveRequests soft-deletes terminal requests older than the request keep,
// together with their tracking rows. Archival is refused for entities with no
// audit trail.
func (m *Manager) archiveRequests(ctx context.Context, now time.Time, dryRun bool, report *Report) error {
	cutoff := now.Add(-m.cfg.RequestKeep)
	rows, err := m.client.AnalysisRequest.Query().
		Where(
			analysisrequest.DeletedAtIsNil(),
			analysisrequest.CompletedAtNotNil(),
			analysisrequest.CompletedAtLT(cutoff),
			analysisrequest.HasTrackingWith(processtracking.StatusIn(
				processtracking.StatusCompleted,
				processtracking.StatusFailed,
				processtracking.StatusCancelled,
			)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query archivable requests: %w", err)
	}

	for _, req := range rows {
		audited, err := m.hasAudit(ctx, req.ID)
		if err != nil {
			return err
		}
		if !audited {
			report.RefusedNoAudit++
			m.logger.Warn("Refusing to archive request with no audit trail", "request_id", req.ID)
			continue
		}
		report.ArchivedRequests++
		if dryRun {
			continue
		}
		if err := m.client.AnalysisRequest.UpdateOne(req).
			SetDeletedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to archive request %s: %w", req.ID, err)
		}
		n, err := m.client.ProcessTracking.Update().
			Where(
				processtracking.RequestID(req.ID),
				processtracking.DeletedAtIsNil(),
			).
			SetDeletedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to archive tracking for request %s: %w", req.ID, err)
		}
		report.ArchivedTracking += n
		if err := m.recordAction(ctx, "analysis_request", req.ID, req.ID, "archive"); err != nil {
			return err
		}
		metrics.RetentionActions.WithLabelValues("analysis_request", "archive").Inc()
	}
	return nil
}

// archiveCategoryResults marks category results past their keep.
func (m *Manager) archiveCategoryResults(ctx context.Context, now time.Time, dryRun bool, report *Report) error {
	cutoff := now.Add(-m.cfg.CategoryResultKeep)
	rows, err := m.client.CategoryResult.Query().
		Where(
			categoryresult.DeletedAtIsNil(),
			categoryresult.CompletedAtNotNil(),
			categoryresult.CompletedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query archivable category results: %w", err)
	}

	for _, cr := range rows {
		audited, err := m.hasAuditForEntity(ctx, "category_result", cr.ID)
		if err != nil {
			return err
		}
		if !audited {
			report.RefusedNoAudit++
			continue
		}
		report.ArchivedCategoryResults++
		if dryRun {
			continue
		}
		if err := m.client.CategoryResult.UpdateOne(cr).
			SetDeletedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to archive category result %s: %w", cr.ID, err)
		}
		if err := m.recordAction(ctx, "category_result", cr.ID, cr.RequestID, "archive"); err != nil {
			return err
		}
		metrics.RetentionActions.WithLabelValues("category_result", "archive").Inc()
	}
	return nil
}

// archiveConflicts marks source conflicts past their keep.
func (m *Manager) archiveConflicts(ctx context.Context, now time.Time, dryRun bool, report *Report) error {
	cutoff := now.Add(-m.cfg.ConflictKeep)
	rows, err := m.client.SourceConflict.Query().
		Where(
			sourceconflict.DeletedAtIsNil(),
			sourceconflict.ResolvedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query archivable conflicts: %w", err)
	}

	for _, sc := range rows {
		audited, err := m.hasAuditForEntity(ctx, "category_result", sc.CategoryResultID)
		if err != nil {
			return err
		}
		if !audited {
			report.RefusedNoAudit++
			continue
		}
		report.ArchivedConflicts++
		if dryRun {
			continue
		}
		if err := m.client.SourceConflict.UpdateOne(sc).
			SetDeletedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to archive conflict %s: %w", sc.ID, err)
		}
		metrics.RetentionActions.WithLabelValues("source_conflict", "archive").Inc()
	}
	return nil
}

// archiveAuditEvents sets the archive marker on audit events past the audit
// keep. This is the single permitted mutation of audit rows; they are never
// hard-deleted.
func (m *Manager) archiveAuditEvents(ctx context.Context, now time.Time, dryRun bool, report *Report) error {
	cutoff := now.Add(-m.cfg.AuditKeep())
	query := m.client.AuditEvent.Query().
		Where(
			auditevent.DeletedAtIsNil(),
			auditevent.TimestampLT(cutoff),
		)

	if dryRun {
		n, err := query.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count archivable audit events: %w", err)
		}
		report.ArchivedAuditEvents = n
		return nil
	}

	n, err := m.client.AuditEvent.Update().
		Where(
			auditevent.DeletedAtIsNil(),
			auditevent.TimestampLT(cutoff),
		).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive audit events: %w", err)
	}
	report.ArchivedAuditEvents = n
	if n > 0 {
		metrics.RetentionActions.WithLabelValues("audit_event", "archive").Add(float64(n))
	}
	return nil
}

// deleteExpiredResponses removes raw provider responses past their stored
// retention_expires_at. Their digests survive in stage events.
func (m *Manager) deleteExpiredResponses(ctx context.Context, now time.Time, dryRun bool, report *Report) error {
	query := m.client.ProviderResponse.Query().
		Where(providerresponse.RetentionExpiresAtLT(now))

	if dryRun {
		n, err := query.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count expired provider responses: %w", err)
		}
		report.DeletedProviderResponses = n
		return nil
	}

	n, err := m.client.ProviderResponse.Delete().
		Where(providerresponse.RetentionExpiresAtLT(now)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete expired provider responses: %w", err)
	}
	report.DeletedProviderResponses = n
	if n > 0 {
		metrics.RetentionActions.WithLabelValues("provider_response", "delete").Add(float64(n))
	}
	return nil
}

// deleteDeadFailedRequests hard-deletes failed requests that exhausted their
// retries and aged past the failed-request keep. Children cascade. Deletion
// is refused for requests with no audit trail.
func (m *Manager) deleteDeadFailedRequests(ctx context.Context, now time.Time, dryRun bool, report *Report) error {
	cutoff := now.Add(-m.cfg.FailedRequestKeep)
	rows, err := m.client.AnalysisRequest.Query().
		Where(
			analysisrequest.RetryCountGT(failedRequestRetryFloor),
			analysisrequest.UpdatedAtLT(cutoff),
			analysisrequest.HasTrackingWith(
				processtracking.StatusEQ(processtracking.StatusFailed),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query dead failed requests: %w", err)
	}

	for _, req := range rows {
		audited, err := m.hasAudit(ctx, req.ID)
		if err != nil {
			return err
		}
		if !audited {
			report.RefusedNoAudit++
			m.logger.Warn("Refusing to delete request with no audit trail", "request_id", req.ID)
			continue
		}
		report.DeletedFailedRequests++
		if dryRun {
			continue
		}
		// Audit the deletion before the row disappears.
		if err := m.recordAction(ctx, "analysis_request", req.ID, req.ID, "delete"); err != nil {
			return err
		}
		if err := m.client.AnalysisRequest.DeleteOne(req).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete request %s: %w", req.ID, err)
		}
		metrics.RetentionActions.WithLabelValues("analysis_request", "delete").Inc()
	}
	return nil
}

func (m *Manager) hasAudit(ctx context.Context, requestID string) (bool, error) {
	exists, err := m.client.AuditEvent.Query().
		Where(auditevent.RequestID(requestID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check audit trail for %s: %w", requestID, err)
	}
	return exists, nil
}

func (m *Manager) hasAuditForEntity(ctx context.Context, entityType, entityID string) (bool, error) {
	exists, err := m.client.AuditEvent.Query().
		Where(
			auditevent.EntityType(entityType),
			auditevent.EntityID(entityID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check audit trail for %s %s: %w", entityType, entityID, err)
	}
	return exists, nil
}

func (m *Manager) recordAction(ctx context.Context, entityType, entityID, requestID, action string) error {
	return m.recorder.Record(ctx, audit.Entry{
		EventType:  audit.EventDelete,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  requestID,
		NewValues:  map[string]any{"retention_action": action},
	})
}
