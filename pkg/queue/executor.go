package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/metrics"
	"github.com/owais-symtera/cognito-sub001/pkg/pipeline"
	"github.com/owais-symtera/cognito-sub001/pkg/report"
	"github.com/owais-symtera/cognito-sub001/pkg/scoring"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
	"github.com/owais-symtera/cognito-sub001/pkg/webhook"
)

// errPhase1Exhausted terminates a request whose Phase-1 fanout produced no
// usable data at all.
var errPhase1Exhausted = errors.New("all phase 1 categories failed; no data collected to analyze")

// RequestExecutor processes one claimed request end to end: Phase-1 fanout,
// suitability scoring, sequential Phase 2, report composition, and webhook
// delivery.
type RequestExecutor struct {
	client     *ent.Client
	cfg        *config.Config
	scheduler  *Scheduler
	tracker    *tracking.Tracker
	dispatcher *webhook.Dispatcher
	logger     *slog.Logger
}

// NewRequestExecutor creates a request executor.
func NewRequestExecutor(client *ent.Client, cfg *config.Config, scheduler *Scheduler, tracker *tracking.Tracker, dispatcher *webhook.Dispatcher) *RequestExecutor {
	return &RequestExecutor{
		client:     client,
		cfg:        cfg,
		scheduler:  scheduler,
		tracker:    tracker,
		dispatcher: dispatcher,
		logger:     slog.With("component", "request_executor"),
	}
}

// Process runs the full analysis for one request. Cancellation observed
// mid-flight leaves the request in its cancelled state with remaining
// categories skipped; any other failure transitions the request to failed.
func (e *RequestExecutor) Process(ctx context.Context, requestID string) error {
	req, err := e.client.AnalysisRequest.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to load request %s: %w", requestID, err)
	}

	log := e.logger.With("request_id", req.ID, "drug", req.DrugName)
	start := time.Now()
	metrics.ActiveRequests.Inc()
	defer metrics.ActiveRequests.Dec()

	reqCtx, cancel := context.WithTimeout(ctx, e.cfg.Queue.RequestTimeout)
	defer cancel()

	stopHeartbeat := e.startHeartbeat(reqCtx, req.ID)
	defer stopHeartbeat()

	err = e.run(reqCtx, req)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, pipeline.ErrCancelled):
		log.Info("Request cancelled", "elapsed", elapsed)
		metrics.RequestsCompleted.WithLabelValues("cancelled").Inc()
		return nil
	case err != nil:
		log.Error("Request failed", "elapsed", elapsed, "error", err)
		if tErr := e.tracker.Transition(ctx, req.ID, processtracking.StatusFailed, err.Error()); tErr != nil {
			log.Error("Failed to record failure", "error", tErr)
		}
		metrics.RequestsCompleted.WithLabelValues("failed").Inc()
		return err
	}

	metrics.RequestsCompleted.WithLabelValues("completed").Inc()
	metrics.RequestDuration.Observe(elapsed.Seconds())
	log.Info("Request completed", "elapsed", elapsed)
	return nil
}

func (e *RequestExecutor) run(ctx context.Context, req *ent.AnalysisRequest) error {
	if err := e.tracker.SetCategoriesTotal(ctx, req.ID, e.scheduler.CategoriesTotal()); err != nil {
		return err
	}
	if err := e.tracker.Transition(ctx, req.ID, processtracking.StatusCollecting, ""); err != nil {
		return err
	}

	phase1, completed, err := e.scheduler.RunPhase1(ctx, req, 0)
	if err != nil {
		return err
	}
	if e.scheduler.Phase1Exhausted(phase1) {
		if err := e.scheduler.recorder.Record(ctx, audit.Entry{
			EventType:     audit.EventProcessError,
			EntityType:    "analysis_request",
			EntityID:      req.ID,
			RequestID:     req.ID,
			CorrelationID: req.CorrelationID,
			NewValues:     map[string]any{"reason": "all_phase1_categories_failed"},
		}); err != nil {
			return err
		}
		return errPhase1Exhausted
	}

	if err := e.ensureNotCancelled(ctx, req); err != nil {
		return err
	}
	if err := e.tracker.Transition(ctx, req.ID, processtracking.StatusVerifying, ""); err != nil {
		return err
	}
	td, tm, completed, err := e.scheduler.RunScoring(ctx, req, phase1, completed)
	if err != nil {
		return err
	}

	if err := e.ensureNotCancelled(ctx, req); err != nil {
		return err
	}
	if err := e.tracker.Transition(ctx, req.ID, processtracking.StatusMerging, ""); err != nil {
		return err
	}
	phase2, _, err := e.scheduler.RunPhase2(ctx, req, phase1, td, tm, completed)
	if err != nil {
		return err
	}

	if err := e.ensureNotCancelled(ctx, req); err != nil {
		return err
	}
	if err := e.tracker.Transition(ctx, req.ID, processtracking.StatusSummarizing, ""); err != nil {
		return err
	}
	doc, err := e.composeAndPersist(ctx, req, phase1, phase2, td, tm)
	if err != nil {
		return err
	}

	if err := e.ensureNotCancelled(ctx, req); err != nil {
		return err
	}
	if err := e.tracker.Transition(ctx, req.ID, processtracking.StatusCompleted, ""); err != nil {
		return err
	}

	e.deliverCallback(ctx, req, doc)
	return nil
}

// ensureNotCancelled aborts remaining work once a cancellation is observed
// between phases.
func (e *RequestExecutor) ensureNotCancelled(ctx context.Context, req *ent.AnalysisRequest) error {
	cancelled, err := e.scheduler.Cancelled(ctx, req.ID)
	if err != nil {
		return err
	}
	if !cancelled {
		return nil
	}
	if err := e.scheduler.AbortRemaining(ctx, req, "cancelled"); err != nil {
		return err
	}
	return pipeline.ErrCancelled
}

// composeAndPersist builds the final report and stores it. An existing
// FinalOutput row is returned unchanged.
func (e *RequestExecutor) composeAndPersist(ctx context.Context, req *ent.AnalysisRequest, phase1, phase2 map[string]*ent.CategoryResult, td, tm scoring.RouteScore) (*ent.FinalOutput, error) {
	if existing, err := e.client.FinalOutput.Query().
		Where(finaloutput.RequestID(req.ID)).
		Only(ctx); err == nil {
		return existing, nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query final output: %w", err)
	}

	in := report.Input{
		RequestID:      req.ID,
		DrugName:       req.DrugName,
		DeliveryMethod: string(req.DeliveryMethod),
		Phase2:         make(map[string]report.CategorySection, len(phase2)),
		TD:             td,
		TM:             tm,
		GeneratedAt:    time.Now().UTC(),
	}

	for _, cat := range e.cfg.CategoryRegistry.Phase(1) {
		section, err := e.section(ctx, cat, phase1[cat.Key])
		if err != nil {
			return nil, err
		}
		in.Phase1 = append(in.Phase1, section)
	}
	for _, cat := range e.cfg.CategoryRegistry.Phase(2) {
		cr, ok := phase2[cat.Key]
		if !ok {
			continue
		}
		section, err := e.section(ctx, cat, cr)
		if err != nil {
			return nil, err
		}
		in.Phase2[cat.Key] = section
	}

	doc := report.Compose(in)

	row, err := e.client.FinalOutput.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetDocument(doc.Body).
		SetTdScore(doc.TDScore).
		SetTmScore(doc.TMScore).
		SetTdVerdict(doc.TDVerdict).
		SetTmVerdict(doc.TMVerdict).
		SetGoDecision(doc.GoDecision).
		SetInvestmentPriority(doc.InvestmentPriority).
		SetRiskLevel(doc.RiskLevel).
		SetVersion(doc.Version).
		SetGeneratedAt(doc.GeneratedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist final output: %w", err)
	}
	return row, nil
}

// section projects one category result plus its merged structured data into
// a report section. Missing or unfinished categories yield an empty section
// so the coverage scorecard can count them as zero.
func (e *RequestExecutor) section(ctx context.Context, cat *config.CategoryConfig, cr *ent.CategoryResult) (report.CategorySection, error) {
	section := report.CategorySection{
		Key:            cat.Key,
		Name:           cat.Name,
		StructuredData: map[string]any{},
	}
	if cr == nil {
		section.Status = string(categoryresult.StatusPending)
		return section, nil
	}
	section.Status = string(cr.Status)
	section.Summary = cr.Summary

	merged, err := e.client.MergedData.Query().
		Where(mergeddata.CategoryResultID(cr.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return section, nil
		}
		return section, fmt.Errorf("failed to load merged data for %s: %w", cat.Key, err)
	}
	if merged.StructuredData != nil {
		section.StructuredData = merged.StructuredData
	}
	return section, nil
}

// deliverCallback posts the final document to the caller's URL. Delivery
// failure is logged and counted but never fails the completed request.
func (e *RequestExecutor) deliverCallback(ctx context.Context, req *ent.AnalysisRequest, doc *ent.FinalOutput) {
	if req.CallbackURL == nil || *req.CallbackURL == "" {
		return
	}
	if err := e.dispatcher.Deliver(ctx, *req.CallbackURL, doc.Document); err != nil {
		e.logger.Warn("Webhook delivery failed", "request_id", req.ID, "error", err)
		metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
		return
	}
	metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
}

// startHeartbeat updates last_interaction_at on an interval so the orphan
// recoverer can tell live work from abandoned work.
func (e *RequestExecutor) startHeartbeat(ctx context.Context, requestID string) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(e.cfg.Queue.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := e.client.AnalysisRequest.UpdateOneID(requestID).
					SetLastInteractionAt(time.Now().UTC()).
					Exec(ctx); err != nil {
					e.logger.Warn("Heartbeat failed", "request_id", requestID, "error", err)
				}
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
