// Package queue claims submitted analysis requests and drives them through
// the category pipeline to a composed final report.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/metrics"
	"github.com/owais-symtera/cognito-sub001/pkg/pipeline"
	"github.com/owais-symtera/cognito-sub001/pkg/scoring"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
)

// scoringCategoryKey is the Phase-2 category handled by the parameter scorer
// instead of the four-stage pipeline. Config validation guarantees it has the
// lowest Phase-2 display order.
const scoringCategoryKey = "suitability_scoring"

// Scheduler owns category-level concurrency for one request: bounded
// Phase-1 fanout, then strictly sequential Phase 2.
type Scheduler struct {
	client    *ent.Client
	stageExec *pipeline.StageExecutor
	scorer    *scoring.Scorer
	tracker   *tracking.Tracker
	registry  *config.CategoryRegistry
	queueCfg  *config.QueueConfig
	recorder  *audit.Recorder
	logger    *slog.Logger
}

// NewScheduler creates a category scheduler.
func NewScheduler(client *ent.Client, stageExec *pipeline.StageExecutor, scorer *scoring.Scorer, tracker *tracking.Tracker, registry *config.CategoryRegistry, queueCfg *config.QueueConfig, recorder *audit.Recorder) *Scheduler {
	return &Scheduler{
		client:    client,
		stageExec: stageExec,
		scorer:    scorer,
		tracker:   tracker,
		registry:  registry,
		queueCfg:  queueCfg,
		recorder:  recorder,
		logger:    slog.With("component", "scheduler"),
	}
}

// CategoriesTotal is the number of categories this scheduler will dispatch.
func (s *Scheduler) CategoriesTotal() int {
	return len(s.registry.Phase(1)) + len(s.registry.Phase(2))
}

// RunPhase1 dispatches all active Phase-1 categories with bounded
// concurrency. A per-category failure does not cancel siblings; the phase
// completes when every dispatched task terminates. Returns results keyed by
// category key and the updated completed count.
func (s *Scheduler) RunPhase1(ctx context.Context, req *ent.AnalysisRequest, completed int) (map[string]*ent.CategoryResult, int, error) {
	cats := s.registry.Phase(1)
	results := make(map[string]*ent.CategoryResult, len(cats))
	if len(cats) == 0 {
		return results, completed, nil
	}

	bound := min(len(cats), s.queueCfg.P1MaxParallel)
	sem := make(chan struct{}, bound)
	type outcome struct {
		key string
		cr  *ent.CategoryResult
		err error
	}
	outcomes := make(chan outcome, len(cats))

	for _, cat := range cats {
		sem <- struct{}{}
		go func(cat *config.CategoryConfig) {
			defer func() { <-sem }()
			start := time.Now()
			cr, err := s.stageExec.RunCategory(ctx, req, cat, "")
			if cr != nil {
				metrics.CategoryDuration.WithLabelValues(cat.Key, string(cr.Status)).
					Observe(time.Since(start).Seconds())
			}
			outcomes <- outcome{key: cat.Key, cr: cr, err: err}
		}(cat)
	}

	var firstErr error
	for range cats {
		o := <-outcomes
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		results[o.key] = o.cr
		completed++
		if err := s.tracker.UpdateCategoryProgress(ctx, req.ID, completed); err != nil {
			s.logger.Warn("Failed to update progress", "request_id", req.ID, "error", err)
		}
	}
	if firstErr != nil && !errors.Is(firstErr, pipeline.ErrCancelled) {
		return results, completed, fmt.Errorf("phase 1 infrastructure failure: %w", firstErr)
	}
	return results, completed, firstErr
}

// Phase1Exhausted reports whether every dispatched Phase-1 category ended
// failed. Such a request has no collected evidence to score, merge, or
// summarize and terminates as failed instead of completing with an empty
// report.
func (s *Scheduler) Phase1Exhausted(phase1 map[string]*ent.CategoryResult) bool {
	cats := s.registry.Phase(1)
	if len(cats) == 0 {
		return false
	}
	for _, cat := range cats {
		cr, ok := phase1[cat.Key]
		if !ok || cr.Status != categoryresult.StatusFailed {
			return false
		}
	}
	return true
}

// RunScoring executes the suitability-scoring category: extraction plus the
// per-route weighted rubric, persisted as ParameterResult rows. Idempotent
// per request.
func (s *Scheduler) RunScoring(ctx context.Context, req *ent.AnalysisRequest, phase1 map[string]*ent.CategoryResult, completed int) (td, tm scoring.RouteScore, outCompleted int, err error) {
	outCompleted = completed
	cat, catErr := s.registry.Get(scoringCategoryKey)
	if catErr != nil {
		err = fmt.Errorf("scoring category missing: %w", catErr)
		return
	}

	if cancelled, cErr := s.isCancelled(ctx, req.ID); cErr != nil {
		err = cErr
		return
	} else if cancelled {
		err = pipeline.ErrCancelled
		return
	}

	cr, crErr := s.ensureResult(ctx, req, cat)
	if crErr != nil {
		err = crErr
		return
	}

	phase1Text := phase1Narratives(s.registry, phase1)
	start := time.Now().UTC()
	if _, uErr := cr.Update().
		SetStatus(categoryresult.StatusProcessing).
		SetStartedAt(start).
		Save(ctx); uErr != nil {
		err = fmt.Errorf("failed to mark scoring processing: %w", uErr)
		return
	}

	td, tm = s.scorer.Score(ctx, req.DrugName, phase1Text)

	for _, route := range []scoring.RouteScore{td, tm} {
		for _, p := range route.Parameters {
			if pErr := s.persistParameter(ctx, req.ID, route.Route, p); pErr != nil {
				err = pErr
				return
			}
		}
	}

	summary := fmt.Sprintf(
		"Weighted suitability scoring for %s: transdermal %.1f/9 (%s), transmucosal %.1f/9 (%s).",
		req.DrugName, td.Total, td.Verdict, tm.Total, tm.Verdict)

	if _, uErr := cr.Update().
		SetStatus(categoryresult.StatusCompleted).
		SetSummary(summary).
		SetConfidenceScore(1).
		SetDataQualityScore(1).
		SetProcessingTimeMs(int(time.Since(start).Milliseconds())).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx); uErr != nil {
		err = fmt.Errorf("failed to complete scoring category: %w", uErr)
		return
	}

	if aErr := s.recorder.Record(ctx, audit.Entry{
		EventType:     audit.EventProcessComplete,
		EntityType:    "category_result",
		EntityID:      cr.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues: map[string]any{
			"category": cat.Key,
			"td_total": td.Total,
			"tm_total": tm.Total,
		},
	}); aErr != nil {
		err = aErr
		return
	}

	outCompleted++
	if pErr := s.tracker.UpdateCategoryProgress(ctx, req.ID, outCompleted); pErr != nil {
		s.logger.Warn("Failed to update progress", "request_id", req.ID, "error", pErr)
	}
	return
}

// RunPhase2 executes the remaining Phase-2 categories sequentially by display
// order. Each receives the Phase-1 narratives and the scoring digest as
// read-only background. Categories whose dependencies are not enabled are
// skipped with a precise reason.
func (s *Scheduler) RunPhase2(ctx context.Context, req *ent.AnalysisRequest, phase1 map[string]*ent.CategoryResult, td, tm scoring.RouteScore, completed int) (map[string]*ent.CategoryResult, int, error) {
	background := phase1Narratives(s.registry, phase1) + "\n\n" + scoringDigest(td, tm)
	sections := make(map[string]*ent.CategoryResult)

	for _, cat := range s.registry.Phase(2) {
		if cat.Key == scoringCategoryKey {
			continue
		}

		if cancelled, err := s.isCancelled(ctx, req.ID); err != nil {
			return sections, completed, err
		} else if cancelled {
			if err := s.AbortRemaining(ctx, req, "cancelled"); err != nil {
				return sections, completed, err
			}
			return sections, completed, pipeline.ErrCancelled
		}

		if reason := s.missingDependency(cat); reason != "" {
			cr, err := s.markSkipped(ctx, req, cat, reason)
			if err != nil {
				return sections, completed, err
			}
			sections[cat.Key] = cr
			completed++
			continue
		}

		start := time.Now()
		cr, err := s.stageExec.RunCategory(ctx, req, cat, background)
		if err != nil {
			return sections, completed, err
		}
		metrics.CategoryDuration.WithLabelValues(cat.Key, string(cr.Status)).
			Observe(time.Since(start).Seconds())
		sections[cat.Key] = cr
		completed++
		if err := s.tracker.UpdateCategoryProgress(ctx, req.ID, completed); err != nil {
			s.logger.Warn("Failed to update progress", "request_id", req.ID, "error", err)
		}
	}
	return sections, completed, nil
}

// missingDependency returns a skip reason when any declared dependency is not
// an enabled category, empty otherwise.
func (s *Scheduler) missingDependency(cat *config.CategoryConfig) string {
	for _, dep := range cat.DependsOn {
		depCfg, err := s.registry.Get(dep)
		if err != nil || !depCfg.IsActive() {
			return fmt.Sprintf("dependency %s is not enabled", dep)
		}
	}
	return ""
}

// AbortRemaining marks every not-yet-terminal Phase-2 category as skipped.
// Called once cancellation is observed; terminal rows are left alone.
func (s *Scheduler) AbortRemaining(ctx context.Context, req *ent.AnalysisRequest, reason string) error {
	for _, cat := range s.registry.Phase(2) {
		if _, err := s.markSkipped(ctx, req, cat, reason); err != nil {
			return err
		}
	}
	return nil
}

// Cancelled reports whether the request's tracking row is cancelled.
func (s *Scheduler) Cancelled(ctx context.Context, requestID string) (bool, error) {
	return s.isCancelled(ctx, requestID)
}

// markSkipped records a skipped CategoryResult, leaving terminal rows alone.
func (s *Scheduler) markSkipped(ctx context.Context, req *ent.AnalysisRequest, cat *config.CategoryConfig, reason string) (*ent.CategoryResult, error) {
	cr, err := s.ensureResult(ctx, req, cat)
	if err != nil {
		return nil, err
	}
	switch cr.Status {
	case categoryresult.StatusCompleted, categoryresult.StatusFailed, categoryresult.StatusSkipped:
		return cr, nil
	}
	cr, err = cr.Update().
		SetStatus(categoryresult.StatusSkipped).
		SetSkipReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark category %s skipped: %w", cat.Key, err)
	}
	s.logger.Info("Category skipped", "request_id", req.ID, "category", cat.Key, "reason", reason)
	return cr, nil
}

func (s *Scheduler) ensureResult(ctx context.Context, req *ent.AnalysisRequest, cat *config.CategoryConfig) (*ent.CategoryResult, error) {
	cr, err := s.client.CategoryResult.Query().
		Where(
			categoryresult.RequestID(req.ID),
			categoryresult.CategoryID(cat.Key),
		).
		Only(ctx)
	if err == nil {
		return cr, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query category result: %w", err)
	}
	cr, err = s.client.CategoryResult.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetCategoryID(cat.Key).
		SetCategoryName(cat.Name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create category result: %w", err)
	}
	return cr, nil
}

// persistParameter upserts one scored parameter. The unique index on
// (request_id, parameter, delivery_method) makes re-runs idempotent.
func (s *Scheduler) persistParameter(ctx context.Context, requestID string, route config.DeliveryMethod, p scoring.ParameterScore) error {
	exists, err := s.client.ParameterResult.Query().
		Where(
			parameterresult.RequestID(requestID),
			parameterresult.ParameterEQ(parameterresult.Parameter(p.Parameter)),
			parameterresult.DeliveryMethodEQ(parameterresult.DeliveryMethod(route)),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query parameter result: %w", err)
	}
	if exists {
		return nil
	}

	create := s.client.ParameterResult.Create().
		SetID(uuid.NewString()).
		SetRequestID(requestID).
		SetParameter(parameterresult.Parameter(p.Parameter)).
		SetDeliveryMethod(parameterresult.DeliveryMethod(route)).
		SetUnit(p.Unit).
		SetWeightedScore(p.WeightedScore).
		SetRationale(p.Rationale).
		SetRangeText(p.RangeText).
		SetIsExclusion(p.IsExclusion).
		SetExtractionMethod(parameterresult.ExtractionMethod(p.Method))
	if p.Value != nil {
		create.SetExtractedValue(*p.Value)
	}
	if p.Score != nil {
		create.SetScore(*p.Score)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to persist parameter result: %w", err)
	}
	return nil
}

func (s *Scheduler) isCancelled(ctx context.Context, requestID string) (bool, error) {
	tr, err := s.client.ProcessTracking.Query().
		Where(processtracking.RequestID(requestID)).
		Only(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check cancellation: %w", err)
	}
	return tr.Status == processtracking.StatusCancelled, nil
}

// phase1Narratives concatenates completed Phase-1 summaries in display order.
func phase1Narratives(registry *config.CategoryRegistry, phase1 map[string]*ent.CategoryResult) string {
	var b strings.Builder
	for _, cat := range registry.Phase(1) {
		cr, ok := phase1[cat.Key]
		if !ok || cr.Status != categoryresult.StatusCompleted || cr.Summary == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", cat.Name, cr.Summary)
	}
	return strings.TrimSpace(b.String())
}

// scoringDigest renders the route scores for downstream Phase-2 prompts.
func scoringDigest(td, tm scoring.RouteScore) string {
	var b strings.Builder
	b.WriteString("## Suitability Scoring\n\n")
	for _, r := range []scoring.RouteScore{td, tm} {
		fmt.Fprintf(&b, "%s: %.1f/9, verdict %s, priority %s, risk %s\n",
			r.Route, r.Total, r.Verdict, r.Priority, r.RiskLevel)
		for _, p := range r.Parameters {
			if p.Value == nil || p.Score == nil {
				fmt.Fprintf(&b, "- %s: no value extracted\n", p.Parameter)
				continue
			}
			fmt.Fprintf(&b, "- %s: %v %s scored %d/9 (%s)\n",
				p.Parameter, *p.Value, p.Unit, *p.Score, p.RangeText)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
