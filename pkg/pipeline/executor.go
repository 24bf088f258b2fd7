package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
	"github.com/owais-symtera/cognito-sub001/pkg/ratelimit"
)

// ErrCancelled signals the owning request was cancelled; the category is
// marked skipped, not failed.
var ErrCancelled = errors.New("request cancelled")

// stageOrders maps stage names to their fixed pipeline position.
var stageOrders = map[config.StageName]int{
	config.StageCollect:   1,
	config.StageVerify:    2,
	config.StageMerge:     3,
	config.StageSummarize: 4,
}

// StageExecutor runs the four-stage pipeline for a single category and is
// the sole writer of its CategoryResult and children.
type StageExecutor struct {
	client   *ent.Client
	fleet    *provider.Fleet
	cfg      *config.Config
	recorder *audit.Recorder
	limiter  ratelimit.Limiter

	merger     *Merger
	summarizer *Summarizer
	logger     *slog.Logger
}

// NewStageExecutor wires the executor. When no chat provider is enabled the
// merger uses its weighted fallback and summaries pass the merged text
// through unchanged.
func NewStageExecutor(client *ent.Client, fleet *provider.Fleet, cfg *config.Config, recorder *audit.Recorder, limiter ratelimit.Limiter) *StageExecutor {
	e := &StageExecutor{
		client:   client,
		fleet:    fleet,
		cfg:      cfg,
		recorder: recorder,
		limiter:  limiter,
		logger:   slog.With("component", "stage_executor"),
	}

	if chat, ok := fleet.Chat(); ok {
		chatCfg, err := fleet.Config(chat.Name())
		if err == nil {
			e.merger = NewMerger(chat, cfg.Defaults.MergeTopK)
			e.summarizer = NewSummarizer(chat, chatCfg, cfg.StyleRegistry)
		}
	}
	if e.merger == nil {
		e.merger = NewMerger(nil, cfg.Defaults.MergeTopK)
	}
	return e
}

// RunCategory executes collect → verify → merge → summarize for one category.
// Completed results are returned as-is (idempotent). A transient failure gets
// one whole-category retry; cancellation marks the result skipped. background
// is appended to the collect prompt; Phase-2 categories use it to ground
// their analysis in Phase-1 results.
func (e *StageExecutor) RunCategory(ctx context.Context, req *ent.AnalysisRequest, cat *config.CategoryConfig, background string) (*ent.CategoryResult, error) {
	cr, err := e.ensureResult(ctx, req, cat)
	if err != nil {
		return nil, err
	}
	switch cr.Status {
	case categoryresult.StatusCompleted, categoryresult.StatusSkipped:
		return cr, nil
	}

	log := e.logger.With("request_id", req.ID, "category", cat.Key)
	started := time.Now().UTC()

	cr, err = cr.Update().
		SetStatus(categoryresult.StatusProcessing).
		SetStartedAt(started).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark category processing: %w", err)
	}

	if err := e.recorder.Record(ctx, audit.Entry{
		EventType:     audit.EventProcessStart,
		EntityType:    "category_result",
		EntityID:      cr.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues:     map[string]any{"category": cat.Key},
	}); err != nil {
		return nil, err
	}

	catCtx, cancel := context.WithTimeout(ctx, e.cfg.Stages.CategoryDeadline)
	defer cancel()

	runErr := e.runStages(catCtx, req, cr, cat, background)
	if runErr != nil && isTransient(runErr) && cr.RetryCount == 0 {
		log.Warn("Transient category failure, retrying once", "error", runErr)
		cr, err = cr.Update().AddRetryCount(1).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to bump retry count: %w", err)
		}
		retryCtx, retryCancel := context.WithTimeout(ctx, e.cfg.Stages.CategoryDeadline)
		runErr = e.runStages(retryCtx, req, cr, cat, background)
		retryCancel()
	}

	elapsed := int(time.Since(started).Milliseconds())

	switch {
	case errors.Is(runErr, ErrCancelled) || errors.Is(runErr, context.Canceled):
		cr, err = cr.Update().
			SetStatus(categoryresult.StatusSkipped).
			SetSkipReason("cancelled").
			SetProcessingTimeMs(elapsed).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark category skipped: %w", err)
		}
		log.Info("Category skipped after cancellation")
		return cr, nil

	case runErr != nil:
		cr, err = cr.Update().
			SetStatus(categoryresult.StatusFailed).
			SetErrorMessage(runErr.Error()).
			SetProcessingTimeMs(elapsed).
			SetCompletedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark category failed: %w", err)
		}
		if auditErr := e.recorder.Record(ctx, audit.Entry{
			EventType:     audit.EventProcessError,
			EntityType:    "category_result",
			EntityID:      cr.ID,
			RequestID:     req.ID,
			CorrelationID: req.CorrelationID,
			NewValues:     map[string]any{"category": cat.Key, "error": runErr.Error()},
		}); auditErr != nil {
			return nil, auditErr
		}
		log.Error("Category failed", "error", runErr)
		return cr, nil
	}

	cr, err = e.client.CategoryResult.Get(ctx, cr.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload category result: %w", err)
	}
	cr, err = cr.Update().
		SetStatus(categoryresult.StatusCompleted).
		SetProcessingTimeMs(elapsed).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark category completed: %w", err)
	}

	if err := e.recorder.Record(ctx, audit.Entry{
		EventType:     audit.EventProcessComplete,
		EntityType:    "category_result",
		EntityID:      cr.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues:     map[string]any{"category": cat.Key, "confidence": cr.ConfidenceScore},
	}); err != nil {
		return nil, err
	}

	log.Info("Category completed", "duration_ms", elapsed)
	return cr, nil
}

// runStages drives the four stages sequentially, checking for cancellation
// at every suspension point.
func (e *StageExecutor) runStages(ctx context.Context, req *ent.AnalysisRequest, cr *ent.CategoryResult, cat *config.CategoryConfig, background string) error {
	if err := e.checkCancelled(ctx, req.ID); err != nil {
		return err
	}

	responses, err := e.collectStage(ctx, req, cr, cat, background)
	if err != nil {
		return err
	}

	if err := e.checkCancelled(ctx, req.ID); err != nil {
		return err
	}

	validation, weighted, err := e.verifyStage(ctx, req, cr, cat, responses)
	if err != nil {
		return err
	}

	if err := e.checkCancelled(ctx, req.ID); err != nil {
		return err
	}

	merged, err := e.mergeStage(ctx, req, cr, cat, weighted)
	if err != nil {
		return err
	}

	if err := e.checkCancelled(ctx, req.ID); err != nil {
		return err
	}

	return e.summarizeStage(ctx, req, cr, cat, merged, validation)
}

// ensureResult loads or creates the CategoryResult row for (request, category).
func (e *StageExecutor) ensureResult(ctx context.Context, req *ent.AnalysisRequest, cat *config.CategoryConfig) (*ent.CategoryResult, error) {
	cr, err := e.client.CategoryResult.Query().
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

	cr, err = e.client.CategoryResult.Create().
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

// collectStage fans out across all enabled chat and citation providers,
// persisting each raw response. Disabled or already-executed stages reuse
// the persisted responses.
func (e *StageExecutor) collectStage(ctx context.Context, req *ent.AnalysisRequest, cr *ent.CategoryResult, cat *config.CategoryConfig, background string) ([]*ent.ProviderResponse, error) {
	if !e.cfg.Stages.IsEnabled(config.StageCollect) {
		if err := e.recordStageEvent(ctx, req, cat, config.StageCollect, false, true, "", "", 0); err != nil {
			return nil, err
		}
		return e.loadResponses(ctx, cr)
	}
	if done, err := e.stageExecuted(ctx, req.ID, cat.Key, config.StageCollect); err != nil {
		return nil, err
	} else if done {
		return e.loadResponses(ctx, cr)
	}

	prompt, err := renderPrompt(cat.PromptTemplate, req.DrugName)
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt for category %s: %w", cat.Key, err)
	}
	if background != "" {
		prompt += "\n\n---\n\nAnalysis so far:\n\n" + background
	}

	start := time.Now()
	collectors := e.fleet.Collectors()
	results := make([]*provider.Response, len(collectors))

	var wg sync.WaitGroup
	for i, p := range collectors {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			if err := e.waitForBudget(ctx, "provider:"+p.Name()); err != nil {
				return
			}
			pcfg, err := e.fleet.Config(p.Name())
			if err != nil {
				return
			}
			resp, err := provider.FetchWithRetry(ctx, p, pcfg, provider.Query{
				CategoryKey: cat.Key,
				DrugName:    req.DrugName,
				System:      "You are a pharmaceutical intelligence researcher. Be precise and cite data where possible.",
				Prompt:      prompt,
			})
			if err != nil {
				e.logger.Warn("Provider fetch failed",
					"request_id", req.ID, "category", cat.Key, "provider", p.Name(), "error", err)
				return
			}
			results[i] = resp
		}(i, p)
	}
	wg.Wait()

	retention := time.Now().UTC().AddDate(e.cfg.Defaults.ProviderResponseRetentionYears, 0, 0)
	var persisted []*ent.ProviderResponse
	var totalTokens int
	var totalCost float64
	apiCalls := 0

	for _, resp := range results {
		if resp == nil {
			continue
		}
		apiCalls++
		totalTokens += resp.TokenCount
		totalCost += resp.Cost

		row, err := e.client.ProviderResponse.Create().
			SetID(uuid.NewString()).
			SetCategoryResultID(cr.ID).
			SetProvider(resp.Provider).
			SetModel(resp.Model).
			SetTemperature(resp.Temperature).
			SetQueryParameters(map[string]any{"prompt": prompt, "drug_name": req.DrugName}).
			SetRawText(resp.Text).
			SetCitedUrls(resp.CitedURLs).
			SetLatencyMs(int(resp.LatencyMS)).
			SetTokenCount(resp.TokenCount).
			SetCost(resp.Cost).
			SetChecksum(resp.Checksum).
			SetRetentionExpiresAt(retention).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist provider response: %w", err)
		}
		persisted = append(persisted, row)
	}

	if _, err := cr.Update().
		AddAPICallsMade(apiCalls).
		AddTokenCount(totalTokens).
		AddCostEstimate(totalCost).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update category counters: %w", err)
	}

	outDigest := provider.Checksum(combinedText(persisted))
	if err := e.recordStageEvent(ctx, req, cat, config.StageCollect, true, false,
		provider.Checksum(prompt), outDigest, time.Since(start)); err != nil {
		return nil, err
	}
	return persisted, nil
}

// verifyStage runs structural validation over the combined text plus a
// per-source pass rate used to down-weight weak sources during merge.
func (e *StageExecutor) verifyStage(ctx context.Context, req *ent.AnalysisRequest, cr *ent.CategoryResult, cat *config.CategoryConfig, responses []*ent.ProviderResponse) (ValidationResult, []WeightedResponse, error) {
	weighted := e.weigh(responses, cat)

	if !e.cfg.Stages.IsEnabled(config.StageVerify) {
		if err := e.recordStageEvent(ctx, req, cat, config.StageVerify, false, true, "", "", 0); err != nil {
			return ValidationResult{}, nil, err
		}
		for i := range weighted {
			weighted[i].PassRate = 1
		}
		return ValidationResult{Passed: true, Score: 1}, weighted, nil
	}

	start := time.Now()
	combined := combinedText(responses)
	result := Validate(combined, cat.Verification)
	for i := range weighted {
		weighted[i].PassRate = PassRate(weighted[i].Response.Text, cat.Verification)
	}

	if err := e.recorder.Record(ctx, audit.Entry{
		EventType:     audit.EventSourceVerification,
		EntityType:    "category_result",
		EntityID:      cr.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues: map[string]any{
			"passed":       result.Passed,
			"score":        result.Score,
			"failed_rules": result.FailedRules,
		},
	}); err != nil {
		return ValidationResult{}, nil, err
	}
	if err := e.recordStageEvent(ctx, req, cat, config.StageVerify, true, false,
		provider.Checksum(combined), provider.Checksum(fmt.Sprintf("%+v", result)), time.Since(start)); err != nil {
		return ValidationResult{}, nil, err
	}
	return result, weighted, nil
}

// mergeStage reconciles weighted responses into one MergedData row. Returns
// nil when the merge stage is disabled; the summarize stage then consumes a
// deterministic concatenation instead.
func (e *StageExecutor) mergeStage(ctx context.Context, req *ent.AnalysisRequest, cr *ent.CategoryResult, cat *config.CategoryConfig, weighted []WeightedResponse) (*MergeResult, error) {
	if !e.cfg.Stages.IsEnabled(config.StageMerge) {
		if err := e.recordStageEvent(ctx, req, cat, config.StageMerge, false, true, "", "", 0); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if existing, err := e.client.MergedData.Query().
		Where(mergeddata.CategoryResultID(cr.ID)).
		Only(ctx); err == nil {
		return mergeResultFromRow(existing), nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query merged data: %w", err)
	}

	start := time.Now()
	result := e.merger.Merge(ctx, req.DrugName, cat, weighted)

	refs := make([]map[string]any, 0, len(weighted))
	for _, w := range weighted {
		refs = append(refs, map[string]any{
			"provider":        w.Weight.Provider,
			"model":           w.Weight.Model,
			"weight":          w.Weight.Weight,
			"authority_score": string(w.Weight.Authority),
		})
	}

	// Merged data, conflicts, and their audit events commit atomically.
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	merged, err := tx.MergedData.Create().
		SetID(uuid.NewString()).
		SetCategoryResultID(cr.ID).
		SetMergedText(result.MergedText).
		SetStructuredData(result.StructuredData).
		SetConfidence(clamp01(result.Confidence)).
		SetSourceReferences(refs).
		SetMergeMethod(mergeddata.MergeMethod(result.Method)).
		SetKeyFindings(result.KeyFindings).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist merged data: %w", err)
	}
	if err := e.recorder.RecordTx(ctx, tx, audit.Entry{
		EventType:     audit.EventCreate,
		EntityType:    "merged_data",
		EntityID:      merged.ID,
		RequestID:     req.ID,
		CorrelationID: req.CorrelationID,
		NewValues: map[string]any{
			"category":     cat.Key,
			"merge_method": result.Method,
			"confidence":   merged.Confidence,
		},
	}); err != nil {
		return nil, err
	}

	for _, c := range result.Conflicts {
		row, err := tx.SourceConflict.Create().
			SetID(uuid.NewString()).
			SetCategoryResultID(cr.ID).
			SetConflictType(c.Field).
			SetDescription(c.Description).
			SetConflictingSourceIds(c.Sources).
			SetResolutionStrategy(cat.ConflictResolutionStrategy).
			SetIsCritical(c.IsCritical).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist source conflict: %w", err)
		}
		if err := e.recorder.RecordTx(ctx, tx, audit.Entry{
			EventType:     audit.EventConflictResolution,
			EntityType:    "source_conflict",
			EntityID:      row.ID,
			RequestID:     req.ID,
			CorrelationID: req.CorrelationID,
			NewValues:     map[string]any{"field": c.Field, "chosen": c.Chosen, "reason": c.Reason},
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merge stage: %w", err)
	}

	inDigest := provider.Checksum(combinedWeightedText(weighted))
	if err := e.recordStageEvent(ctx, req, cat, config.StageMerge, true, false,
		inDigest, provider.Checksum(result.MergedText), time.Since(start)); err != nil {
		return nil, err
	}
	return result, nil
}

// summarizeStage produces the final per-category summary and closes out the
// CategoryResult's confidence and quality scores.
func (e *StageExecutor) summarizeStage(ctx context.Context, req *ent.AnalysisRequest, cr *ent.CategoryResult, cat *config.CategoryConfig, merged *MergeResult, validation ValidationResult) error {
	confidence := 0.0
	quality := 0.0
	input := ""
	if merged != nil {
		confidence = merged.Confidence
		quality = merged.DataQuality
		input = merged.MergedText
	} else {
		// Merge disabled: deterministic concatenation of raw responses.
		responses, err := e.loadResponses(ctx, cr)
		if err != nil {
			return err
		}
		input = combinedText(responses)
	}
	confidence = clamp01(confidence - validation.ConfidencePenalty)

	if !e.cfg.Stages.IsEnabled(config.StageSummarize) || e.summarizer == nil {
		if err := e.recordStageEvent(ctx, req, cat, config.StageSummarize, false, true, "", "", 0); err != nil {
			return err
		}
		// Disabled stage forwards its input unchanged.
		_, err := cr.Update().
			SetSummary(input).
			SetConfidenceScore(confidence).
			SetDataQualityScore(clamp01(quality)).
			Save(ctx)
		return err
	}

	start := time.Now()
	result := e.summarizer.Generate(ctx, req.DrugName, input, cat)

	history := e.client.SummaryHistory.Create().
		SetID(uuid.NewString()).
		SetCategoryResultID(cr.ID).
		SetStyleName(cat.SummaryStyle).
		SetProvider(result.Provider).
		SetModel(result.Model).
		SetGenerationTimeMs(int(result.GenerationTimeMS)).
		SetTokensUsed(result.TokensUsed).
		SetCostEstimate(result.CostEstimate)
	if result.Err != nil {
		history.SetErrorMessage(result.Err.Error())
	} else {
		history.SetGeneratedSummary(result.Summary)
	}
	if _, err := history.Save(ctx); err != nil {
		return fmt.Errorf("failed to persist summary history: %w", err)
	}
	if result.Err != nil {
		return result.Err
	}

	if _, err := cr.Update().
		SetSummary(result.Summary).
		SetConfidenceScore(confidence).
		SetDataQualityScore(clamp01(quality)).
		AddTokenCount(result.TokensUsed).
		AddCostEstimate(result.CostEstimate).
		AddAPICallsMade(1).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}

	return e.recordStageEvent(ctx, req, cat, config.StageSummarize, true, false,
		provider.Checksum(input), provider.Checksum(result.Summary), time.Since(start))
}

// weigh converts persisted responses into weighted inputs for the merger.
func (e *StageExecutor) weigh(responses []*ent.ProviderResponse, cat *config.CategoryConfig) []WeightedResponse {
	out := make([]WeightedResponse, 0, len(responses))
	for _, row := range responses {
		resp := &provider.Response{
			Provider:   row.Provider,
			Model:      row.Model,
			Text:       row.RawText,
			CitedURLs:  row.CitedUrls,
			TokenCount: row.TokenCount,
			Cost:       row.Cost,
			Checksum:   row.Checksum,
		}
		pcfg, err := e.fleet.Config(row.Provider)
		if err != nil {
			pcfg = &config.ProviderConfig{Name: row.Provider, Authority: config.AuthorityUnknown}
		}
		out = append(out, WeightedResponse{
			Response: resp,
			Weight:   provider.Weigh(resp, pcfg),
		})
	}
	return out
}

func (e *StageExecutor) loadResponses(ctx context.Context, cr *ent.CategoryResult) ([]*ent.ProviderResponse, error) {
	rows, err := e.client.ProviderResponse.Query().
		Where(providerresponse.CategoryResultID(cr.ID)).
		Order(ent.Asc(providerresponse.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider responses: %w", err)
	}
	return rows, nil
}

// stageExecuted reports whether a stage already ran for (request, category).
func (e *StageExecutor) stageExecuted(ctx context.Context, requestID, categoryKey string, stage config.StageName) (bool, error) {
	return e.client.StageEvent.Query().
		Where(
			stageevent.RequestID(requestID),
			stageevent.CategoryID(categoryKey),
			stageevent.StageNameEQ(stageevent.StageName(stage)),
			stageevent.Executed(true),
		).
		Exist(ctx)
}

// recordStageEvent persists one stage event, keyed uniquely by
// (request, category, stage). Re-runs leave the original event in place.
func (e *StageExecutor) recordStageEvent(ctx context.Context, req *ent.AnalysisRequest, cat *config.CategoryConfig, stage config.StageName, executed, skipped bool, inDigest, outDigest string, duration time.Duration) error {
	exists, err := e.client.StageEvent.Query().
		Where(
			stageevent.RequestID(req.ID),
			stageevent.CategoryID(cat.Key),
			stageevent.StageNameEQ(stageevent.StageName(stage)),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stage event: %w", err)
	}
	if exists {
		return nil
	}

	_, err = e.client.StageEvent.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetCategoryID(cat.Key).
		SetStageName(stageevent.StageName(stage)).
		SetStageOrder(stageOrders[stage]).
		SetExecuted(executed).
		SetSkipped(skipped).
		SetInputDigest(inDigest).
		SetOutputDigest(outDigest).
		SetDurationMs(int(duration.Milliseconds())).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record stage event: %w", err)
	}
	return nil
}

// checkCancelled is the suspension-point cancellation check: context first,
// then the persisted tracking status.
func (e *StageExecutor) checkCancelled(ctx context.Context, requestID string) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			return ErrCancelled
		}
		// Deadline expiry is a failure for this category, not a cancellation.
		return err
	}
	tr, err := e.client.ProcessTracking.Query().
		Where(processtracking.RequestID(requestID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to check cancellation: %w", err)
	}
	if tr.Status == processtracking.StatusCancelled {
		return ErrCancelled
	}
	return nil
}

// waitForBudget blocks until the shared rate limiter admits the key, bounded
// by the context deadline.
func (e *StageExecutor) waitForBudget(ctx context.Context, key string) error {
	if e.limiter == nil {
		return nil
	}
	for {
		d, err := e.limiter.Allow(ctx, key)
		if err != nil || d.Allowed {
			return err
		}
		wait := d.RetryAfter
		if wait <= 0 {
			wait = time.Second
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func renderPrompt(tmpl, drugName string) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, struct{ DrugName string }{DrugName: drugName}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func combinedText(responses []*ent.ProviderResponse) string {
	parts := make([]string, 0, len(responses))
	for _, r := range responses {
		parts = append(parts, r.RawText)
	}
	return strings.Join(parts, "\n\n")
}

func combinedWeightedText(weighted []WeightedResponse) string {
	parts := make([]string, 0, len(weighted))
	for _, w := range weighted {
		parts = append(parts, w.Response.Text)
	}
	return strings.Join(parts, "\n\n")
}

func mergeResultFromRow(row *ent.MergedData) *MergeResult {
	data := row.StructuredData
	if data == nil {
		data = map[string]any{}
	}
	return &MergeResult{
		MergedText:     row.MergedText,
		StructuredData: data,
		Confidence:     row.Confidence,
		KeyFindings:    row.KeyFindings,
		Method:         string(row.MergeMethod),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isTransient(err error) bool {
	var pe *provider.Error
	if errors.As(err, &pe) {
		return pe.IsTransient()
	}
	return errors.Is(err, context.DeadlineExceeded)
}
