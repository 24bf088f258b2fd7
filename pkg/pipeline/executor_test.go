package pipeline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/test/util"
)

func newTestStageExecutor(t *testing.T, llm Completer) (*StageExecutor, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	return &StageExecutor{
		client:   client,
		cfg:      &config.Config{Defaults: config.DefaultDefaults(), Stages: config.DefaultStagesConfig()},
		recorder: audit.NewRecorder(client),
		merger:   NewMerger(llm, 3),
		logger:   slog.With("component", "stage_executor"),
	}, client
}

func createCategoryResult(t *testing.T, client *ent.Client) (*ent.AnalysisRequest, *ent.CategoryResult) {
	ctx := context.Background()
	req, err := client.AnalysisRequest.Create().
		SetID(uuid.NewString()).
		SetDrugName("Apixaban").
		SetCorrelationID(uuid.NewString()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProcessTracking.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		Save(ctx)
	require.NoError(t, err)

	cr, err := client.CategoryResult.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetCategoryID("market_analysis").
		SetCategoryName("Market Analysis").
		Save(ctx)
	require.NoError(t, err)
	return req, cr
}

func TestMergeStage_AuditsMergedDataAndConflicts(t *testing.T) {
	llm := &stubCompleter{replies: []string{
		`{"merged_text": "Merged narrative.", "structured_data": {"market_size": "$4.2B"}, "conflicts": [{"field": "market_size", "description": "sources disagree on size", "sources": ["openai", "perplexity"], "chosen": "$4.2B", "reason": "higher authority", "is_critical": false}], "key_findings": ["growing market"]}`,
	}}
	exec, client := newTestStageExecutor(t, llm)
	ctx := context.Background()
	req, cr := createCategoryResult(t, client)

	cat := &config.CategoryConfig{
		Key:                        "market_analysis",
		Name:                       "Market Analysis",
		ConflictResolutionStrategy: "authority_weighted",
	}
	weighted := []WeightedResponse{
		weightedResponse("openai", 10, 0.9, "Source A text"),
		weightedResponse("perplexity", 6, 0.5, "Source B text"),
	}

	result, err := exec.mergeStage(ctx, req, cr, cat, weighted)
	require.NoError(t, err)
	assert.Equal(t, MergeMethodLLMAssisted, result.Method)

	merged, err := client.MergedData.Query().
		Where(mergeddata.CategoryResultID(cr.ID)).
		Only(ctx)
	require.NoError(t, err)

	// The merged artifact carries a create event keyed by its own id.
	count, err := client.AuditEvent.Query().
		Where(
			auditevent.RequestID(req.ID),
			auditevent.EntityType("merged_data"),
			auditevent.EntityID(merged.ID),
			auditevent.EventTypeEQ(audit.EventCreate),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Each conflict row carries a resolution event keyed by the conflict id.
	conflict, err := client.SourceConflict.Query().
		Where(sourceconflict.CategoryResultID(cr.ID)).
		Only(ctx)
	require.NoError(t, err)

	count, err = client.AuditEvent.Query().
		Where(
			auditevent.RequestID(req.ID),
			auditevent.EntityType("source_conflict"),
			auditevent.EntityID(conflict.ID),
			auditevent.EventTypeEQ(audit.EventConflictResolution),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
