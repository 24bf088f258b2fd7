package tracking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/test/util"
)

func newTestTracker(t *testing.T) (*Tracker, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	recorder := audit.NewRecorder(client)
	return NewTracker(client, recorder, config.DefaultStagesConfig()), client
}

func createTrackedRequest(t *testing.T, client *ent.Client) string {
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
	return req.ID
}

func TestTracker_TransitionHappyPath(t *testing.T) {
	tracker, client := newTestTracker(t)
	ctx := context.Background()
	reqID := createTrackedRequest(t, client)

	for _, status := range []processtracking.Status{
		processtracking.StatusCollecting,
		processtracking.StatusVerifying,
		processtracking.StatusMerging,
		processtracking.StatusSummarizing,
		processtracking.StatusCompleted,
	} {
		require.NoError(t, tracker.Transition(ctx, reqID, status, ""))
	}

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processtracking.StatusCompleted, tr.Status)
	assert.Equal(t, 100, tr.ProgressPercent)
	assert.NotNil(t, tr.CollectingStartedAt)
	assert.NotNil(t, tr.SummarizingCompletedAt)

	// Terminal transitions stamp the request itself.
	req, err := client.AnalysisRequest.Get(ctx, reqID)
	require.NoError(t, err)
	assert.NotNil(t, req.CompletedAt)
}

func TestTracker_RejectsIllegalTransition(t *testing.T) {
	tracker, client := newTestTracker(t)
	ctx := context.Background()
	reqID := createTrackedRequest(t, client)

	err := tracker.Transition(ctx, reqID, processtracking.StatusMerging, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Status is unchanged and the rejection left an audit trail.
	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processtracking.StatusSubmitted, tr.Status)

	count, err := client.AuditEvent.Query().
		Where(
			auditevent.RequestID(reqID),
			auditevent.EventTypeEQ(audit.EventProcessError),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTracker_TerminalStatesAreFinal(t *testing.T) {
	tracker, client := newTestTracker(t)
	ctx := context.Background()
	reqID := createTrackedRequest(t, client)

	require.NoError(t, tracker.Transition(ctx, reqID, processtracking.StatusCancelled, ""))

	err := tracker.Transition(ctx, reqID, processtracking.StatusCollecting, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTracker_FailureFromAnyActiveState(t *testing.T) {
	tracker, client := newTestTracker(t)
	ctx := context.Background()
	reqID := createTrackedRequest(t, client)

	require.NoError(t, tracker.Transition(ctx, reqID, processtracking.StatusCollecting, ""))
	require.NoError(t, tracker.Transition(ctx, reqID, processtracking.StatusFailed, "provider unreachable"))

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processtracking.StatusFailed, tr.Status)
	require.NotNil(t, tr.ErrorDetails)
	assert.Equal(t, "provider unreachable", *tr.ErrorDetails)
}

func TestTracker_ProgressMutationsAreAudited(t *testing.T) {
	tracker, client := newTestTracker(t)
	ctx := context.Background()
	reqID := createTrackedRequest(t, client)

	require.NoError(t, tracker.SetCategoriesTotal(ctx, reqID, 12))
	require.NoError(t, tracker.UpdateCategoryProgress(ctx, reqID, 3))

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)

	// Both tracking mutations carry an update event keyed by the row id.
	count, err := client.AuditEvent.Query().
		Where(
			auditevent.RequestID(reqID),
			auditevent.EntityType("process_tracking"),
			auditevent.EntityID(tr.ID),
			auditevent.EventTypeEQ(audit.EventUpdate),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTracker_CategoryProgressMovesForwardOnly(t *testing.T) {
	tracker, client := newTestTracker(t)
	ctx := context.Background()
	reqID := createTrackedRequest(t, client)

	require.NoError(t, tracker.SetCategoriesTotal(ctx, reqID, 10))
	require.NoError(t, tracker.Transition(ctx, reqID, processtracking.StatusCollecting, ""))
	require.NoError(t, tracker.UpdateCategoryProgress(ctx, reqID, 5))

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	progressAtFive := tr.ProgressPercent
	assert.Greater(t, progressAtFive, 20)

	// A stale lower count must not move progress backwards.
	require.NoError(t, tracker.UpdateCategoryProgress(ctx, reqID, 2))
	tr, err = client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tr.ProgressPercent, progressAtFive)
}
