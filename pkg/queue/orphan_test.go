package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
	"github.com/owais-symtera/cognito-sub001/test/util"
)

func newTestRecoverer(t *testing.T) (*OrphanRecoverer, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	recorder := audit.NewRecorder(client)
	tracker := tracking.NewTracker(client, recorder, config.DefaultStagesConfig())
	return NewOrphanRecoverer(client, config.DefaultQueueConfig(), tracker, recorder), client
}

func createClaimedRequest(t *testing.T, client *ent.Client, status processtracking.Status, retries int) string {
	ctx := context.Background()
	req, err := client.AnalysisRequest.Create().
		SetID(uuid.NewString()).
		SetDrugName("Apixaban").
		SetCorrelationID(uuid.NewString()).
		SetPodID("dead-pod").
		SetLastInteractionAt(time.Now().UTC().Add(-time.Hour)).
		SetRetryCount(retries).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProcessTracking.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return req.ID
}

func TestRecoverOnce_RequeuesActiveOrphan(t *testing.T) {
	r, client := newTestRecoverer(t)
	ctx := context.Background()
	reqID := createClaimedRequest(t, client, processtracking.StatusCollecting, 0)

	require.NoError(t, r.RecoverOnce(ctx))

	req, err := client.AnalysisRequest.Get(ctx, reqID)
	require.NoError(t, err)
	assert.Nil(t, req.PodID)
	assert.Equal(t, 1, req.RetryCount)

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processtracking.StatusSubmitted, tr.Status)
}

func TestRecoverOnce_ReleasesClaimThatNeverStarted(t *testing.T) {
	r, client := newTestRecoverer(t)
	ctx := context.Background()
	reqID := createClaimedRequest(t, client, processtracking.StatusSubmitted, 0)

	require.NoError(t, r.RecoverOnce(ctx))

	req, err := client.AnalysisRequest.Get(ctx, reqID)
	require.NoError(t, err)
	assert.Nil(t, req.PodID, "the dead pod's claim is cleared")
	assert.Equal(t, 0, req.RetryCount, "no work started, no retry consumed")

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

func TestRecoverOnce_FailsExhaustedOrphan(t *testing.T) {
	r, client := newTestRecoverer(t)
	ctx := context.Background()
	retries := config.DefaultQueueConfig().MaxRequestRetries
	reqID := createClaimedRequest(t, client, processtracking.StatusCollecting, retries)

	require.NoError(t, r.RecoverOnce(ctx))

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processtracking.StatusFailed, tr.Status)
}

func TestRecoverOnce_IgnoresLiveClaims(t *testing.T) {
	r, client := newTestRecoverer(t)
	ctx := context.Background()

	req, err := client.AnalysisRequest.Create().
		SetID(uuid.NewString()).
		SetDrugName("Apixaban").
		SetCorrelationID(uuid.NewString()).
		SetPodID("live-pod").
		SetLastInteractionAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ProcessTracking.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetStatus(processtracking.StatusCollecting).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, r.RecoverOnce(ctx))

	got, err := client.AnalysisRequest.Get(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PodID)
	assert.Equal(t, "live-pod", *got.PodID)
}
