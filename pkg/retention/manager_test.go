package retention

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
	"github.com/owais-symtera/cognito-sub001/test/util"
)

func newTestManager(t *testing.T) (*Manager, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	recorder := audit.NewRecorder(client)
	return NewManager(client, config.DefaultRetentionConfig(), recorder), client
}

// createAgedRequest creates a terminal request whose completion predates the
// request keep, optionally with an audit trail.
func createAgedRequest(t *testing.T, client *ent.Client, audited bool) string {
	ctx := context.Background()
	old := time.Now().UTC().Add(-4 * 365 * 24 * time.Hour)

	req, err := client.AnalysisRequest.Create().
		SetID(uuid.NewString()).
		SetDrugName("Apixaban").
		SetCorrelationID(uuid.NewString()).
		SetCompletedAt(old).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProcessTracking.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetStatus(processtracking.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	if audited {
		_, err = client.AuditEvent.Create().
			SetID(uuid.NewString()).
			SetEventType(audit.EventCreate).
			SetEntityType("analysis_request").
			SetEntityID(req.ID).
			SetRequestID(req.ID).
			Save(ctx)
		require.NoError(t, err)
	}
	return req.ID
}

func TestRunOnce_ArchivesAgedTerminalRequest(t *testing.T) {
	m, client := newTestManager(t)
	ctx := context.Background()
	reqID := createAgedRequest(t, client, true)

	report, err := m.RunOnce(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ArchivedRequests)
	assert.Equal(t, 1, report.ArchivedTracking)

	req, err := client.AnalysisRequest.Get(ctx, reqID)
	require.NoError(t, err)
	assert.NotNil(t, req.DeletedAt, "archive must be a marker, not a hard delete")

	tr, err := client.ProcessTracking.Query().
		Where(processtracking.RequestID(reqID)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tr.DeletedAt)

	// The archival itself is audited.
	count, err := client.AuditEvent.Query().
		Where(
			auditevent.RequestID(reqID),
			auditevent.EventTypeEQ(audit.EventDelete),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunOnce_RefusesArchivalWithoutAuditTrail(t *testing.T) {
	m, client := newTestManager(t)
	ctx := context.Background()
	reqID := createAgedRequest(t, client, false)

	report, err := m.RunOnce(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, report.ArchivedRequests)
	assert.Equal(t, 1, report.RefusedNoAudit)

	req, err := client.AnalysisRequest.Get(ctx, reqID)
	require.NoError(t, err)
	assert.Nil(t, req.DeletedAt)
}

func TestRunOnce_DryRunMutatesNothing(t *testing.T) {
	m, client := newTestManager(t)
	ctx := context.Background()
	reqID := createAgedRequest(t, client, true)

	report, err := m.RunOnce(ctx, true)
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.ArchivedRequests)

	req, err := client.AnalysisRequest.Get(ctx, reqID)
	require.NoError(t, err)
	assert.Nil(t, req.DeletedAt)
}

func TestRunOnce_ArchivesAgedAuditEventsInPlace(t *testing.T) {
	m, client := newTestManager(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-8 * 365 * 24 * time.Hour)
	ev, err := client.AuditEvent.Create().
		SetID(uuid.NewString()).
		SetEventType(audit.EventCreate).
		SetEntityType("analysis_request").
		SetEntityID("r1").
		SetTimestamp(old).
		Save(ctx)
	require.NoError(t, err)

	report, err := m.RunOnce(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ArchivedAuditEvents)

	// The row survives with its marker set; audit events are never deleted.
	ev, err = client.AuditEvent.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.NotNil(t, ev.DeletedAt)
}

func TestRunOnce_DeletesExpiredProviderResponses(t *testing.T) {
	m, client := newTestManager(t)
	ctx := context.Background()

	req, err := client.AnalysisRequest.Create().
		SetID(uuid.NewString()).
		SetDrugName("Apixaban").
		SetCorrelationID(uuid.NewString()).
		Save(ctx)
	require.NoError(t, err)
	cr, err := client.CategoryResult.Create().
		SetID(uuid.NewString()).
		SetRequestID(req.ID).
		SetCategoryID("market_analysis").
		SetCategoryName("Market Analysis").
		Save(ctx)
	require.NoError(t, err)

	expired, err := client.ProviderResponse.Create().
		SetID(uuid.NewString()).
		SetCategoryResultID(cr.ID).
		SetProvider("perplexity").
		SetModel("sonar-pro").
		SetRawText("stale raw payload").
		SetChecksum("abc123").
		SetRetentionExpiresAt(time.Now().UTC().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	kept, err := client.ProviderResponse.Create().
		SetID(uuid.NewString()).
		SetCategoryResultID(cr.ID).
		SetProvider("perplexity").
		SetModel("sonar-pro").
		SetRawText("fresh raw payload").
		SetChecksum("def456").
		SetRetentionExpiresAt(time.Now().UTC().Add(24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	report, err := m.RunOnce(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.DeletedProviderResponses)

	_, err = client.ProviderResponse.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.ProviderResponse.Get(ctx, kept.ID)
	assert.NoError(t, err)
}
