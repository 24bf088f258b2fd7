package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/models"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
	"github.com/owais-symtera/cognito-sub001/test/util"
)

func newTestRequestService(t *testing.T) (*RequestService, *ent.Client) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	cfg, err := config.Initialize(ctx, t.TempDir())
	require.NoError(t, err)

	recorder := audit.NewRecorder(client)
	tracker := tracking.NewTracker(client, recorder, cfg.Stages)
	return NewRequestService(client, cfg, tracker, recorder), client
}

func TestSubmit_CreatesOneRequestPerDrug(t *testing.T) {
	svc, client := newTestRequestService(t)
	ctx := context.Background()

	ack, err := svc.Submit(ctx, &models.SubmitRequest{
		DrugNames:      []string{"Apixaban", "Rivaroxaban"},
		DeliveryMethod: "transdermal",
		Priority:       "high",
	})
	require.NoError(t, err)

	assert.Len(t, ack.RequestIDs, 2)
	assert.Equal(t, ack.RequestIDs[0], ack.RequestID)
	assert.NotEmpty(t, ack.CorrelationID)
	assert.Equal(t, "submitted", ack.Status)
	assert.Equal(t, 2, ack.DrugCount)
	assert.Greater(t, ack.CategoryCount, 0)
	assert.Greater(t, ack.EstimatedCompletionMS, int64(0))
	assert.Contains(t, ack.ResultsURL, ack.RequestID)

	for _, id := range ack.RequestIDs {
		req, err := client.AnalysisRequest.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, ack.CorrelationID, req.CorrelationID)
		assert.Equal(t, 2, req.DrugCount)

		tr, err := client.ProcessTracking.Query().
			Where(processtracking.RequestID(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, processtracking.StatusSubmitted, tr.Status)

		// Every submission is audited.
		count, err := client.AuditEvent.Query().
			Where(
				auditevent.RequestID(id),
				auditevent.EventTypeEQ(audit.EventCreate),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}
}

func TestSubmit_Validation(t *testing.T) {
	svc, _ := newTestRequestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   *models.SubmitRequest
	}{
		{"no drugs", &models.SubmitRequest{}},
		{"blank drug", &models.SubmitRequest{DrugNames: []string{"  "}}},
		{"too many drugs", &models.SubmitRequest{DrugNames: make([]string, 11)}},
		{"bad delivery", &models.SubmitRequest{DrugNames: []string{"Apixaban"}, DeliveryMethod: "oral"}},
		{"bad priority", &models.SubmitRequest{DrugNames: []string{"Apixaban"}, Priority: "asap"}},
		{"bad callback", &models.SubmitRequest{DrugNames: []string{"Apixaban"}, CallbackURL: "not-a-url"}},
		{"unknown category", &models.SubmitRequest{DrugNames: []string{"Apixaban"}, Categories: []string{"astrology"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.in)
			var validErr *ValidationError
			assert.ErrorAs(t, err, &validErr)
		})
	}
}

func TestCancel_RoundTrip(t *testing.T) {
	svc, _ := newTestRequestService(t)
	ctx := context.Background()

	ack, err := svc.Submit(ctx, &models.SubmitRequest{DrugNames: []string{"Apixaban"}})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, ack.RequestID))

	view, err := svc.GetStatus(ctx, ack.RequestID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)
	assert.Nil(t, view.EstimatedCompletion)

	// Second cancel hits a terminal request.
	assert.ErrorIs(t, svc.Cancel(ctx, ack.RequestID), ErrAlreadyTerminal)
}

func TestGetStatus_Unknown(t *testing.T) {
	svc, _ := newTestRequestService(t)
	_, err := svc.GetStatus(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkStatus_ListsMissingIDs(t *testing.T) {
	svc, _ := newTestRequestService(t)
	ctx := context.Background()

	ack, err := svc.Submit(ctx, &models.SubmitRequest{DrugNames: []string{"Apixaban"}})
	require.NoError(t, err)

	resp, err := svc.BulkStatus(ctx, []string{ack.RequestID, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Found)
	assert.Equal(t, 1, resp.NotFound)
	assert.Len(t, resp.Statuses, 1)
	assert.Equal(t, []string{"ghost"}, resp.Missing)
}

func TestGetHistory_StartsAtSubmission(t *testing.T) {
	svc, _ := newTestRequestService(t)
	ctx := context.Background()

	ack, err := svc.Submit(ctx, &models.SubmitRequest{DrugNames: []string{"Apixaban"}})
	require.NoError(t, err)

	entries, err := svc.GetHistory(ctx, ack.RequestID)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "submitted", entries[0].Status)
}
