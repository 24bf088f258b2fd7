package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/test/util"
)

func TestHealth_ReportsBacklog(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := NewClientFromEnt(entClient, db)
	ctx := context.Background()

	for _, status := range []processtracking.Status{
		processtracking.StatusSubmitted,
		processtracking.StatusSubmitted,
		processtracking.StatusCollecting,
	} {
		reqID := uuid.NewString()
		_, err := entClient.AnalysisRequest.Create().
			SetID(reqID).
			SetDrugName("Apixaban").
			SetCorrelationID(uuid.NewString()).
			Save(ctx)
		require.NoError(t, err)
		_, err = entClient.ProcessTracking.Create().
			SetID(uuid.NewString()).
			SetRequestID(reqID).
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
	}

	h, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, 2, h.QueueDepth)
	assert.Equal(t, 1, h.ActiveRequests)
	assert.Greater(t, h.Pool.Open, 0)
}
