package tracking

import (
	"testing"
	"time"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		status    processtracking.Status
		total     int
		completed int
		want      int
	}{
		{processtracking.StatusSubmitted, 6, 0, 0},
		{processtracking.StatusCollecting, 6, 0, 20},
		{processtracking.StatusCollecting, 6, 3, 50},
		{processtracking.StatusCollecting, 6, 6, 80},
		{processtracking.StatusVerifying, 6, 0, 80},
		{processtracking.StatusVerifying, 6, 6, 90},
		{processtracking.StatusMerging, 6, 6, 95},
		{processtracking.StatusSummarizing, 6, 6, 99},
		{processtracking.StatusCompleted, 6, 6, 100},
	}
	for _, tc := range tests {
		got := Progress(tc.status, tc.total, tc.completed)
		assert.Equal(t, tc.want, got, "status=%s completed=%d/%d", tc.status, tc.completed, tc.total)
	}
}

func TestProgress_TerminalFailureLeavesProgress(t *testing.T) {
	assert.Equal(t, -1, Progress(processtracking.StatusFailed, 6, 3))
	assert.Equal(t, -1, Progress(processtracking.StatusCancelled, 6, 3))
}

func TestProgress_ZeroTotal(t *testing.T) {
	assert.Equal(t, 20, Progress(processtracking.StatusCollecting, 0, 0))
}

func TestProgress_RatioClamped(t *testing.T) {
	// completed > total must not push progress past the stage ceiling
	assert.Equal(t, 80, Progress(processtracking.StatusCollecting, 4, 9))
}

func TestCanTransition(t *testing.T) {
	legal := [][2]processtracking.Status{
		{processtracking.StatusSubmitted, processtracking.StatusCollecting},
		{processtracking.StatusCollecting, processtracking.StatusVerifying},
		{processtracking.StatusVerifying, processtracking.StatusMerging},
		{processtracking.StatusMerging, processtracking.StatusSummarizing},
		{processtracking.StatusSummarizing, processtracking.StatusCompleted},
		{processtracking.StatusSubmitted, processtracking.StatusCancelled},
		{processtracking.StatusCollecting, processtracking.StatusFailed},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
	}

	illegal := [][2]processtracking.Status{
		{processtracking.StatusSubmitted, processtracking.StatusCompleted},
		{processtracking.StatusSubmitted, processtracking.StatusVerifying},
		{processtracking.StatusCollecting, processtracking.StatusSummarizing},
		{processtracking.StatusCompleted, processtracking.StatusCollecting},
		{processtracking.StatusFailed, processtracking.StatusSubmitted},
		{processtracking.StatusCancelled, processtracking.StatusCompleted},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(processtracking.StatusCompleted))
	assert.True(t, IsTerminal(processtracking.StatusFailed))
	assert.True(t, IsTerminal(processtracking.StatusCancelled))
	assert.False(t, IsTerminal(processtracking.StatusSubmitted))
	assert.False(t, IsTerminal(processtracking.StatusCollecting))
}

func TestEstimateCompletion(t *testing.T) {
	tracker := NewTracker(nil, nil, config.DefaultStagesConfig())

	// submitted, single drug: (8+2+3+2) * 1.2 = 18 minutes
	before := time.Now().UTC()
	eta := tracker.EstimateCompletion(processtracking.StatusSubmitted, 1)
	want := 18 * time.Minute
	assert.InDelta(t, float64(want), float64(eta.Sub(before)), float64(2*time.Second))

	// merging, single drug: (3+2) * 1.2 = 6 minutes
	before = time.Now().UTC()
	eta = tracker.EstimateCompletion(processtracking.StatusMerging, 1)
	assert.InDelta(t, float64(6*time.Minute), float64(eta.Sub(before)), float64(2*time.Second))

	// submitted, three drugs: 15 * (1 + 0.5*2) * 1.2 = 36 minutes
	before = time.Now().UTC()
	eta = tracker.EstimateCompletion(processtracking.StatusSubmitted, 3)
	assert.InDelta(t, float64(36*time.Minute), float64(eta.Sub(before)), float64(2*time.Second))
}

func TestProjectHistory(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	collStart := base.Add(1 * time.Minute)
	collDone := base.Add(9 * time.Minute)
	verStart := collDone

	tr := &ent.ProcessTracking{
		Status:                processtracking.StatusVerifying,
		CreatedAt:             base,
		CollectingStartedAt:   &collStart,
		CollectingCompletedAt: &collDone,
		VerifyingStartedAt:    &verStart,
	}

	entries := ProjectHistory(tr)
	require.Len(t, entries, 3)

	assert.Equal(t, "submitted", entries[0].Status)
	assert.Equal(t, base, entries[0].Timestamp)

	assert.Equal(t, "collecting", entries[1].Status)
	require.NotNil(t, entries[1].DurationMS)
	assert.Equal(t, int64(8*60*1000), *entries[1].DurationMS)

	assert.Equal(t, "verifying", entries[2].Status)
	assert.Nil(t, entries[2].DurationMS, "open stage has no duration yet")
}

func TestProjectHistory_Terminal(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	done := base.Add(20 * time.Minute)
	tr := &ent.ProcessTracking{
		Status:    processtracking.StatusCancelled,
		CreatedAt: base,
		UpdatedAt: done,
	}

	entries := ProjectHistory(tr)
	require.Len(t, entries, 2)
	assert.Equal(t, "cancelled", entries[1].Status)
	assert.Equal(t, done, entries[1].Timestamp)
}
