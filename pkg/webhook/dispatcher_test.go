package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDispatcher(maxRetries int) *Dispatcher {
	d := NewDispatcher(maxRetries)
	d.initialInterval = time.Millisecond
	return d
}

func TestDeliver_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := testDispatcher(3)
	err := d.Deliver(context.Background(), srv.URL, map[string]any{"request_id": "req-1"})
	require.NoError(t, err)
	assert.Equal(t, "req-1", got["request_id"])
}

func TestDeliver_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := testDispatcher(3)
	err := d.Deliver(context.Background(), srv.URL, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_4xxIsTerminal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	d := testDispatcher(3)
	err := d.Deliver(context.Background(), srv.URL, map[string]any{})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDeliver_GivesUpAfterBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := testDispatcher(2)
	err := d.Deliver(context.Background(), srv.URL, map[string]any{})
	require.Error(t, err)
	// first attempt plus two retries
	assert.Equal(t, int32(3), calls.Load())
}
