package provider

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindAuthError, classifyStatus(http.StatusUnauthorized))
	assert.Equal(t, KindAuthError, classifyStatus(http.StatusForbidden))
	assert.Equal(t, KindRateLimited, classifyStatus(http.StatusTooManyRequests))
	assert.Equal(t, KindBadRequest, classifyStatus(http.StatusBadRequest))
	assert.Equal(t, KindBadRequest, classifyStatus(http.StatusNotFound))
	assert.Equal(t, KindServerError, classifyStatus(http.StatusInternalServerError))
	assert.Equal(t, KindServerError, classifyStatus(http.StatusBadGateway))
}

func TestIsTransient(t *testing.T) {
	transient := []ErrorKind{KindNetworkError, KindServerError, KindRateLimited}
	fatal := []ErrorKind{KindAuthError, KindBadRequest, KindDecodeError}

	for _, k := range transient {
		assert.True(t, (&Error{Kind: k}).IsTransient(), "kind %s", k)
	}
	for _, k := range fatal {
		assert.False(t, (&Error{Kind: k}).IsTransient(), "kind %s", k)
	}
}

func TestRetryAfterHint(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, time.Duration(0), retryAfterHint(h))

	h.Set("Retry-After", "5")
	assert.Equal(t, 5*time.Second, retryAfterHint(h))

	h.Set("Retry-After", "garbage")
	assert.Equal(t, time.Duration(0), retryAfterHint(h))
}
