package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/owais-symtera/cognito-sub001/pkg/ratelimit"
)

func newTestRouter(s *Server, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(correlationID())
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/test", chain...)
	return r
}

func TestCorrelationID_Minted(t *testing.T) {
	r := newTestRouter(&Server{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(correlationHeader))
}

func TestCorrelationID_Propagated(t *testing.T) {
	r := newTestRouter(&Server{})
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(correlationHeader, "corr-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "corr-123", w.Header().Get(correlationHeader))
}

func TestAPIKeyAuth_Disabled(t *testing.T) {
	s := &Server{}
	r := newTestRouter(s, s.apiKeyAuth())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	s := &Server{apiKeys: map[string]struct{}{"secret": {}}}
	r := newTestRouter(s, s.apiKeyAuth())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuth_WrongKey(t *testing.T) {
	s := &Server{apiKeys: map[string]struct{}{"secret": {}}}
	r := newTestRouter(s, s.apiKeyAuth())
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("X-API-Key", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	s := &Server{apiKeys: map[string]struct{}{"secret": {}}}
	r := newTestRouter(s, s.apiKeyAuth())
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("X-API-Key", "secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimited_DeniesOverLimit(t *testing.T) {
	s := &Server{limiter: ratelimit.NewMemoryLimiter(2, time.Minute)}
	r := newTestRouter(s, s.rateLimited())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimited_SeparateKeys(t *testing.T) {
	s := &Server{limiter: ratelimit.NewMemoryLimiter(1, time.Minute)}
	r := newTestRouter(s, s.rateLimited())

	first := httptest.NewRequest(http.MethodPost, "/test", nil)
	first.Header.Set("X-API-Key", "tenant-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	second := httptest.NewRequest(http.MethodPost, "/test", nil)
	second.Header.Set("X-API-Key", "tenant-b")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	assert.Equal(t, http.StatusOK, w.Code)
}
