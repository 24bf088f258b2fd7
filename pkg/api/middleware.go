package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/owais-symtera/cognito-sub001/pkg/metrics"
)

const correlationHeader = "X-Correlation-ID"

// correlationID propagates the caller's correlation ID, minting one when the
// header is absent. The ID is echoed on the response and stored in the
// request context.
func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("correlation_id", id)
		c.Header(correlationHeader, id)
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// apiKeyAuth rejects calls without a recognized X-API-Key. An empty key set
// disables the check.
func (s *Server) apiKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(s.apiKeys) == 0 {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}
		if _, ok := s.apiKeys[key]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}

// rateLimited enforces the submission rate limit per caller. Denied calls get
// 429 with a Retry-After header.
func (s *Server) rateLimited() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)
		decision, err := s.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// The limiter already fell back to memory; an error here means
			// both backends failed. Fail open rather than block submissions.
			c.Next()
			return
		}
		if !decision.Allowed {
			metrics.RateLimited.WithLabelValues(key).Inc()
			retryAfter := int(decision.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":               "rate limit exceeded",
				"retry_after_seconds": retryAfter,
			})
			return
		}
		c.Next()
	}
}

// rateLimitKey identifies the caller for rate limiting. API key first, then
// client IP.
func rateLimitKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	return c.ClientIP()
}
