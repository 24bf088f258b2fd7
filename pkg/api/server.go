// Package api exposes the HTTP surface: submission, status, cancellation,
// results, health, and Prometheus metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/database"
	"github.com/owais-symtera/cognito-sub001/pkg/queue"
	"github.com/owais-symtera/cognito-sub001/pkg/ratelimit"
	"github.com/owais-symtera/cognito-sub001/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	requests *services.RequestService
	results  *services.ResultService
	limiter  ratelimit.Limiter
	pool     *queue.WorkerPool

	// apiKeys are the accepted X-API-Key values. Empty disables auth
	// (local development).
	apiKeys map[string]struct{}

	httpSrv *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	requests *services.RequestService,
	results *services.ResultService,
	limiter ratelimit.Limiter,
	pool *queue.WorkerPool,
	apiKeys []string,
) *Server {
	keys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}
	return &Server{
		cfg:      cfg,
		db:       db,
		requests: requests,
		results:  results,
		limiter:  limiter,
		pool:     pool,
		apiKeys:  keys,
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(correlationID())
	r.Use(securityHeaders())

	// Unauthenticated operational endpoints.
	r.GET("/health", s.healthHandler)
	r.GET("/api/v1/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(s.apiKeyAuth())
	{
		v1.POST("/requests", s.rateLimited(), s.submitHandler)
		v1.GET("/requests", s.listRequestsHandler)
		v1.GET("/requests/:id", s.getRequestHandler)
		v1.GET("/requests/:id/status", s.getStatusHandler)
		v1.GET("/requests/:id/history", s.getHistoryHandler)
		v1.GET("/requests/:id/results", s.getResultsHandler)
		v1.POST("/requests/:id/cancel", s.cancelHandler)
		v1.POST("/requests/bulk_status", s.bulkStatusHandler)
	}
	return r
}

// Start begins serving on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
