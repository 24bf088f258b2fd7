package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/owais-symtera/cognito-sub001/pkg/database"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthResponse is returned by GET /health.
type healthResponse struct {
	Status        string                 `json:"status"`
	Database      *database.HealthStatus `json:"database"`
	PodID         string                 `json:"pod_id,omitempty"`
	Configuration configurationStats     `json:"configuration"`
	Error         string                 `json:"error,omitempty"`
}

// configurationStats contains counts of loaded configuration items.
type configurationStats struct {
	Categories int `json:"categories"`
	Providers  int `json:"providers"`
	Styles     int `json:"styles"`
	RubricRows int `json:"rubric_rows"`
}

// healthHandler handles GET /health. Only the server's own dependencies are
// checked; provider reachability is excluded so a flaky upstream does not
// cause restarts.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats := s.cfg.Stats()
	resp := &healthResponse{
		Status: healthStatusHealthy,
		Configuration: configurationStats{
			Categories: stats.Categories,
			Providers:  stats.Providers,
			Styles:     stats.Styles,
			RubricRows: stats.RubricRows,
		},
	}
	if s.pool != nil {
		resp.PodID = s.pool.PodID()
	}

	dbHealth, err := s.db.Health(reqCtx)
	resp.Database = dbHealth
	if err != nil {
		resp.Status = healthStatusUnhealthy
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
