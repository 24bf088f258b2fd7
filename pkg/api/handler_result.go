package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getResultsHandler handles GET /api/v1/requests/:id/results. Completed
// requests get the composed document; in-flight ones get 202 via the error
// mapper.
func (s *Server) getResultsHandler(c *gin.Context) {
	out, err := s.results.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Document)
}
