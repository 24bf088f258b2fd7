package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/owais-symtera/cognito-sub001/pkg/models"
)

// submitHandler handles POST /api/v1/requests.
func (s *Server) submitHandler(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.CorrelationID == "" {
		req.CorrelationID = c.GetString("correlation_id")
	}

	ack, err := s.requests.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ack)
}

// getRequestHandler handles GET /api/v1/requests/:id.
func (s *Server) getRequestHandler(c *gin.Context) {
	req, err := s.requests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// getStatusHandler handles GET /api/v1/requests/:id/status.
func (s *Server) getStatusHandler(c *gin.Context) {
	view, err := s.requests.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// getHistoryHandler handles GET /api/v1/requests/:id/history.
func (s *Server) getHistoryHandler(c *gin.Context) {
	entries, err := s.requests.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"request_id": c.Param("id"),
		"history":    entries,
	})
}

// bulkStatusRequest is the body for POST /api/v1/requests/bulk_status.
type bulkStatusRequest struct {
	RequestIDs []string `json:"request_ids"`
}

// bulkStatusHandler handles POST /api/v1/requests/bulk_status.
func (s *Server) bulkStatusHandler(c *gin.Context) {
	var body bulkStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	resp, err := s.requests.BulkStatus(c.Request.Context(), body.RequestIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// cancelHandler handles POST /api/v1/requests/:id/cancel.
func (s *Server) cancelHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.requests.Cancel(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"request_id": id,
		"status":     "cancelled",
		"message":    "request cancellation accepted",
	})
}

// listRequestsHandler handles GET /api/v1/requests.
func (s *Server) listRequestsHandler(c *gin.Context) {
	filters := &models.RequestFilters{
		Status:         c.Query("status"),
		DrugName:       c.Query("drug_name"),
		DeliveryMethod: c.Query("delivery_method"),
		Priority:       c.Query("priority"),
		CorrelationID:  c.Query("correlation_id"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after: must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_before: must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}

	resp, err := s.requests.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
