package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/owais-symtera/cognito-sub001/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyTerminal) {
		c.JSON(http.StatusConflict, gin.H{"error": "request is already in a terminal state"})
		return
	}
	if errors.Is(err, services.ErrProcessing) {
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "processing",
			"message": "results are not ready yet",
		})
		return
	}
	if errors.Is(err, services.ErrRequestFailed) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	slog.Error("Unexpected service error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
