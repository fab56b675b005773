package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/pkg/orchestrator"
	"github.com/autoanalyst/analyst/pkg/queue"
	"github.com/autoanalyst/analyst/pkg/services"
	"github.com/autoanalyst/analyst/pkg/session"
)

// timeoutMessage is the user-facing detail for requests that exceed the
// interactive request timeout.
const timeoutMessage = "Request timed out. Please try a simpler query."

// noDatasetMessage is returned when a chat operation arrives before a
// dataset has been bound to the session.
const noDatasetMessage = "No dataset is loaded for this session. Upload a dataset before chatting."

// respondError maps service- and orchestration-layer errors to HTTP
// error responses.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	var unknownAgent *orchestrator.UnknownAgentError
	if errors.As(err, &unknownAgent) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            unknownAgent.Error(),
			"available_agents": unknownAgent.Available,
		})
		return
	}

	switch {
	case errors.Is(err, session.ErrNoDataset):
		c.JSON(http.StatusBadRequest, gin.H{"error": noDatasetMessage})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, queue.ErrQueueFull):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "analysis queue is full, try again later"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": timeoutMessage})
	default:
		// Unexpected error
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
