package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/pkg/services"
)

// upsertFeedbackHandler handles POST /feedback — records a rating for
// one assistant message, overwriting any earlier rating.
func (s *Server) upsertFeedbackHandler(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := s.feedback.Upsert(c.Request.Context(), services.FeedbackInput{
		MessageID:     req.MessageID,
		Rating:        req.Rating,
		ModelName:     req.ModelName,
		ModelProvider: req.ModelProvider,
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// getFeedbackHandler handles GET /feedback/:message_id.
func (s *Server) getFeedbackHandler(c *gin.Context) {
	messageID, ok := pathInt(c, "message_id")
	if !ok {
		return
	}

	feedback, err := s.feedback.GetByMessage(c.Request.Context(), messageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
