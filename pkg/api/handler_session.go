package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/pkg/models"
)

// bindDatasetHandler handles POST /session/dataset — replaces the
// session's dataset and rebuilds its retrievers.
func (s *Server) bindDatasetHandler(c *gin.Context) {
	var req BindDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Dataset.Name == "" || len(req.Dataset.Columns) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dataset requires a name and at least one column"})
		return
	}

	ds := req.Dataset
	sess := s.sessions.Get(req.SessionID)
	sess.UpdateDataset(&ds)

	c.JSON(http.StatusOK, gin.H{
		"session_id":  req.SessionID,
		"description": ds.Describe(),
	})
}

// bindUserHandler handles POST /session/user.
func (s *Server) bindUserHandler(c *gin.Context) {
	var req BindUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := s.sessions.Get(req.SessionID)
	sess.SetUser(req.UserID, req.ChatID)

	c.JSON(http.StatusOK, gin.H{"session_id": req.SessionID, "user_id": req.UserID})
}

// setModelHandler handles POST /session/model — switches the session's
// model configuration. The provider must exist in the provider registry.
func (s *Server) setModelHandler(c *gin.Context) {
	var req SetModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.cfg != nil {
		if _, err := s.cfg.GetLLMProvider(req.Provider); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider: " + req.Provider})
			return
		}
	}

	sess := s.sessions.Get(req.SessionID)
	sess.SetModelConfig(models.ModelConfig{
		Provider:    req.Provider,
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})

	c.JSON(http.StatusOK, gin.H{
		"session_id": req.SessionID,
		"provider":   req.Provider,
		"model":      req.Model,
	})
}

// clearSessionHandler handles DELETE /session/:session_id.
func (s *Server) clearSessionHandler(c *gin.Context) {
	s.sessions.Clear(c.Param("session_id"))
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// getOrCreateUserHandler handles POST /users — idempotent account
// resolution by email.
func (s *Server) getOrCreateUserHandler(c *gin.Context) {
	var req GetOrCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := s.users.GetOrCreateByEmail(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
