package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/pkg/database"
	"github.com/autoanalyst/analyst/pkg/version"
)

// healthHandler handles GET /health — database connectivity plus the
// worker pool's live state.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{
		"status":  "healthy",
		"version": version.Full(),
	}
	if s.pool != nil {
		body["queue"] = s.pool.Stats()
	}

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		body["database"] = dbHealth
		if err != nil {
			body["status"] = "unhealthy"
			body["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}

	c.JSON(http.StatusOK, body)
}
