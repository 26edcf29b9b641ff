package handlers

import (
	"context"
	"net/http"
	"time"

	"room-server/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	db  db.Database
	log *zap.Logger
}

func NewHealthHandler(database db.Database, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  database,
		log: log,
	}
}

// Health handles GET /health. It answers 503 while the database is unreachable.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("health check: database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "UNAVAILABLE",
			"database": "down",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"database": "up",
	})
}
