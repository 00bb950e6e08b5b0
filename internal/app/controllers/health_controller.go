package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
)

// Pinger checks a backing store; nil means the memory driver
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports liveness and readiness
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports service and database status
// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service healthy"
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse} "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	health := dto.HealthResponse{Status: "ok", Database: "memory"}
	if c.db == nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(health, ""))
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if err := c.db.Ping(pingCtx); err != nil {
		logger.FromContext(ctx.Request.Context()).Warn().Err(err).Msg("Database health check failed")
		health.Status = "degraded"
		health.Database = "down"
		ctx.JSON(http.StatusServiceUnavailable, dto.APIResponse{Success: false, Data: health, Timestamp: time.Now()})
		return
	}

	health.Database = "up"
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(health, ""))
}

// Ping is a plain liveness check
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
