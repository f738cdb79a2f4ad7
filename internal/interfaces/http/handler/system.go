package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/interfaces/http/dto"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	BaseHandler
	db      Pinger
	version string
}

func NewSystemHandler(db Pinger, version string, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: NewBaseHandler(logger),
		db:          db,
		version:     version,
	}
}

func (h *SystemHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/ping", h.Ping)
}

// Health is mounted outside the versioned API so load balancers can
// reach it without credentials.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	httpStatus := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		h.logger.Warn("health check failed", zap.Error(err))
	}

	c.JSON(httpStatus, dto.NewSuccessResponse(gin.H{
		"status":  status,
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}))
}

func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}
