package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *gorm.DB
	appName string
	version string
	started time.Time
}

func NewSystemHandler(db *gorm.DB, appName, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		appName: appName,
		version: version,
		started: time.Now(),
	}
}

// RegisterRoutes registers system routes on the root router
func (h *SystemHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health reports liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"app":     h.appName,
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready reports readiness, including database connectivity
func (h *SystemHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		h.InternalError(c, "database handle unavailable")
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		h.InternalError(c, "database unreachable")
		return
	}
	h.Success(c, gin.H{"status": "ready"})
}
