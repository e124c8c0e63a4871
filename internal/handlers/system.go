package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/meshforge/repeaterd/api/v1"
	"github.com/meshforge/repeaterd/internal/models"
)

// GetStats returns the daemon's current statistics
// (GET /stats)
func (h *Handler) GetStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats not available"})
		return
	}

	stats, err := h.stats(c.Request.Context())
	if err != nil {
		zap.S().Named("api").Errorw("failed to get stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLogs returns the most recent captured log entries, oldest first
// (GET /logs)
func (h *Handler) GetLogs(c *gin.Context) {
	entries := h.capture.Snapshot()

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if limit < len(entries) {
			entries = entries[len(entries)-limit:]
		}
	}

	c.JSON(http.StatusOK, v1.NewLogsResponse(entries))
}

// GetInfo returns the node identity and uptime
// (GET /info)
func (h *Handler) GetInfo(c *gin.Context) {
	info := models.NodeInfo{
		Name:      h.cfg.NodeName,
		PublicKey: h.cfg.PublicKey,
		Version:   h.version,
		Uptime:    time.Since(h.startedAt),
	}
	c.JSON(http.StatusOK, v1.NewNodeInfo(info))
}
