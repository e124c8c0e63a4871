package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/meshforge/repeaterd/api/v1"
)

// GetDaemon returns the supervised daemon's status
// (GET /daemon)
func (h *Handler) GetDaemon(c *gin.Context) {
	if h.daemonCtl == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "daemon control not available"})
		return
	}
	c.JSON(http.StatusOK, v1.NewDaemonStatus(h.daemonCtl.Status()))
}

// RestartDaemon schedules a daemon restart
// (POST /daemon/restart)
func (h *Handler) RestartDaemon(c *gin.Context) {
	if h.daemonCtl == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "daemon control not available"})
		return
	}
	h.daemonCtl.Restart()
	c.JSON(http.StatusAccepted, gin.H{"status": "restarting"})
}
