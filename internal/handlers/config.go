package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/meshforge/repeaterd/api/v1"
	"github.com/meshforge/repeaterd/internal/config"
)

// GetConfig returns the sanitized configuration
// (GET /config)
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewConfigView(h.cfg))
}

// UpdateConfig persists a new web section to the configuration file.
// The running server keeps its current settings; a restart applies the
// change.
// (PUT /config)
func (h *Handler) UpdateConfig(c *gin.Context) {
	if h.configPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no configuration file in use"})
		return
	}

	var req v1.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated := *h.cfg
	req.Web.ApplyTo(&updated)
	if err := updated.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.Save(&updated, h.configPath); err != nil {
		zap.S().Named("api").Errorw("failed to save configuration", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save configuration"})
		return
	}

	c.JSON(http.StatusOK, v1.NewConfigView(&updated))
}
