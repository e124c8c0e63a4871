package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/meshforge/repeaterd/api/v1"
	srvErrors "github.com/meshforge/repeaterd/pkg/errors"
)

// SendAdvert schedules an advert broadcast
// (POST /advert)
func (h *Handler) SendAdvert(c *gin.Context) {
	if err := h.advertSrv.Broadcast(); err != nil {
		if srvErrors.IsAdvertInFlightError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("api").Errorw("failed to schedule advert", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule advert"})
		return
	}
	c.JSON(http.StatusAccepted, v1.NewAdvertStatus(h.advertSrv.Status()))
}

// GetAdvertStatus returns the outcome of the most recent broadcast
// (GET /advert)
func (h *Handler) GetAdvertStatus(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewAdvertStatus(h.advertSrv.Status()))
}
