package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meshforge/repeaterd/internal/config"
	"github.com/meshforge/repeaterd/internal/logcapture"
	"github.com/meshforge/repeaterd/internal/services"
)

// StatsGetter returns the daemon's current statistics. The payload is
// opaque to the web layer and serialized as-is.
type StatsGetter func(ctx context.Context) (map[string]any, error)

// Handler is the API delegate mounted under /api.
type Handler struct {
	stats      StatsGetter
	advertSrv  *services.Advert
	daemonCtl  *services.DaemonControl
	cfg        *config.Configuration
	configPath string
	capture    *logcapture.Buffer
	version    string
	startedAt  time.Time
}

func New(
	stats StatsGetter,
	advertSrv *services.Advert,
	daemonCtl *services.DaemonControl,
	cfg *config.Configuration,
	configPath string,
	capture *logcapture.Buffer,
	version string,
) *Handler {
	return &Handler{
		stats:      stats,
		advertSrv:  advertSrv,
		daemonCtl:  daemonCtl,
		cfg:        cfg,
		configPath: configPath,
		capture:    capture,
		version:    version,
		startedAt:  time.Now(),
	}
}

// RegisterRoutes mounts all API endpoints on the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.GetStats)
	api.GET("/logs", h.GetLogs)
	api.GET("/info", h.GetInfo)
	api.GET("/advert", h.GetAdvertStatus)
	api.POST("/advert", h.SendAdvert)
	api.GET("/config", h.GetConfig)
	api.PUT("/config", h.UpdateConfig)
	api.GET("/daemon", h.GetDaemon)
	api.POST("/daemon/restart", h.RestartDaemon)
}
