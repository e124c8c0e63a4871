package v1

import (
	"time"

	"github.com/meshforge/repeaterd/internal/config"
	"github.com/meshforge/repeaterd/internal/logcapture"
	"github.com/meshforge/repeaterd/internal/models"
)

// NewLogEntry converts a captured entry to its API form.
func NewLogEntry(e logcapture.Entry) LogEntry {
	return LogEntry{
		Message:   e.Message,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Level:     e.Level,
	}
}

func NewLogsResponse(entries []logcapture.Entry) LogsResponse {
	logs := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, NewLogEntry(e))
	}
	return LogsResponse{Logs: logs}
}

func NewNodeInfo(info models.NodeInfo) NodeInfo {
	return NodeInfo{
		Name:          info.Name,
		PublicKey:     info.PublicKey,
		Version:       info.Version,
		UptimeSeconds: int64(info.Uptime.Seconds()),
	}
}

func NewAdvertStatus(status models.AdvertStatus) AdvertStatus {
	a := AdvertStatus{Status: string(status.State)}
	if !status.LastSent.IsZero() {
		ts := status.LastSent.Format(time.RFC3339)
		a.LastSent = &ts
	}
	if status.Error != nil {
		e := status.Error.Error()
		a.Error = &e
	}
	return a
}

func NewDaemonStatus(status models.DaemonStatus) DaemonStatus {
	d := DaemonStatus{
		State:         string(status.State),
		UptimeSeconds: int64(status.Uptime.Seconds()),
	}
	if status.Error != nil {
		e := status.Error.Error()
		d.Error = &e
	}
	return d
}

func NewConfigView(cfg *config.Configuration) ConfigView {
	return ConfigView{
		NodeName:  cfg.NodeName,
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
		Web: WebConfig{
			Host:        cfg.Web.Host,
			Port:        cfg.Web.Port,
			WebPath:     cfg.Web.WebPath,
			CorsEnabled: cfg.Web.CORSEnabled,
		},
	}
}

// ApplyTo copies the editable fields onto a configuration value.
func (w WebConfig) ApplyTo(cfg *config.Configuration) {
	cfg.Web.Host = w.Host
	cfg.Web.Port = w.Port
	cfg.Web.WebPath = w.WebPath
	cfg.Web.CORSEnabled = w.CorsEnabled
}
