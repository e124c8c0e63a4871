// Package v1 defines the wire types of the repeaterd HTTP API.
package v1

// LogEntry is one captured log record as served to the UI.
type LogEntry struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
}

type LogsResponse struct {
	Logs []LogEntry `json:"logs"`
}

// NodeInfo identifies the repeater node.
type NodeInfo struct {
	Name          string `json:"name"`
	PublicKey     string `json:"publicKey"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// AdvertStatus reports the most recent advert broadcast.
type AdvertStatus struct {
	Status   string  `json:"status"`
	LastSent *string `json:"lastSent,omitempty"`
	Error    *string `json:"error,omitempty"`
}

// DaemonStatus reports the supervised daemon process.
type DaemonStatus struct {
	State         string  `json:"state"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
	Error         *string `json:"error,omitempty"`
}

// WebConfig mirrors the web section of the configuration file.
type WebConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	WebPath     string `json:"webPath"`
	CorsEnabled bool   `json:"corsEnabled"`
}

// ConfigView is the sanitized configuration served to the UI.
type ConfigView struct {
	NodeName  string    `json:"nodeName"`
	LogLevel  string    `json:"logLevel"`
	LogFormat string    `json:"logFormat"`
	Web       WebConfig `json:"web"`
}

// UpdateConfigRequest carries the editable configuration subset.
type UpdateConfigRequest struct {
	Web WebConfig `json:"web"`
}
