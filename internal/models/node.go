package models

import "time"

// NodeInfo identifies this repeater to the web UI.
type NodeInfo struct {
	Name      string
	PublicKey string
	Version   string
	Uptime    time.Duration
}
