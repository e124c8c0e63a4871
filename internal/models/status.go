package models

import (
	"fmt"
	"time"
)

type DaemonState string

const (
	DaemonStateRunning    DaemonState = "running"
	DaemonStateRestarting DaemonState = "restarting"
	DaemonStateStopped    DaemonState = "stopped"
	DaemonStateError      DaemonState = "error"
)

func ParseDaemonState(s string) (DaemonState, error) {
	switch s {
	case "running":
		return DaemonStateRunning, nil
	case "restarting":
		return DaemonStateRestarting, nil
	case "stopped":
		return DaemonStateStopped, nil
	case "error":
		return DaemonStateError, nil
	default:
		return "", fmt.Errorf("invalid daemon state: %s", s)
	}
}

// DaemonStatus describes the supervised repeater daemon.
type DaemonStatus struct {
	State  DaemonState
	Uptime time.Duration
	Error  error
}

type AdvertState string

const (
	AdvertStateIdle    AdvertState = "idle"
	AdvertStateSending AdvertState = "sending"
	AdvertStateSent    AdvertState = "sent"
	AdvertStateError   AdvertState = "error"
)

// AdvertStatus is the outcome of the most recent advert broadcast.
type AdvertStatus struct {
	State    AdvertState
	LastSent time.Time
	Error    error
}
