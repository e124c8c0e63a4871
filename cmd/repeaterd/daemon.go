package main

import (
	"context"
	"sync"
	"time"

	"github.com/meshforge/repeaterd/internal/models"
)

// localDaemon is the in-process placeholder for the repeater radio
// daemon. It tracks uptime and counters so the web UI has real data to
// show; the radio integration replaces SendAdvert and Stats.
type localDaemon struct {
	mu        sync.Mutex
	startedAt time.Time
	restarts  int
	adverts   int
}

func newLocalDaemon() *localDaemon {
	return &localDaemon{startedAt: time.Now()}
}

func (d *localDaemon) Status() models.DaemonStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.DaemonStatus{
		State:  models.DaemonStateRunning,
		Uptime: time.Since(d.startedAt),
	}
}

func (d *localDaemon) Restart(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.startedAt = time.Now()
	d.restarts++
	return nil
}

func (d *localDaemon) SendAdvert(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.adverts++
	return nil
}

func (d *localDaemon) Stats(ctx context.Context) (map[string]any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return map[string]any{
		"uptimeSeconds": int64(time.Since(d.startedAt).Seconds()),
		"restarts":      d.restarts,
		"advertsSent":   d.adverts,
	}, nil
}
