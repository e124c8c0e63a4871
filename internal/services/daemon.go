package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/meshforge/repeaterd/internal/models"
	"github.com/meshforge/repeaterd/pkg/scheduler"
)

// Daemon abstracts the supervised repeater process. The web layer only
// reads its status and asks for restarts; supervision itself lives
// with the host process.
type Daemon interface {
	Status() models.DaemonStatus
	Restart(ctx context.Context) error
}

// DaemonControl runs daemon operations off the request path.
type DaemonControl struct {
	daemon    Daemon
	scheduler *scheduler.Scheduler
	logger    *zap.SugaredLogger
}

func NewDaemonControl(s *scheduler.Scheduler, daemon Daemon) *DaemonControl {
	return &DaemonControl{
		daemon:    daemon,
		scheduler: s,
		logger:    zap.S().Named("daemon"),
	}
}

func (d *DaemonControl) Status() models.DaemonStatus {
	return d.daemon.Status()
}

// Restart schedules a daemon restart and returns immediately. The
// outcome is observable through Status.
func (d *DaemonControl) Restart() {
	future := d.scheduler.AddWork(func(ctx context.Context) (any, error) {
		return nil, d.daemon.Restart(ctx)
	})
	go func() {
		result := <-future.C()
		if result.Err != nil {
			d.logger.Errorw("daemon restart failed", "error", result.Err)
			return
		}
		d.logger.Infow("daemon restarted")
	}()
}
