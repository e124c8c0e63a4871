package services

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/meshforge/repeaterd/internal/models"
	srvErrors "github.com/meshforge/repeaterd/pkg/errors"
	"github.com/meshforge/repeaterd/pkg/scheduler"
)

const advertMaxAttempts = 3

// AdvertSender broadcasts a node advert over the mesh. Supplied by the
// daemon at construction; the web layer never touches the radio
// directly.
type AdvertSender func(ctx context.Context) error

// Advert dispatches advert broadcasts onto the scheduler so the
// request handler returns immediately, and tracks the outcome of the
// most recent broadcast.
type Advert struct {
	send      AdvertSender
	scheduler *scheduler.Scheduler
	logger    *zap.SugaredLogger

	mu     sync.Mutex
	status models.AdvertStatus
}

func NewAdvertService(s *scheduler.Scheduler, send AdvertSender) *Advert {
	return &Advert{
		send:      send,
		scheduler: s,
		logger:    zap.S().Named("advert"),
		status:    models.AdvertStatus{State: models.AdvertStateIdle},
	}
}

// Broadcast schedules one advert transmission with retries. Only one
// broadcast may be in flight at a time; a second request while sending
// returns AdvertInFlightError.
func (a *Advert) Broadcast() error {
	a.mu.Lock()
	if a.status.State == models.AdvertStateSending {
		a.mu.Unlock()
		return srvErrors.NewAdvertInFlightError()
	}
	a.status.State = models.AdvertStateSending
	a.status.Error = nil
	a.mu.Unlock()

	future := a.scheduler.AddWork(func(ctx context.Context) (any, error) {
		return backoff.Retry(ctx, func() (any, error) {
			return nil, a.send(ctx)
		}, backoff.WithMaxTries(advertMaxAttempts))
	})

	go func() {
		result := <-future.C()

		a.mu.Lock()
		defer a.mu.Unlock()
		if result.Err != nil {
			a.status.State = models.AdvertStateError
			a.status.Error = result.Err
			a.logger.Errorw("advert broadcast failed", "error", result.Err)
			return
		}
		a.status.State = models.AdvertStateSent
		a.status.LastSent = time.Now()
		a.logger.Infow("advert broadcast sent")
	}()

	return nil
}

// Status returns the outcome of the most recent broadcast.
func (a *Advert) Status() models.AdvertStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}
