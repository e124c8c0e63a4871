package scheduler

import (
	"context"
	"fmt"
	"sync"
)

const pendingBacklog = 128

type request struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

// Scheduler runs submitted work on a fixed pool of workers. It is the
// daemon's shared execution handle: anything that must not block a
// request handler (advert broadcasts, daemon restarts) goes through it.
type Scheduler struct {
	work    chan request
	mainCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	once    sync.Once
}

// NewScheduler starts nbWorkers workers and returns the pool.
func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers <= 0 {
		nbWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		work:    make(chan request, pendingBacklog),
		mainCtx: ctx,
		cancel:  cancel,
	}
	for range nbWorkers {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// AddWork submits fn for execution and returns a future carrying its
// result. After Close, the future resolves immediately with
// context.Canceled.
func (s *Scheduler) AddWork(fn Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.mainCtx.Done():
		c <- Result[any]{Err: context.Canceled}
	case s.work <- request{fn: fn, c: c, ctx: ctx}:
	}

	return NewFuture(c, cancel)
}

// Close cancels all running work and waits for the workers to exit.
// Safe to call more than once.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.cancel()
		s.wg.Wait()
	})
}

func (s *Scheduler) worker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.mainCtx.Done():
			s.drain()
			return
		case r := <-s.work:
			execute(r)
		}
	}
}

// drain resolves work that was queued but never started, so no future
// is left hanging after shutdown.
func (s *Scheduler) drain() {
	for {
		select {
		case r := <-s.work:
			r.c <- Result[any]{Err: context.Canceled}
		default:
			return
		}
	}
}

func execute(r request) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[any]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}
