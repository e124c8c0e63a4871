package scheduler

import (
	"context"
)

// Work is a unit of execution submitted to the pool. The context is
// canceled when the future is stopped or the scheduler closes.
type Work[T any] func(ctx context.Context) (T, error)

// Result pairs the value produced by a Work function with its error.
type Result[T any] struct {
	Data T
	Err  error
}

// Future is a handle on work that has been submitted but may not have
// run yet.
type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

// C returns the channel the result is delivered on. It receives
// exactly one value.
func (f *Future[T]) C() chan T {
	return f.input
}

// Stop cancels the context passed to the work function.
func (f *Future[T]) Stop() {
	f.cancel()
}
