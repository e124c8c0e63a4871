// Package scheduler implements a worker pool for executing async work with futures.
//
// The scheduler keeps a fixed set of worker goroutines reading from a
// buffered work channel. Work is submitted with AddWork and returns a
// Future used to receive the result or cancel the work.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────┐
//	│                        Scheduler                         │
//	│                                                          │
//	│  ┌──────────┐   ┌──────────┐        ┌──────────┐         │
//	│  │ Worker 1 │   │ Worker 2 │  ...   │ Worker N │         │
//	│  └────▲─────┘   └────▲─────┘        └────▲─────┘         │
//	│       └──────────────┼───────────────────┘               │
//	│                ┌─────┴──────┐                            │
//	│                │ work chan  │  (buffered backlog)        │
//	│                └─────▲──────┘                            │
//	│                      │                                   │
//	│                 AddWork(fn)                              │
//	└──────────────────────────────────────────────────────────┘
//
// # Semantics
//
//   - Each submission gets a context derived from the scheduler's main
//     context; Future.Stop cancels it, Close cancels all of them.
//   - Results are delivered on a buffered channel of size one, so a
//     worker never blocks on a caller that stopped listening.
//   - Panics inside work functions are recovered and reported as
//     errors on the future.
//   - Close waits for the workers to exit and resolves queued-but-not-
//     started work with context.Canceled. AddWork after Close resolves
//     the same way.
//
// # Usage
//
//	s := scheduler.NewScheduler(3)
//	defer s.Close()
//
//	future := s.AddWork(func(ctx context.Context) (any, error) {
//	    return broadcast(ctx)
//	})
//
//	result := <-future.C()
//	if result.Err != nil { ... }
package scheduler
