package scheduler_test

import (
	"context"
	"runtime"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meshforge/repeaterd/pkg/scheduler"
)

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("AddWork", func() {
		It("should run work and deliver the result on the future", func() {
			s = scheduler.NewScheduler(1)

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})
			Expect(future).NotTo(BeNil())

			var result scheduler.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Data).To(Equal("done"))
		})

		It("should execute multiple work items across workers", func() {
			s = scheduler.NewScheduler(2)

			results := make(chan int, 3)
			for i := range 3 {
				idx := i
				s.AddWork(func(ctx context.Context) (any, error) {
					results <- idx
					return idx, nil
				})
			}

			Eventually(func() int {
				return len(results)
			}, 2*time.Second, 100*time.Millisecond).Should(Equal(3))
		})

		It("should report a panicking work function as an error", func() {
			s = scheduler.NewScheduler(1)

			future := s.AddWork(func(ctx context.Context) (any, error) {
				panic("kaboom")
			})

			var result scheduler.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(ContainSubstring("worker panicked")))
		})
	})

	Describe("Cancellation", func() {
		It("should cancel work via future.Stop()", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			future := s.AddWork(func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			})

			time.Sleep(100 * time.Millisecond)
			future.Stop()

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})

		It("should cancel running work when the scheduler is closed", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			s.AddWork(func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			})

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})
	})

	Describe("Close behavior", func() {
		It("should return canceled when AddWork is called after Close", func() {
			s = scheduler.NewScheduler(1)
			s.Close()

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})

			var result scheduler.Result[any]
			Eventually(future.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(context.Canceled))
		})

		It("should tolerate being closed twice", func() {
			s = scheduler.NewScheduler(1)
			s.Close()
			s.Close()
			s = nil
		})

		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			s = scheduler.NewScheduler(4)

			for i := 0; i < 100; i++ {
				s.AddWork(func(ctx context.Context) (any, error) {
					<-ctx.Done()
					return nil, ctx.Err()
				})
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})
})
