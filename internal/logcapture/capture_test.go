package logcapture_test

import (
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/meshforge/repeaterd/internal/logcapture"
)

func entry(msg string) logcapture.Entry {
	return logcapture.Entry{
		Message:   msg,
		Timestamp: time.Now(),
		Level:     "INFO",
	}
}

var _ = Describe("Buffer", func() {
	Context("Record", func() {
		// Given a buffer with capacity C
		// When fewer than C entries are recorded
		// Then all of them are kept in insertion order
		It("should keep entries in insertion order below capacity", func() {
			b := logcapture.New(5)
			for i := 0; i < 3; i++ {
				b.Record(entry(fmt.Sprintf("msg-%d", i)))
			}

			snap := b.Snapshot()
			Expect(snap).To(HaveLen(3))
			for i, e := range snap {
				Expect(e.Message).To(Equal(fmt.Sprintf("msg-%d", i)))
			}
		})

		// Given a buffer with capacity C
		// When N > C entries are recorded
		// Then only the last C entries remain, oldest first
		It("should evict the oldest entry once capacity is reached", func() {
			b := logcapture.New(3)
			for i := 0; i < 10; i++ {
				b.Record(entry(fmt.Sprintf("msg-%d", i)))
			}

			snap := b.Snapshot()
			Expect(snap).To(HaveLen(3))
			Expect(snap[0].Message).To(Equal("msg-7"))
			Expect(snap[1].Message).To(Equal("msg-8"))
			Expect(snap[2].Message).To(Equal("msg-9"))
		})

		// Given a buffer constructed with a non-positive capacity
		// When entries are recorded
		// Then the default capacity applies
		It("should fall back to the default capacity", func() {
			b := logcapture.New(0)
			for i := 0; i < logcapture.DefaultCapacity+20; i++ {
				b.Record(entry(fmt.Sprintf("msg-%d", i)))
			}
			Expect(b.Len()).To(Equal(logcapture.DefaultCapacity))
		})
	})

	Context("Concurrent producers", func() {
		// Given multiple goroutines emitting concurrently
		// When they all record into the same buffer
		// Then every surviving entry appears exactly once and the
		// capacity invariant holds
		It("should not lose, duplicate or overflow entries", func() {
			const producers = 8
			const perProducer = 50
			b := logcapture.New(producers * perProducer)

			var wg sync.WaitGroup
			for p := 0; p < producers; p++ {
				wg.Add(1)
				go func(p int) {
					defer wg.Done()
					for i := 0; i < perProducer; i++ {
						b.Record(entry(fmt.Sprintf("p%d-%d", p, i)))
					}
				}(p)
			}
			wg.Wait()

			snap := b.Snapshot()
			Expect(snap).To(HaveLen(producers * perProducer))

			seen := make(map[string]int, len(snap))
			for _, e := range snap {
				seen[e.Message]++
			}
			for msg, count := range seen {
				Expect(count).To(Equal(1), "entry %s recorded %d times", msg, count)
			}
		})

		// Given a small buffer under concurrent load
		// When more entries arrive than it can hold
		// Then its length never exceeds capacity
		It("should never exceed capacity under concurrent load", func() {
			b := logcapture.New(10)

			var wg sync.WaitGroup
			for p := 0; p < 4; p++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 100; i++ {
						b.Record(entry("x"))
						Expect(b.Len()).To(BeNumerically("<=", 10))
					}
				}()
			}
			wg.Wait()
			Expect(b.Len()).To(Equal(10))
		})
	})

	Context("Snapshot", func() {
		// Given a snapshot taken at some point
		// When more entries are recorded afterwards
		// Then the earlier snapshot is unchanged
		It("should return a structurally independent copy", func() {
			b := logcapture.New(4)
			b.Record(entry("first"))
			b.Record(entry("second"))

			before := b.Snapshot()
			b.Record(entry("third"))
			b.Record(entry("fourth"))
			b.Record(entry("fifth")) // evicts "first"

			Expect(before).To(HaveLen(2))
			Expect(before[0].Message).To(Equal("first"))
			Expect(before[1].Message).To(Equal("second"))
		})

		It("should return an empty slice for an empty buffer", func() {
			b := logcapture.New(4)
			Expect(b.Snapshot()).To(BeEmpty())
		})
	})

	Context("Hook", func() {
		// Given a zap logger with the capture hook attached
		// When log records are emitted
		// Then each record is mirrored into the buffer with the fixed format
		It("should mirror emitted zap entries into the buffer", func() {
			b := logcapture.New(10)
			core, _ := observer.New(zapcore.DebugLevel)
			logger := zap.New(core, zap.Hooks(b.Hook())).Named("web")

			logger.Info("server started")
			logger.Warn("slow request")

			snap := b.Snapshot()
			Expect(snap).To(HaveLen(2))
			Expect(snap[0].Level).To(Equal("INFO"))
			Expect(snap[0].Message).To(ContainSubstring(" - web - INFO - server started"))
			Expect(snap[1].Level).To(Equal("WARN"))
			Expect(snap[1].Message).To(ContainSubstring(" - web - WARN - slow request"))
		})

		// Given a record emitted through a logger without a name
		// When it is captured
		// Then the process name is used in the rendered message
		It("should fall back to the process name for unnamed loggers", func() {
			b := logcapture.New(10)
			core, _ := observer.New(zapcore.DebugLevel)
			logger := zap.New(core, zap.Hooks(b.Hook()))

			logger.Error("boom")

			snap := b.Snapshot()
			Expect(snap).To(HaveLen(1))
			Expect(snap[0].Message).To(ContainSubstring(" - repeaterd - ERROR - boom"))
		})

		It("should never return an error to the emitting path", func() {
			b := logcapture.New(1)
			hook := b.Hook()
			for i := 0; i < 5; i++ {
				Expect(hook(zapcore.Entry{
					Time:    time.Now(),
					Level:   zapcore.InfoLevel,
					Message: "m",
				})).To(Succeed())
			}
		})
	})
})
