package logcapture

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// DefaultCapacity is the number of entries kept when no explicit
// capacity is given.
const DefaultCapacity = 100

// Entry is a single captured log record. The message is rendered at
// capture time, so later format changes never rewrite stored entries.
type Entry struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// Buffer is a fixed-capacity FIFO of log entries. Once full, every
// append evicts the oldest entry. All methods are safe for concurrent
// use; a single mutex serializes appends so emission order is kept.
type Buffer struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

// New creates a buffer holding at most capacity entries. Non-positive
// capacities fall back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Record appends an entry, evicting the oldest one when the buffer is
// at capacity.
func (b *Buffer) Record(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) >= b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, e)
}

// Snapshot returns a copy of the buffered entries, oldest first.
// The returned slice is independent of the buffer; later appends do
// not alter it.
func (b *Buffer) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len reports the current number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Hook returns a zap entry hook that mirrors every emitted record into
// the buffer. Capture errors are swallowed: a failure to store one
// entry must never surface into the emitting code path.
func (b *Buffer) Hook() func(zapcore.Entry) error {
	return func(e zapcore.Entry) error {
		b.Record(Entry{
			Message:   formatEntry(e),
			Timestamp: e.Time,
			Level:     e.Level.CapitalString(),
		})
		return nil
	}
}

// formatEntry applies the fixed display format shared with the web UI:
// timestamp, logger name, level, message.
func formatEntry(e zapcore.Entry) string {
	name := e.LoggerName
	if name == "" {
		name = "repeaterd"
	}
	return fmt.Sprintf("%s - %s - %s - %s",
		e.Time.Format(time.RFC3339), name, e.Level.CapitalString(), e.Message)
}
