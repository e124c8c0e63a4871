// Package logcapture keeps the most recent log output of the daemon in
// memory so the web UI can show it without touching log files.
//
// The buffer is a bounded FIFO: it holds at most N entries (100 by
// default) and evicts the oldest entry on overflow. It is attached to
// the process-wide zap logger as an entry hook during bootstrap and is
// handed by reference to the API layer, which serves snapshots on
// GET /api/logs.
//
//	┌──────────────┐   hook    ┌─────────────┐   Snapshot()   ┌──────────┐
//	│ zap logger   │ ────────▶ │ Buffer      │ ─────────────▶ │ /api/logs│
//	│ (any caller) │           │ (ring, mtx) │                └──────────┘
//	└──────────────┘           └─────────────┘
//
// Messages are rendered once, at capture time, with a fixed
// "timestamp - logger - LEVEL - message" pattern. Snapshots are copies;
// callers never observe later mutations. A failed capture is dropped
// silently so logging itself can never fail a request.
package logcapture
