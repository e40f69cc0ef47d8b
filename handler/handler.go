package handler

import (
	"sync/atomic"

	"github.com/runlab/runlog/core"
)

// Handler defines the interface for log sinks.
type Handler interface {
	// Handle processes a log entry. Entries below the handler's
	// threshold are dropped and report nil.
	Handle(entry *core.Entry) error

	// Level returns the current minimum severity threshold.
	Level() core.Level

	// SetLevel changes the minimum severity threshold.
	SetLevel(level core.Level)

	// Close flushes and releases the handler's resources.
	Close() error
}

// levelGate holds a handler's severity threshold. The threshold is
// read on every Handle call and may be changed concurrently via
// SetLevel, so it is stored atomically.
type levelGate struct {
	level atomic.Int32
}

func (g *levelGate) Level() core.Level {
	return core.Level(g.level.Load())
}

func (g *levelGate) SetLevel(level core.Level) {
	g.level.Store(int32(level))
}

// enabled reports whether an entry at the given level passes the gate.
func (g *levelGate) enabled(level core.Level) bool {
	return int32(level) >= g.level.Load()
}
