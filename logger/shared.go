package logger

import (
	"sync/atomic"

	"github.com/runlab/runlog/handler"
)

// sharedHandler wraps a handler with a reference count so that a
// handler joined into several logger instances is closed exactly once,
// when the last referencing instance detaches. Detaching from one
// instance never disturbs the others.
type sharedHandler struct {
	h    handler.Handler
	refs atomic.Int32
}

func newSharedHandler(h handler.Handler) *sharedHandler {
	s := &sharedHandler{h: h}
	s.refs.Store(1)
	return s
}

// retain adds a referencing instance.
func (s *sharedHandler) retain() {
	s.refs.Add(1)
}

// release drops a reference and closes the underlying handler when no
// instance references it anymore.
func (s *sharedHandler) release() error {
	if s.refs.Add(-1) == 0 {
		return s.h.Close()
	}
	return nil
}
