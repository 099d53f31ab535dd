// Package notifysemaphore is a utility for consumers that want to avoid
// polling the database for new work, built on top of the core's
// EventEmitter/Notice model rather than a dedicated LISTEN/NOTIFY
// channel multiplexer: every notice the driver adapter forwards wakes
// the semaphore, so callers distinguish their own "new work" notices by
// message content rather than by channel name.
//
// Usage:
//
//	sem := notifysemaphore.New()
//	factory := sqlward.NewDriverFactory(cfg, sem, nil)
//	conn, _ := factory.NewConnection(ctx)
//	conn.Connect(ctx)
//
//	for {
//	    work()
//	    <-sem.C()
//	}
package notifysemaphore

import (
	"errors"
	"sync"

	"github.com/sqlward/sqlward"
)

var ErrClosed = errors.New("notifysemaphore: semaphore has been closed")

// Semaphore implements sqlward.EventEmitter. Its channel holds at least
// one pending notice any time one or more notices have arrived since the
// last receive.
type Semaphore struct {
	mu     sync.Mutex
	closed bool
	ch     chan sqlward.Notice
}

func New() *Semaphore {
	return &Semaphore{ch: make(chan sqlward.Notice, 1)}
}

// C returns the semaphore channel. Receiving from it drains exactly one
// pending wakeup; it never blocks a sender, so bursts of notices
// coalesce into a single pending wakeup.
func (s *Semaphore) C() <-chan sqlward.Notice {
	return s.ch
}

// EmitNotice satisfies sqlward.EventEmitter.
func (s *Semaphore) EmitNotice(n sqlward.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- n:
	default:
		// a wakeup is already pending; this notice coalesces into it
	}
}

// Close closes the semaphore channel. Calling Close twice returns
// ErrClosed.
func (s *Semaphore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	close(s.ch)
	return nil
}
