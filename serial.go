package tasksys

import "fmt"

// Serial is the single-goroutine baseline engine: every submission is
// executed inline, in index order, on the calling goroutine. It is
// trivially correct with respect to the engine guarantees (exactly
// once per index, dependencies before dependents, quiescence on Sync)
// and is useful as a comparison point for the pooled Scheduler.
//
// Serial is not safe for concurrent use.
type Serial struct {
	next   TaskID
	closed bool
}

var _ TaskSystem = (*Serial)(nil)

// NewSerial constructs a Serial engine.
func NewSerial() *Serial { return &Serial{} }

// Name returns the engine name.
func (s *Serial) Name() string { return "serial" }

// Run invokes r once per index in [0, total), in order.
func (s *Serial) Run(r Runnable, total int) {
	if r == nil {
		panic(ErrNilRunnable)
	}
	if total < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeTotal, total))
	}
	if s.closed {
		panic(ErrClosed)
	}
	for i := 0; i < total; i++ {
		r.RunTask(i, total)
	}
}

// RunAsync executes the bulk task before returning; every previously
// returned TaskID is already complete, so any valid deps list is
// satisfied by construction.
func (s *Serial) RunAsync(r Runnable, total int, deps []TaskID) TaskID {
	for _, d := range deps {
		if d < 0 || d >= s.next {
			panic(fmt.Errorf("%w: %d", ErrUnknownTask, d))
		}
	}
	s.Run(r, total)
	id := s.next
	s.next++
	return id
}

// Sync is a no-op: nothing is ever outstanding.
func (s *Serial) Sync() {
	if s.closed {
		panic(ErrClosed)
	}
}

// Close marks the engine closed. Idempotent.
func (s *Serial) Close() { s.closed = true }
