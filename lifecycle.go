package tasksys

import (
	"fmt"
	"log/slog"
)

// Sync blocks until every invocation of every submitted bulk task has
// completed. If a Runnable panicked since the previous Sync, the first
// recovered value is re-raised here, wrapped in ErrRunnablePanicked.
//
// Sync may be called from multiple goroutines concurrently, and
// concurrently with RunAsync.
func (s *Scheduler) Sync() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		panic(ErrClosed)
	}
	s.waitIdleLocked()
	pv := s.runPanic
	s.runPanic = nil
	s.mu.Unlock()

	if pv != nil {
		panic(fmt.Errorf("%w: %v", ErrRunnablePanicked, pv))
	}
}

// waitIdleLocked waits for quiescence. Caller holds the mutex.
func (s *Scheduler) waitIdleLocked() {
	for s.outstanding > 0 {
		s.idleCond.Wait()
	}
}

// Close waits for quiescence, stops the workers and joins them.
// Close is idempotent; Run, RunAsync and Sync panic afterwards. If a
// Runnable panicked and no Sync observed it, the recovered value is
// re-raised here after the workers have been joined.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.waitIdleLocked()
		s.stopping = true
		s.workCond.Broadcast()
		s.mu.Unlock()

		s.workers.Wait()

		s.mu.Lock()
		s.closed = true
		pv := s.runPanic
		s.runPanic = nil
		tasks := len(s.states)
		s.mu.Unlock()

		s.log.Debug("tasksys: scheduler closed", slog.Int("tasks", tasks))
		if pv != nil {
			panic(fmt.Errorf("%w: %v", ErrRunnablePanicked, pv))
		}
	})
}
