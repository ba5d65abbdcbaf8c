package tasksys

import "log/slog"

// worker is the loop every resident goroutine runs: wait for work,
// pop the head item, invoke the runnable with the mutex released,
// then re-acquire it for completion accounting.
func (s *Scheduler) worker() {
	defer s.workers.Done()

	s.mu.Lock()
	for {
		for s.queue.empty() && !s.stopping {
			s.workCond.Wait()
		}
		if s.stopping {
			s.mu.Unlock()
			return
		}

		item := s.queue.pop()
		s.mQueueDepth.Add(-1)
		st := s.states[item.task]
		s.mu.Unlock()

		pv := s.invoke(st, item.index)

		s.mu.Lock()
		if pv != nil && s.runPanic == nil {
			s.runPanic = pv
			s.log.Error("tasksys: runnable panicked",
				slog.Int("task", int(item.task)),
				slog.Int("index", item.index),
				slog.Any("value", pv))
		}
		st.done++
		s.outstanding--
		s.mCompleted.Add(1)
		if st.done == st.total {
			s.finishLocked(item.task)
		}
	}
}

// invoke runs one work item without holding the scheduler mutex and
// returns the recovered value if the runnable panicked. Completion
// accounting proceeds either way, so a panicking bulk task cannot
// deadlock the engine.
func (s *Scheduler) invoke(st *taskState, index int) (pv any) {
	defer func() { pv = recover() }()
	st.runnable.RunTask(index, st.total)
	return nil
}
