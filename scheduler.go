package tasksys

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ygrebnov/tasksys/metrics"
)

// Scheduler is the pooled bulk-task engine. A single mutex protects
// the ready queue, the descriptor store and all counters; workCond
// wakes workers when items are enqueued or the engine stops, idleCond
// wakes Sync callers when the last outstanding invocation finishes.
type Scheduler struct {
	cfg config
	log *slog.Logger

	mu       sync.Mutex
	workCond *sync.Cond
	idleCond *sync.Cond

	queue  workQueue
	states []*taskState // dense, indexed by TaskID

	// outstanding is the number of invocations not yet finished across
	// all submitted bulk tasks, queued or not. Sync returns at zero.
	outstanding int

	stopping bool // workers must exit
	closed   bool // Close finished; any further use panics

	// first value recovered from a panicking Runnable, re-raised from
	// Sync or Close
	runPanic any

	workers   sync.WaitGroup
	closeOnce sync.Once

	mSubmitted  metrics.Counter
	mCompleted  metrics.Counter
	mQueueDepth metrics.UpDownCounter
	mDuration   metrics.Histogram
}

var _ TaskSystem = (*Scheduler)(nil)

// New constructs a Scheduler and spawns its worker goroutines.
// Invalid options panic.
func New(opts ...Option) *Scheduler {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("nil tasksys option")
		}
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		panic(err)
	}

	s := &Scheduler{
		cfg: cfg,
		log: cfg.Logger,

		mSubmitted: cfg.Metrics.Counter("tasksys.tasks.submitted",
			metrics.WithDescription("bulk tasks submitted"), metrics.WithUnit("1")),
		mCompleted: cfg.Metrics.Counter("tasksys.invocations.completed",
			metrics.WithDescription("work item invocations completed"), metrics.WithUnit("1")),
		mQueueDepth: cfg.Metrics.UpDownCounter("tasksys.queue.depth",
			metrics.WithDescription("work items in the ready queue"), metrics.WithUnit("1")),
		mDuration: cfg.Metrics.Histogram("tasksys.task.duration",
			metrics.WithDescription("bulk task submission-to-completion time"), metrics.WithUnit("s")),
	}
	s.workCond = sync.NewCond(&s.mu)
	s.idleCond = sync.NewCond(&s.mu)

	for i := 0; i < cfg.Workers; i++ {
		s.workers.Add(1)
		go s.worker()
	}
	s.log.Debug("tasksys: scheduler started", slog.Int("workers", cfg.Workers))

	return s
}

// Name returns the engine name.
func (s *Scheduler) Name() string { return "pool" }

// Run invokes r once per index in [0, total) and returns when all
// invocations have completed. It is RunAsync followed by Sync, so it
// also waits for any other outstanding work; with a zero total it
// returns as soon as that work, if any, has completed.
func (s *Scheduler) Run(r Runnable, total int) {
	s.RunAsync(r, total, nil)
	s.Sync()
}

// RunAsync submits a bulk task. Invocations of r begin only after
// every bulk task named in deps has fully completed; deps already
// complete at submission impose no constraint. Duplicate dependency
// ids are tolerated. RunAsync never blocks on work being done.
//
// RunAsync may be called from multiple goroutines concurrently.
func (s *Scheduler) RunAsync(r Runnable, total int, deps []TaskID) TaskID {
	if r == nil {
		panic(ErrNilRunnable)
	}
	if total < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeTotal, total))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.stopping {
		panic(ErrClosed)
	}

	id := TaskID(len(s.states))
	for _, d := range deps {
		if d < 0 || d >= id {
			panic(fmt.Errorf("%w: %d", ErrUnknownTask, d))
		}
	}

	st := &taskState{runnable: r, total: total, submitted: time.Now()}
	s.states = append(s.states, st)

	// Only dependencies that have not finished yet hold the new task
	// back; each registers it as a successor to notify on completion.
	for _, d := range deps {
		if dep := s.states[d]; !dep.finished {
			dep.successors = append(dep.successors, id)
			st.waiting++
		}
	}

	s.outstanding += total
	s.mSubmitted.Add(1)

	if st.waiting == 0 {
		if total > 0 {
			s.enqueueLocked(id, st)
		} else {
			s.finishLocked(id)
		}
	}

	return id
}

// enqueueLocked pushes one work item per index of st and wakes the
// workers. Caller holds the mutex.
func (s *Scheduler) enqueueLocked(id TaskID, st *taskState) {
	for i := 0; i < st.total; i++ {
		s.queue.push(workItem{task: id, index: i})
	}
	s.mQueueDepth.Add(int64(st.total))
	s.workCond.Broadcast()
}

// finishLocked marks id finished and propagates completion to its
// successors. Newly satisfied successors with work are enqueued;
// zero-total ones are finished in turn. The cascade iterates over a
// worklist rather than recursing so that long chains of zero-total
// tasks cannot grow the stack. Caller holds the mutex.
func (s *Scheduler) finishLocked(id TaskID) {
	pending := []TaskID{id}
	for len(pending) > 0 {
		t := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		st := s.states[t]
		st.finished = true
		s.mDuration.Record(time.Since(st.submitted).Seconds())

		for _, succ := range st.successors {
			ss := s.states[succ]
			ss.waiting--
			if ss.waiting != 0 {
				continue
			}
			if ss.total > 0 {
				s.enqueueLocked(succ, ss)
			} else {
				pending = append(pending, succ)
			}
		}
	}

	if s.outstanding == 0 {
		s.idleCond.Broadcast()
	}
}
