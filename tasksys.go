package tasksys

// TaskID identifies a submitted bulk task. IDs are assigned in strict
// submission order starting at zero and are never reused within one
// engine instance.
type TaskID int

// TaskSystem is the interface shared by the pooled Scheduler and the
// Serial baseline.
type TaskSystem interface {
	// Name returns a short human-readable engine name.
	Name() string

	// Run invokes r once per index in [0, total) and returns when all
	// invocations have completed. Equivalent to RunAsync(r, total, nil)
	// followed by Sync.
	Run(r Runnable, total int)

	// RunAsync submits a bulk task whose invocations may begin only
	// after every bulk task in deps has fully completed, and returns
	// the new task's ID. The pooled Scheduler returns without waiting
	// for the invocations; Serial executes them before returning.
	RunAsync(r Runnable, total int, deps []TaskID) TaskID

	// Sync blocks until every invocation of every submitted bulk task
	// has completed.
	Sync()

	// Close waits for quiescence and releases the engine's resources.
	// Close is idempotent; Run, RunAsync and Sync panic after Close.
	Close()
}
