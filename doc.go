// Package tasksys provides a bulk-synchronous task execution engine:
// a caller submits bulk tasks (a Runnable invoked once per index in
// [0, total)), optionally with dependencies on previously submitted
// bulk tasks, and later blocks until everything submitted has finished.
//
// Engines
//   - New(opts...): the pooled engine. A fixed set of resident worker
//     goroutines drains a FIFO ready queue; dependent bulk tasks are
//     enqueued only once every dependency has fully completed.
//   - NewSerial(): a trivially correct single-goroutine baseline that
//     executes every submission inline. Useful in tests and comparisons.
//
// Defaults
// Unless overridden by options, a newly constructed Scheduler uses:
//   - Workers: runtime.GOMAXPROCS(0)
//   - Logger: discard (lifecycle events only, never per work item)
//   - Metrics: noop provider
//
// Guarantees
//   - Each index in [0, total) is passed to RunTask exactly once.
//   - Every invocation of a dependency happens before any invocation
//     of a dependent bulk task.
//   - No ordering among the indices of a single bulk task, and none
//     between bulk tasks without a dependency edge.
//   - Sync returns only when no submitted invocation remains
//     unfinished, queued or running.
//
// Misuse (submitting with an unknown TaskID, using a closed engine,
// a negative total) is a programming error and panics with an error
// wrapping the matching sentinel from errors.go. A panic escaping a
// Runnable is recovered by the worker, completion accounting still
// advances, and the first recovered value is re-raised from the next
// Sync or Close on the caller's goroutine.
package tasksys
