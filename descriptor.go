package tasksys

import "time"

// taskState is the per-bulk-task descriptor. The scheduler stores
// descriptors in a dense append-only slice indexed by TaskID; since
// the slice holds pointers, a descriptor never moves while a worker
// holds a reference to it outside the mutex.
//
// runnable, total and submitted are immutable after creation. All
// other fields are guarded by the scheduler mutex. Descriptors are
// kept for the lifetime of the engine: RunAsync must be able to
// examine any previously returned TaskID to decide whether that
// dependency is already satisfied.
type taskState struct {
	runnable  Runnable
	total     int
	submitted time.Time

	done       int      // invocations completed so far
	waiting    int      // predecessors not yet finished
	successors []TaskID // tasks that declared this one as a dependency
	finished   bool     // done == total and completion propagated
}
