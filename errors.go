package tasksys

import "errors"

const Namespace = "tasksys"

var (
	ErrClosed        = errors.New(Namespace + ": use of closed engine")
	ErrNilRunnable   = errors.New(Namespace + ": nil runnable")
	ErrNegativeTotal = errors.New(Namespace + ": negative invocation count")
	ErrUnknownTask   = errors.New(Namespace + ": dependency on unknown task")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrRunnablePanicked wraps the first value recovered from a
	// panicking Runnable; it is re-raised from Sync or Close.
	ErrRunnablePanicked = errors.New(Namespace + ": runnable panicked")
)
