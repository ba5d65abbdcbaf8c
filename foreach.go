package tasksys

// ForEach invokes fn once per index in [0, n) on ts and returns when
// all invocations have completed. n <= 0 is a no-op.
func ForEach(ts TaskSystem, n int, fn func(index, total int)) {
	if n <= 0 {
		return
	}
	ts.Run(RunnableFunc(fn), n)
}
