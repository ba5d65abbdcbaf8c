package tasksys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerial_RunInOrder(t *testing.T) {
	s := NewSerial()
	defer s.Close()

	var order []int
	s.Run(RunnableFunc(func(index, total int) {
		require.Equal(t, 8, total)
		order = append(order, index)
	}), 8)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)
}

func TestSerial_RunAsyncExecutesInline(t *testing.T) {
	s := NewSerial()
	defer s.Close()

	var count int
	incr := RunnableFunc(func(_, _ int) { count++ })

	idA := s.RunAsync(incr, 3, nil)
	require.Equal(t, 3, count, "RunAsync must have executed before returning")

	idB := s.RunAsync(incr, 2, []TaskID{idA})
	require.Equal(t, 5, count)
	require.Equal(t, idA+1, idB, "ids are assigned in submission order")

	s.Sync()
	require.Equal(t, 5, count)
}

func TestSerial_MatchesScheduler(t *testing.T) {
	// The serial baseline and the pooled engine must produce the same
	// per-index effects for the same submission sequence.
	run := func(ts TaskSystem) []int64 {
		defer ts.Close()
		out := make([]int64, 64)
		fill := RunnableFunc(func(index, _ int) { out[index] += int64(index) })
		id := ts.RunAsync(fill, 64, nil)
		ts.RunAsync(fill, 64, []TaskID{id})
		ts.Sync()
		return out
	}

	require.Equal(t, run(NewSerial()), run(New(WithWorkers(4))))
}

func TestSerial_MisusePanics(t *testing.T) {
	noop := RunnableFunc(func(_, _ int) {})

	t.Run("nil runnable", func(t *testing.T) {
		s := NewSerial()
		requirePanicsIs(t, ErrNilRunnable, func() { s.Run(nil, 1) })
	})
	t.Run("negative total", func(t *testing.T) {
		s := NewSerial()
		requirePanicsIs(t, ErrNegativeTotal, func() { s.Run(noop, -2) })
	})
	t.Run("unknown dependency", func(t *testing.T) {
		s := NewSerial()
		requirePanicsIs(t, ErrUnknownTask, func() { s.RunAsync(noop, 1, []TaskID{0}) })
	})
	t.Run("use after close", func(t *testing.T) {
		s := NewSerial()
		s.Close()
		s.Close()
		requirePanicsIs(t, ErrClosed, func() { s.Run(noop, 1) })
		requirePanicsIs(t, ErrClosed, func() { s.Sync() })
	})
}
