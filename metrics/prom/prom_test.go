package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/tasksys/metrics"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) (float64, bool) {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			return m.GetCounter().GetValue(), true
		case m.GetGauge() != nil:
			return m.GetGauge().GetValue(), true
		case m.GetHistogram() != nil:
			return float64(m.GetHistogram().GetSampleCount()), true
		}
	}
	return 0, false
}

func TestProvider_RegistersAndRecords(t *testing.T) {
	p := New(Config{})

	c := p.Counter("tasksys.tasks.submitted", metrics.WithDescription("bulk tasks submitted"))
	c.Add(4)

	g := p.UpDownCounter("tasksys.queue.depth")
	g.Add(7)
	g.Add(-2)

	h := p.Histogram("tasksys.task.duration", metrics.WithUnit("s"))
	h.Record(0.25)
	h.Record(1.5)

	v, ok := gatherValue(t, p.Registry(), "tasksys_tasks_submitted")
	require.True(t, ok, "counter not registered")
	require.Equal(t, 4.0, v)

	v, ok = gatherValue(t, p.Registry(), "tasksys_queue_depth")
	require.True(t, ok, "gauge not registered")
	require.Equal(t, 5.0, v)

	v, ok = gatherValue(t, p.Registry(), "tasksys_task_duration")
	require.True(t, ok, "histogram not registered")
	require.Equal(t, 2.0, v, "histogram sample count")
}

func TestProvider_SameNameSameCollector(t *testing.T) {
	p := New(Config{})

	// Registering the same name twice must reuse the collector instead
	// of hitting MustRegister with a duplicate.
	a := p.Counter("c")
	b := p.Counter("c")
	a.Add(1)
	b.Add(2)

	v, ok := gatherValue(t, p.Registry(), "c")
	require.True(t, ok)
	require.Equal(t, 3.0, v)
}

func TestProvider_ExternalRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(Config{Registry: reg, Buckets: []float64{0.1, 1}})

	require.Same(t, reg, p.Registry())
	p.Histogram("d").Record(0.5)

	v, ok := gatherValue(t, reg, "d")
	require.True(t, ok)
	require.Equal(t, 1.0, v)
}
