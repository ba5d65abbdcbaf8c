// Package prom adapts a Prometheus registry to the engine's metrics
// Provider interface. Dots and hyphens in instrument names become
// underscores; no other characters are rewritten.
package prom

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ygrebnov/tasksys/metrics"
)

// Config configures the provider.
type Config struct {
	// Registry to register instruments with. Nil means a new private
	// registry, reachable via Provider.Registry.
	Registry *prometheus.Registry

	// Buckets for histograms, in the recorded unit (the engine records
	// seconds). Nil means DefaultBuckets.
	Buckets []float64
}

// DefaultBuckets covers bulk-task durations from sub-millisecond to a
// minute.
func DefaultBuckets() []float64 {
	return []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60}
}

// Provider implements metrics.Provider on top of Prometheus
// collectors. Instruments are registered once per name and reused.
type Provider struct {
	registry *prometheus.Registry
	buckets  []float64

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

var _ metrics.Provider = (*Provider)(nil)

// New constructs a Provider.
func New(cfg Config) *Provider {
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	buckets := cfg.Buckets
	if buckets == nil {
		buckets = DefaultBuckets()
	}
	return &Provider{
		registry:   reg,
		buckets:    buckets,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// Registry returns the registry instruments are registered with, for
// wiring into promhttp or a push gateway.
func (p *Provider) Registry() *prometheus.Registry { return p.registry }

// Counter returns the counter registered under name, creating and
// registering it on first use.
func (p *Provider) Counter(name string, opts ...metrics.InstrumentOption) metrics.Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counters[name]
	if !ok {
		cfg := metrics.ApplyOptions(opts)
		c = prometheus.NewCounter(prometheus.CounterOpts{
			Name: promName(name),
			Help: help(name, cfg),
		})
		p.registry.MustRegister(c)
		p.counters[name] = c
	}
	return counter{c}
}

// UpDownCounter returns the gauge registered under name, creating and
// registering it on first use.
func (p *Provider) UpDownCounter(name string, opts ...metrics.InstrumentOption) metrics.UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, ok := p.gauges[name]
	if !ok {
		cfg := metrics.ApplyOptions(opts)
		g = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: promName(name),
			Help: help(name, cfg),
		})
		p.registry.MustRegister(g)
		p.gauges[name] = g
	}
	return gauge{g}
}

// Histogram returns the histogram registered under name, creating and
// registering it on first use.
func (p *Provider) Histogram(name string, opts ...metrics.InstrumentOption) metrics.Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		cfg := metrics.ApplyOptions(opts)
		h = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    promName(name),
			Help:    help(name, cfg),
			Buckets: p.buckets,
		})
		p.registry.MustRegister(h)
		p.histograms[name] = h
	}
	return histogram{h}
}

func promName(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}

func help(name string, cfg metrics.InstrumentConfig) string {
	if cfg.Description != "" {
		return cfg.Description
	}
	return name
}

type counter struct{ c prometheus.Counter }

func (a counter) Add(n int64) { a.c.Add(float64(n)) }

type gauge struct{ g prometheus.Gauge }

func (a gauge) Add(n int64) { a.g.Add(float64(n)) }

type histogram struct{ h prometheus.Histogram }

func (a histogram) Record(v float64) { a.h.Observe(v) }
