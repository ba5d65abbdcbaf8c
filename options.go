package tasksys

import (
	"log/slog"

	"github.com/ygrebnov/tasksys/metrics"
)

// Option configures a Scheduler. Use New(opts...) to construct one.
type Option func(*config)

// WithWorkers sets the number of resident worker goroutines (must be > 0).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			panic("WithWorkers requires n > 0")
		}
		cfg.Workers = n
	}
}

// WithLogger sets the logger receiving lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithMetrics sets the provider used to construct the scheduler's
// instruments.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.Metrics = p
		}
	}
}
