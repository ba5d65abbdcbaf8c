package tasksys

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/ygrebnov/tasksys/metrics"
)

// config holds Scheduler configuration assembled by options.
type config struct {
	// Workers is the number of resident worker goroutines.
	// Default: runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives lifecycle events (construction, close, panic
	// capture). The scheduler never logs per work item.
	// Default: discard.
	Logger *slog.Logger

	// Metrics constructs the scheduler's instruments.
	// Default: noop provider.
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config. New applies it
// as the options builder base.
func defaultConfig() config {
	return config{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.DiscardHandler),
		Metrics: metrics.NewNoopProvider(),
	}
}

// validateConfig performs lightweight invariants checks.
func validateConfig(cfg *config) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}
