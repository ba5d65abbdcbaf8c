package metrics

// NoopProvider returns instruments that discard every measurement.
// It is the engine's default provider.
type NoopProvider struct{}

// NewNoopProvider constructs a Provider that discards all metrics.
func NewNoopProvider() NoopProvider { return NoopProvider{} }

func (NoopProvider) Counter(_ string, _ ...InstrumentOption) Counter { return noopInstrument{} }

func (NoopProvider) UpDownCounter(_ string, _ ...InstrumentOption) UpDownCounter {
	return noopInstrument{}
}

func (NoopProvider) Histogram(_ string, _ ...InstrumentOption) Histogram { return noopInstrument{} }

type noopInstrument struct{}

func (noopInstrument) Add(_ int64)      {}
func (noopInstrument) Record(_ float64) {}
