package metrics

import "github.com/san-kum/bottle/internal/packing"

// Metric accumulates a statistic over one or more layouts.
type Metric interface {
	Name() string
	Observe(l packing.Layout)
	Value() float64
	Reset()
}

// Default returns the metrics recorded for every packing run.
func Default() []Metric {
	return []Metric{
		NewFillRatio(),
		NewMinSpacing(),
		NewShortfall(),
		NewFallbacks(),
	}
}

// Collect observes l with every metric and returns their values by name.
func Collect(ms []Metric, l packing.Layout) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Observe(l)
		out[m.Name()] = m.Value()
	}
	return out
}
