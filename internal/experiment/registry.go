package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/bottle/internal/metrics"
	"github.com/san-kum/bottle/internal/packing"
)

var ErrUnknownStrategy = errors.New("experiment: unknown strategy")

// Factory builds a packer around a random source and a per-circle attempt
// budget.
type Factory func(src packing.Source, attempts int) *packing.Packer

type Registry struct {
	strategies map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]Factory)}

	r.strategies["hybrid"] = func(src packing.Source, attempts int) *packing.Packer {
		return packing.New(&packing.RandomSearch{Rand: src, Attempts: attempts}, packing.SpiralGrid{})
	}
	r.strategies["random"] = func(src packing.Source, attempts int) *packing.Packer {
		return packing.New(&packing.RandomSearch{Rand: src, Attempts: attempts})
	}
	r.strategies["grid"] = func(packing.Source, int) *packing.Packer {
		return packing.New(packing.SpiralGrid{})
	}

	return r
}

func (r *Registry) Register(name string, f Factory) {
	r.strategies[name] = f
}

func (r *Registry) GetPacker(name string, src packing.Source, attempts int) (*packing.Packer, error) {
	fn, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownStrategy, name, r.ListStrategies())
	}
	return fn(src, attempts), nil
}

func (r *Registry) ListStrategies() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []metrics.Metric {
	return metrics.Default()
}
