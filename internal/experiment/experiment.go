package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/bottle/internal/config"
	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/metrics"
	"github.com/san-kum/bottle/internal/packing"
)

type Config struct {
	Request  packing.Request
	Strategy string
	Attempts int
	Seed     int64
	// Strict turns a shortfall into an error wrapping packing.ErrCapacity.
	Strict bool
	Items  items.Manifest
}

// FromConfig converts a loaded file or preset into a run configuration.
func FromConfig(c *config.Config) Config {
	strategy := c.Strategy
	if strategy == "" {
		strategy = config.DefaultStrategy
	}
	return Config{
		Request:  c.Request(),
		Strategy: strategy,
		Attempts: c.Attempts,
		Seed:     c.Seed,
		Strict:   c.Strict,
		Items:    c.Items,
	}
}

type Result struct {
	Layout   packing.Layout
	Spawns   []items.Spawn
	Unplaced []string
	Metrics  map[string]float64
	Elapsed  time.Duration
}

type Experiment struct {
	cfg      Config
	registry *Registry
}

func New(cfg Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry}
}

func (e *Experiment) Config() Config { return e.cfg }

// Run shuffles the manifest, packs the request and pairs the shuffled items
// with the packed points. In strict mode a shortfall is returned as an
// error together with the result.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := packing.NewSource(e.cfg.Seed)
	p, err := e.registry.GetPacker(e.cfg.Strategy, rng, e.cfg.Attempts)
	if err != nil {
		return nil, err
	}

	names := e.cfg.Items.Expand()
	items.Shuffle(names, rng)

	start := time.Now()
	layout := p.Layout(e.cfg.Request)
	elapsed := time.Since(start)

	res := &Result{
		Layout:  layout,
		Metrics: metrics.Collect(e.registry.DefaultMetrics(), layout),
		Elapsed: elapsed,
	}
	res.Spawns, res.Unplaced = items.Assign(names, layout.Points)

	if e.cfg.Strict && layout.Shortfall() > 0 {
		capErr := &packing.CapacityError{Requested: e.cfg.Request.Count, Placed: layout.Placed()}
		return res, fmt.Errorf("strategy %s: %w", e.cfg.Strategy, capErr)
	}
	return res, nil
}
