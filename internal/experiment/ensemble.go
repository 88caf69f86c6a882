package experiment

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/bottle/internal/metrics"
)

// Ensemble repeats one configuration over consecutive seeds in parallel.
// Every run owns its random source.
type Ensemble struct {
	cfg       Config
	registry  *Registry
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg Config, registry *Registry, numRuns int, seedStart int64) *Ensemble {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Ensemble{cfg: cfg, registry: registry, numRuns: numRuns, seedStart: seedStart}
}

type Summary struct {
	Runs []*Result
	// Means holds every metric observed over all runs.
	Means map[string]float64
	// Complete counts runs that placed every requested circle.
	Complete int
}

func (e *Ensemble) Run(ctx context.Context) (*Summary, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			cfg := e.cfg
			cfg.Seed = e.seedStart + int64(i)
			cfg.Strict = false

			res, err := New(cfg, e.registry).Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{
		Runs:  results,
		Means: MeanMetrics(e.registry.DefaultMetrics(), results),
	}
	for _, res := range results {
		if res.Layout.Shortfall() == 0 {
			sum.Complete++
		}
	}
	return sum, nil
}

// Sweep packs cfg once per count and returns how many circles were placed
// for each.
func Sweep(ctx context.Context, cfg Config, registry *Registry, counts []int) ([]int, error) {
	if registry == nil {
		registry = NewRegistry()
	}
	placed := make([]int, len(counts))
	for i, n := range counts {
		c := cfg
		c.Request.Count = n
		c.Strict = false
		c.Items = nil
		res, err := New(c, registry).Run(ctx)
		if err != nil {
			return nil, err
		}
		placed[i] = res.Layout.Placed()
	}
	return placed, nil
}

// MeanMetrics averages ms over the layouts of results.
func MeanMetrics(ms []metrics.Metric, results []*Result) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, r := range results {
			m.Observe(r.Layout)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
