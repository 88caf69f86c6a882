package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/bottle/internal/experiment"
)

// Parameter names understood by Apply.
const (
	ParamRadius = "radius"
	ParamCorner = "corner"
	ParamCount  = "count"
	ParamWidth  = "width"
	ParamHeight = "height"
)

var ErrNoCandidates = errors.New("optim: no candidate succeeded")

// GridSearch evaluates every combination of parameter values and keeps the
// one with the best metric value.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Maximize flips the objective; the default minimizes.
	Maximize bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Best is the winning parameter set and its metric value.
type Best struct {
	Params map[string]float64
	Value  float64
	Result *experiment.Result
}

// Apply returns cfg with the named parameters overridden.
func Apply(cfg experiment.Config, params map[string]float64) (experiment.Config, error) {
	for name, v := range params {
		switch name {
		case ParamRadius:
			cfg.Request.CircleRadius = v
		case ParamCorner:
			cfg.Request.CornerRadius = v
		case ParamCount:
			cfg.Request.Count = int(v)
		case ParamWidth:
			cfg.Request.Container.Width = v
		case ParamHeight:
			cfg.Request.Container.Height = v
		default:
			return cfg, fmt.Errorf("optim: unknown parameter %q", name)
		}
	}
	return cfg, nil
}

func (g *GridSearch) Search(
	ctx context.Context,
	base experiment.Config,
	registry *experiment.Registry,
	metricName string,
) (*Best, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, fmt.Errorf("optim: %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	best := &Best{Value: math.Inf(1)}
	if g.Maximize {
		best.Value = math.Inf(-1)
	}

	if err := g.searchRecursive(ctx, 0, make(map[string]float64), base, registry, metricName, best); err != nil {
		return nil, err
	}
	if best.Params == nil {
		return nil, ErrNoCandidates
	}
	return best, nil
}

func (g *GridSearch) better(val, best float64) bool {
	if g.Maximize {
		return val > best
	}
	return val < best
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	base experiment.Config,
	registry *experiment.Registry,
	metricName string,
	best *Best,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		cfg, err := Apply(base, current)
		if err != nil {
			return err
		}

		result, err := experiment.New(cfg, registry).Run(ctx)
		if err != nil {
			// strict shortfalls and unknown strategies just lose the round
			return nil
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			return fmt.Errorf("optim: unknown metric %q", metricName)
		}
		if best.Params == nil || g.better(val, best.Value) {
			best.Value = val
			best.Result = result
			best.Params = make(map[string]float64, len(current))
			for k, v := range current {
				best.Params[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, base, registry, metricName, best); err != nil {
			return err
		}
	}
	return nil
}

// Range returns n evenly spaced values from lo to hi inclusive.
func Range(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}
