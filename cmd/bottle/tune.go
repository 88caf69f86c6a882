package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/bottle/internal/experiment"
	"github.com/san-kum/bottle/internal/optim"
	"github.com/san-kum/bottle/internal/viz"
)

func newTuneCmd() *cobra.Command {
	var (
		opts     packOptions
		params   []string
		metric   string
		maximize bool
	)
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search layout parameters for the best metric",
		Example: `  bottle tune --param radius=12:24:7 --metric fill_ratio --maximize
  bottle tune --param radius=16:30:8 --param corner=40:100:4 --metric shortfall`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(params))
			ranges := make([][]float64, 0, len(params))
			for _, p := range params {
				name, values, err := parseParam(p)
				if err != nil {
					return err
				}
				names = append(names, name)
				ranges = append(ranges, values)
			}
			if len(names) == 0 {
				return fmt.Errorf("at least one --param is required")
			}

			search := optim.NewGridSearch(names, ranges)
			search.Maximize = maximize

			p := newProgress(loggerFromContext(cmd.Context()))
			best, err := search.Search(cmd.Context(), experiment.FromConfig(cfg), nil, metric)
			if err != nil {
				return err
			}
			p.done("search finished")

			w := cmd.OutOrStdout()
			keys := make([]string, 0, len(best.Params))
			for k := range best.Params {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Fprint(w, viz.Render(best.Result.Layout, canvasCols))
			fmt.Fprintf(w, "\n%s\n", viz.Title.Render("best"))
			for _, k := range keys {
				fmt.Fprintln(w, viz.Metric(k, strconv.FormatFloat(best.Params[k], 'g', -1, 64)))
			}
			fmt.Fprintln(w, viz.Metric(strings.ReplaceAll(metric, "_", " "), fmt.Sprintf("%.3f", best.Value)))
			fmt.Fprintln(w, viz.Metric("placed", fmt.Sprintf("%d / %d", best.Result.Layout.Placed(), best.Result.Layout.Request.Count)))
			return nil
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter range name=lo:hi:steps (radius, corner, count, width, height)")
	cmd.Flags().StringVar(&metric, "metric", "fill_ratio", "metric to optimize")
	cmd.Flags().BoolVar(&maximize, "maximize", false, "maximize the metric instead of minimizing it")
	return cmd
}

// parseParam reads "name=lo:hi:steps" or "name=v".
func parseParam(s string) (string, []float64, error) {
	name, rng, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid --param %q, want name=lo:hi:steps", s)
	}

	parts := strings.Split(rng, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid --param %q: %w", s, err)
		}
		return name, []float64{v}, nil
	case 3:
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid --param %q: %w", s, err)
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid --param %q: %w", s, err)
		}
		steps, err := strconv.Atoi(parts[2])
		if err != nil || steps < 1 {
			return "", nil, fmt.Errorf("invalid --param %q: steps must be a positive integer", s)
		}
		return name, optim.Range(lo, hi, steps), nil
	}
	return "", nil, fmt.Errorf("invalid --param %q, want name=lo:hi:steps", s)
}
