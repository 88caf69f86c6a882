package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bottle/internal/config"
	"github.com/san-kum/bottle/internal/experiment"
	"github.com/san-kum/bottle/internal/export"
	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
	"github.com/san-kum/bottle/internal/storage"
	"github.com/san-kum/bottle/internal/viz"
)

const canvasCols = 48

var (
	dataDir string
	verbose bool
	theme   string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bottle",
		Short:        "circle packing for rounded containers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Seed = time.Now().UnixNano()
			return viz.RunPreview(experiment.FromConfig(cfg), theme)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bottle", "data directory")
	rootCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "preview theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(
		newPackCmd(),
		&cobra.Command{
			Use:   "list",
			Short: "list stored layouts",
			RunE:  listRuns,
		},
		&cobra.Command{
			Use:   "show [run_id]",
			Short: "draw a stored layout",
			Args:  cobra.ExactArgs(1),
			RunE:  showRun,
		},
		newExportCmd("export-svg", "export a layout as SVG", exportSVG),
		newExportCmd("export-csv", "export layout points as CSV", exportCSV),
		newExportCmd("export-json", "export a layout as JSON", exportJSON),
		newExportCmd("export-pdf", "export a layout as a printable PDF", exportPDF),
		newExportCmd("export-xlsx", "export layout points as an Excel workbook", exportXLSX),
		newExportDXFCmd(),
		newCapacityCmd(),
		newBenchCmd(),
		newTuneCmd(),
		&cobra.Command{
			Use:   "presets",
			Short: "list available presets",
			RunE:  listPresets,
		},
		newPreviewCmd(),
	)

	return rootCmd
}

func newPackCmd() *cobra.Command {
	var (
		opts    packOptions
		save    bool
		preview bool
	)
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "pack circles into the container",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if preview {
				return viz.RunPreview(experiment.FromConfig(cfg), theme)
			}
			return runPack(cmd.Context(), cmd.OutOrStdout(), cfg, save)
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&save, "save", true, "store the layout in the data directory")
	cmd.Flags().BoolVar(&preview, "preview", false, "open the interactive preview instead")
	cmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "preview theme")
	return cmd
}

func runPack(ctx context.Context, w io.Writer, cfg *config.Config, save bool) error {
	logger := loggerFromContext(ctx)
	runCfg := experiment.FromConfig(cfg)
	req := runCfg.Request

	logger.Debug("packing",
		"count", req.Count,
		"container", fmt.Sprintf("%gx%g", req.Container.Width, req.Container.Height),
		"corner", req.CornerRadius,
		"radius", req.CircleRadius,
		"strategy", runCfg.Strategy,
		"seed", runCfg.Seed,
	)

	res, err := experiment.New(runCfg, nil).Run(ctx)
	if err != nil && !isCapacity(err) {
		return err
	}
	if shortfall := res.Layout.Shortfall(); shortfall > 0 {
		logger.Warn("not every circle fits",
			"requested", req.Count,
			"placed", res.Layout.Placed(),
			"dropped", res.Layout.Dropped,
		)
	}

	fmt.Fprint(w, viz.Render(res.Layout, canvasCols))
	printSummary(w, res.Layout, res.Metrics)
	if len(res.Spawns) > 0 {
		printItems(w, res.Spawns, cfg.Items.Colors())
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, serr := st.Save(storage.Record{
			Layout:   res.Layout,
			Spawns:   res.Spawns,
			Items:    cfg.Items,
			Strategy: runCfg.Strategy,
			Seed:     runCfg.Seed,
			Metrics:  res.Metrics,
		})
		if serr != nil {
			return serr
		}
		logger.Info("saved layout", "id", id, "elapsed", res.Elapsed)
	}

	return err
}

func printSummary(w io.Writer, l packing.Layout, m map[string]float64) {
	status := viz.StatusOK.Render("all placed")
	if l.Shortfall() > 0 {
		status = viz.StatusWarn.Render(fmt.Sprintf("%d dropped", l.Shortfall()))
	}
	fmt.Fprintf(w, "\n%s %s\n", viz.Title.Render("layout"), status)
	fmt.Fprintln(w, viz.Metric("placed", fmt.Sprintf("%d / %d", l.Placed(), l.Request.Count)))
	fmt.Fprintln(w, viz.Metric("grid fallback", fmt.Sprintf("%d", l.CountPhase(packing.SpiralGrid{}.Name()))))

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, viz.Metric(strings.ReplaceAll(name, "_", " "), fmt.Sprintf("%.3f", m[name])))
	}
}

func printItems(w io.Writer, spawns []items.Spawn, colors map[string]string) {
	counts := make(map[string]int)
	var order []string
	for _, s := range spawns {
		if counts[s.Kind] == 0 {
			order = append(order, s.Kind)
		}
		counts[s.Kind]++
	}
	fmt.Fprintln(w)
	for _, kind := range order {
		fmt.Fprintf(w, "%s %-10s %d\n", viz.Swatch(colors[kind]), kind, counts[kind])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCONTAINER\tRADIUS\tPLACED\tSTRATEGY\tSEED\tFINGERPRINT")

	for _, run := range runs {
		req := run.Request
		fmt.Fprintf(w, "%s\t%s\t%gx%g r%g\t%g\t%d/%d\t%s\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			req.Container.Width, req.Container.Height, req.CornerRadius,
			req.CircleRadius,
			run.Placed, req.Count,
			run.Strategy,
			run.Seed,
			run.Fingerprint,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, rec, err := st.LoadRecord(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s  %s seed %d\n\n", viz.Title.Render("run"), meta.ID, meta.Strategy, meta.Seed)
	fmt.Fprint(w, viz.Render(rec.Layout, canvasCols))
	printSummary(w, rec.Layout, meta.Metrics)
	if len(rec.Spawns) > 0 {
		printItems(w, rec.Spawns, meta.Items.Colors())
	}
	return nil
}

func newExportCmd(use, short string, run func(w io.Writer, id string, meta *storage.RunMetadata, rec *storage.Record) error) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use + " [run_id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			meta, rec, err := st.LoadRecord(args[0])
			if err != nil {
				return err
			}

			if out == "" {
				return run(cmd.OutOrStdout(), args[0], meta, rec)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := run(f, args[0], meta, rec); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("exported", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func exportSVG(w io.Writer, id string, meta *storage.RunMetadata, rec *storage.Record) error {
	_, err := io.WriteString(w, export.LayoutToSVG(rec.Layout, rec.Spawns, meta.Items.Colors()))
	return err
}

func exportCSV(w io.Writer, id string, meta *storage.RunMetadata, rec *storage.Record) error {
	return export.WriteCSV(w, rec.Layout)
}

func exportJSON(w io.Writer, id string, meta *storage.RunMetadata, rec *storage.Record) error {
	return storage.ExportJSON(w, id, rec)
}

func exportPDF(w io.Writer, id string, meta *storage.RunMetadata, rec *storage.Record) error {
	info := export.RunInfo{
		ID:          id,
		Strategy:    meta.Strategy,
		Seed:        meta.Seed,
		Fingerprint: meta.Fingerprint,
		Requested:   meta.Request.Count,
		Placed:      meta.Placed,
	}
	return export.WritePDF(w, info, rec.Layout, rec.Spawns, meta.Items.Colors())
}

func exportXLSX(w io.Writer, id string, meta *storage.RunMetadata, rec *storage.Record) error {
	return export.WriteXLSX(w, rec.Layout, rec.Spawns)
}

// DXF is written by path, so it cannot go to stdout.
func newExportDXFCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-dxf [run_id]",
		Short: "export a layout as DXF for CAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			_, rec, err := st.LoadRecord(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".dxf"
			}
			if err := export.SaveDXF(out, rec.Layout); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("exported", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <run_id>.dxf)")
	return cmd
}

func newCapacityCmd() *cobra.Command {
	var (
		opts     packOptions
		maxCount int
	)
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "plot placed circles against requested count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if maxCount < 1 {
				return fmt.Errorf("--max must be positive, got %d", maxCount)
			}

			counts := make([]int, maxCount)
			for i := range counts {
				counts[i] = i + 1
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			placed, err := experiment.Sweep(cmd.Context(), experiment.FromConfig(cfg), nil, counts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("swept %d counts", maxCount))

			data := make([]float64, len(placed))
			capacity := 0
			for i, n := range placed {
				data[i] = float64(n)
				if n == counts[i] {
					capacity = n
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, asciigraph.Plot(data,
				asciigraph.Height(12),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("placed vs requested (radius %g, seed %d)", cfg.CircleRadius, cfg.Seed)),
			))
			fmt.Fprintln(w)
			fmt.Fprintln(w, viz.Metric("capacity", fmt.Sprintf("%d", capacity)))
			fmt.Fprintln(w, viz.Metric("max placed", fmt.Sprintf("%d", maxInt(placed))))
			return nil
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&maxCount, "max", 40, "largest count to request")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var (
		opts packOptions
		runs int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compare strategies over many seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if runs < 1 {
				return fmt.Errorf("--runs must be positive, got %d", runs)
			}

			registry := experiment.NewRegistry()
			base := experiment.FromConfig(cfg)
			req := base.Request

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "benchmarking %d circles r%g in %gx%g r%g over %d seeds\n\n",
				req.Count, req.CircleRadius, req.Container.Width, req.Container.Height, req.CornerRadius, runs)

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY\tCOMPLETE\tFILL\tMIN SPACING\tSHORTFALL\tFALLBACKS\tTIME")

			for _, name := range registry.ListStrategies() {
				runCfg := base
				runCfg.Strategy = name

				start := time.Now()
				sum, err := experiment.NewEnsemble(runCfg, registry, runs, cfg.Seed).Run(cmd.Context())
				if err != nil {
					return fmt.Errorf("strategy %s: %w", name, err)
				}
				elapsed := time.Since(start)

				fmt.Fprintf(tw, "%s\t%d/%d\t%.3f\t%.3f\t%.2f\t%.2f\t%s\n",
					name,
					sum.Complete, runs,
					sum.Means["fill_ratio"],
					sum.Means["min_spacing"],
					sum.Means["shortfall"],
					sum.Means["grid_fallbacks"],
					elapsed.Round(time.Millisecond),
				)
			}
			return tw.Flush()
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&runs, "runs", 100, "seeds per strategy")
	return cmd
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tCONTAINER\tRADIUS\tCOUNT\tSTRATEGY")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%gx%g r%g\t%g\t%d\t%s\n",
			name,
			p.Container.Width, p.Container.Height, p.Container.CornerRadius,
			p.CircleRadius,
			p.Total(),
			p.Strategy,
		)
	}
	return w.Flush()
}

func newPreviewCmd() *cobra.Command {
	var opts packOptions
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "interactive layout preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return viz.RunPreview(experiment.FromConfig(cfg), theme)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, fmt.Sprintf("preview theme %v", viz.ThemeNames()))
	return cmd
}

func maxInt(xs []int) int {
	m := 0
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}

// isCapacity reports whether err is a strict-mode shortfall.
func isCapacity(err error) bool {
	return errors.Is(err, packing.ErrCapacity)
}
