package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/bottle/internal/config"
	"github.com/san-kum/bottle/internal/packing"
)

// packOptions are the flags shared by every command that packs a layout.
type packOptions struct {
	count      int
	width      float64
	height     float64
	corner     float64
	radius     float64
	seed       int64
	strategy   string
	attempts   int
	strict     bool
	configFile string
	preset     string
}

func (o *packOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&o.count, "count", 0, "circles to pack (0 = item manifest total)")
	f.Float64Var(&o.width, "width", config.DefaultWidth, "container width")
	f.Float64Var(&o.height, "height", config.DefaultHeight, "container height")
	f.Float64Var(&o.corner, "corner", config.DefaultCornerRadius, "container corner radius")
	f.Float64Var(&o.radius, "radius", config.DefaultCircleRadius, "circle radius")
	f.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "random seed")
	f.StringVar(&o.strategy, "strategy", config.DefaultStrategy, "placement strategy (hybrid, random, grid)")
	f.IntVar(&o.attempts, "attempts", packing.MaxAttempts, "random attempts per circle")
	f.BoolVar(&o.strict, "strict", false, "fail when not every circle fits")
	f.StringVar(&o.configFile, "config", "", "config file path (yaml or toml)")
	f.StringVar(&o.preset, "preset", "", "use preset configuration")
}

// resolve builds the run configuration. Precedence, lowest first: defaults,
// preset, config file, flags set on the command line.
func (o *packOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
	}

	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = o.count
	}
	if flags.Changed("width") {
		cfg.Container.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Container.Height = o.height
	}
	if flags.Changed("corner") {
		cfg.Container.CornerRadius = o.corner
	}
	if flags.Changed("radius") {
		cfg.CircleRadius = o.radius
	}
	if flags.Changed("strategy") || cfg.Strategy == "" {
		cfg.Strategy = o.strategy
	}
	if flags.Changed("attempts") {
		cfg.Attempts = o.attempts
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = o.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
