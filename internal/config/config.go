package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

const (
	DefaultWidth        = 290.0
	DefaultHeight       = 345.0
	DefaultCornerRadius = 85.0
	DefaultCircleRadius = 20.0
	DefaultStrategy     = "hybrid"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Container    ContainerConfig `yaml:"container" toml:"container"`
	CircleRadius float64         `yaml:"circle_radius" toml:"circle_radius"`
	// Count overrides the manifest total when > 0.
	Count    int            `yaml:"count,omitempty" toml:"count,omitempty"`
	Items    items.Manifest `yaml:"items" toml:"items"`
	Strategy string         `yaml:"strategy" toml:"strategy"`
	Attempts int            `yaml:"attempts,omitempty" toml:"attempts,omitempty"`
	Seed     int64          `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Strict   bool           `yaml:"strict,omitempty" toml:"strict,omitempty"`
}

type ContainerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	CornerRadius float64 `yaml:"corner_radius" toml:"corner_radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Container: ContainerConfig{
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			CornerRadius: DefaultCornerRadius,
		},
		CircleRadius: DefaultCircleRadius,
		Items:        items.DefaultManifest(),
		Strategy:     DefaultStrategy,
		Attempts:     packing.MaxAttempts,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML or TOML (by .toml extension) file on top of the
// defaults. A file without items keeps the default manifest.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Items = nil
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Items) == 0 {
		cfg.Items = items.DefaultManifest()
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Total is the number of circles to pack.
func (c *Config) Total() int {
	if c.Count > 0 {
		return c.Count
	}
	return c.Items.Total()
}

func (c *Config) Request() packing.Request {
	return packing.Request{
		Count: c.Total(),
		Container: packing.Size{
			Width:  c.Container.Width,
			Height: c.Container.Height,
		},
		CornerRadius: c.Container.CornerRadius,
		CircleRadius: c.CircleRadius,
	}
}

// Validate rejects configurations the packer would silently turn into an
// empty layout.
func (c *Config) Validate() error {
	switch {
	case c.Container.Width <= 0 || c.Container.Height <= 0:
		return fmt.Errorf("%w: container must be positive, got %gx%g", ErrInvalid, c.Container.Width, c.Container.Height)
	case c.Container.CornerRadius < 0:
		return fmt.Errorf("%w: corner radius must not be negative, got %g", ErrInvalid, c.Container.CornerRadius)
	case c.CircleRadius <= 0:
		return fmt.Errorf("%w: circle radius must be positive, got %g", ErrInvalid, c.CircleRadius)
	case c.Count < 0:
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalid, c.Count)
	case c.Attempts < 0:
		return fmt.Errorf("%w: attempts must not be negative, got %d", ErrInvalid, c.Attempts)
	}
	for _, k := range c.Items {
		if k.Quantity < 0 {
			return fmt.Errorf("%w: item %q has negative quantity", ErrInvalid, k.Name)
		}
	}
	return nil
}
