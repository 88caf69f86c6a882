package config

import (
	"sort"

	"github.com/san-kum/bottle/internal/items"
)

var Presets = map[string]*Config{
	"bottle": DefaultConfig(),
	"vial": {
		Container:    ContainerConfig{Width: 50, Height: 50, CornerRadius: 10},
		CircleRadius: 20, Count: 5, Strategy: DefaultStrategy,
		Items: items.Manifest{{Name: "amber", Quantity: 5, Color: "#ffb000"}},
	},
	"sand": {
		Container:    ContainerConfig{Width: DefaultWidth, Height: DefaultHeight, CornerRadius: DefaultCornerRadius},
		CircleRadius: 5, Count: 200, Strategy: DefaultStrategy,
		Items: items.Manifest{{Name: "sand", Quantity: 200, Color: "#e0c890"}},
	},
	"jar": {
		Container:    ContainerConfig{Width: 400, Height: 300, CornerRadius: 40},
		CircleRadius: 18, Strategy: DefaultStrategy,
		Items: items.Manifest{
			{Name: "amber", Quantity: 10, Color: "#ffb000"},
			{Name: "jade", Quantity: 8, Color: "#00a86b"},
			{Name: "coral", Quantity: 8, Color: "#ff7f50"},
			{Name: "onyx", Quantity: 4, Color: "#353839"},
		},
	},
	"grid": {
		Container:    ContainerConfig{Width: DefaultWidth, Height: DefaultHeight, CornerRadius: DefaultCornerRadius},
		CircleRadius: DefaultCircleRadius, Strategy: "grid",
		Items: items.DefaultManifest(),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Items = append(items.Manifest(nil), cfg.Items...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
