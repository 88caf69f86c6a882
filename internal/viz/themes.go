package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the preview canvas and its accents.
type Theme struct {
	Name    string
	Glass   lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeSeaGlass = Theme{
		Name:    "seaglass",
		Glass:   lipgloss.Color("#7fffd4"),
		Accent:  lipgloss.Color("#00ccff"),
		Muted:   lipgloss.Color("#4488aa"),
		Warning: lipgloss.Color("#ffcc00"),
	}

	ThemeAmber = Theme{
		Name:    "amber",
		Glass:   lipgloss.Color("#ffb000"),
		Accent:  lipgloss.Color("#ffd27f"),
		Muted:   lipgloss.Color("#8b6b3c"),
		Warning: lipgloss.Color("#ff4757"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Glass:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#666666"),
		Warning: lipgloss.Color("#ff8800"),
	}

	Themes = []Theme{
		ThemeSeaGlass,
		ThemeAmber,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
