package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bottle/internal/experiment"
)

const (
	defaultCols = 48
	maxCols     = 100
	radiusStep  = 1.1
)

// Preview is a Bubble Tea model that shows a packed layout and re-packs it
// whenever a parameter changes.
type Preview struct {
	cfg        experiment.Config
	registry   *experiment.Registry
	strategies []string
	result     *experiment.Result
	err        error
	cols       int
	theme      Theme
}

func NewPreview(cfg experiment.Config, registry *experiment.Registry) Preview {
	if registry == nil {
		registry = experiment.NewRegistry()
	}
	p := Preview{
		cfg:        cfg,
		registry:   registry,
		strategies: registry.ListStrategies(),
		cols:       defaultCols,
		theme:      Themes[0],
	}
	p.repack()
	return p
}

// WithTheme switches to the named theme; unknown names select the first.
func (p Preview) WithTheme(name string) Preview {
	p.theme = GetTheme(name)
	return p
}

func (p *Preview) repack() {
	p.result, p.err = experiment.New(p.cfg, p.registry).Run(context.Background())
}

func (p Preview) Theme() Theme               { return p.theme }
func (p Preview) Config() experiment.Config  { return p.cfg }
func (p Preview) Result() *experiment.Result { return p.result }
func (p Preview) Err() error                 { return p.err }
func (p Preview) Init() tea.Cmd              { return nil }

func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.cols = min(max(msg.Width/2-4, 16), maxCols)
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case "r":
			p.cfg.Seed++
		case "+", "=":
			p.cfg.Request.Count++
		case "-", "_":
			if p.cfg.Request.Count == 0 {
				return p, nil
			}
			p.cfg.Request.Count--
		case "]":
			p.cfg.Request.CircleRadius *= radiusStep
		case "[":
			p.cfg.Request.CircleRadius /= radiusStep
		case "s":
			p.cfg.Strategy = p.nextStrategy()
		case "t":
			p.theme = nextTheme(p.theme.Name)
			return p, nil
		default:
			return p, nil
		}
		p.repack()
	}
	return p, nil
}

func (p Preview) nextStrategy() string {
	for i, name := range p.strategies {
		if name == p.cfg.Strategy {
			return p.strategies[(i+1)%len(p.strategies)]
		}
	}
	if len(p.strategies) > 0 {
		return p.strategies[0]
	}
	return p.cfg.Strategy
}

func (p Preview) View() string {
	theme := p.theme
	req := p.cfg.Request

	var canvas string
	if p.result != nil {
		canvas = lipgloss.NewStyle().Foreground(theme.Glass).Render(Render(p.result.Layout, p.cols))
	}

	var s strings.Builder
	s.WriteString(Title.Foreground(theme.Accent).Render("BOTTLE") + " " + Subtle.Render(p.cfg.Strategy+" · "+theme.Name) + "\n\n")
	if p.result != nil {
		l := p.result.Layout
		status := StatusOK.Render("all placed")
		if l.Shortfall() > 0 {
			status = StatusWarn.Foreground(theme.Warning).Render(fmt.Sprintf("%d dropped", l.Shortfall()))
		}
		s.WriteString(status + "\n\n")
		s.WriteString(Metric("placed", fmt.Sprintf("%d / %d", l.Placed(), req.Count)) + "\n")
		s.WriteString(Metric("seed", fmt.Sprintf("%d", p.cfg.Seed)) + "\n")
		s.WriteString(Metric("radius", fmt.Sprintf("%.1f", req.CircleRadius)) + "\n")
		s.WriteString(Metric("container", fmt.Sprintf("%gx%g r%g", req.Container.Width, req.Container.Height, req.CornerRadius)) + "\n")
		s.WriteString(Metric("min spacing", fmt.Sprintf("%.2f r", p.result.Metrics["min_spacing"])) + "\n")
		s.WriteString(Metric("grid fallback", fmt.Sprintf("%.0f", p.result.Metrics["grid_fallbacks"])) + "\n")
		s.WriteString(Metric("elapsed", p.result.Elapsed.String()) + "\n")
		fill := p.result.Metrics["fill_ratio"]
		s.WriteString(MetricLabel.Render("fill") + ProgressBar(fill, 16) + fmt.Sprintf(" %.0f%%", fill*100) + "\n")
	}
	if p.err != nil {
		s.WriteString("\n" + StatusError.Render(p.err.Error()) + "\n")
	}
	s.WriteString("\n" + Separator(30) + "\n")
	s.WriteString(KeyHint.Render("R:Repack +/-:Count [ ]:Radius\nS:Strategy T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, Panel.BorderForeground(theme.Muted).Render(s.String()))
}

// RunPreview starts the interactive preview in the alternate screen.
func RunPreview(cfg experiment.Config, theme string) error {
	_, err := tea.NewProgram(NewPreview(cfg, nil).WithTheme(theme), tea.WithAltScreen()).Run()
	return err
}
