package metrics

import (
	"math"

	"github.com/san-kum/bottle/internal/packing"
)

// MinSpacing is the smallest center distance seen in any observed layout,
// in units of the circle radius. Layouts with fewer than two points are
// ignored.
type MinSpacing struct {
	name string
	min  float64
}

func NewMinSpacing() *MinSpacing {
	return &MinSpacing{name: "min_spacing", min: math.Inf(1)}
}

func (m *MinSpacing) Name() string { return m.name }

func (m *MinSpacing) Observe(l packing.Layout) {
	r := l.Request.CircleRadius
	if r <= 0 {
		return
	}
	pts := l.Points
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].DistanceFrom(pts[j]) / r; d < m.min {
				m.min = d
			}
		}
	}
}

func (m *MinSpacing) Value() float64 {
	if math.IsInf(m.min, 1) {
		return 0
	}
	return m.min
}

func (m *MinSpacing) Reset() {
	m.min = math.Inf(1)
}
