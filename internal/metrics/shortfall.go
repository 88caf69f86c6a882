package metrics

import "github.com/san-kum/bottle/internal/packing"

// Shortfall is the mean number of dropped circles per layout.
type Shortfall struct {
	name    string
	samples int
	dropped int
}

func NewShortfall() *Shortfall {
	return &Shortfall{name: "shortfall"}
}

func (s *Shortfall) Name() string { return s.name }

func (s *Shortfall) Observe(l packing.Layout) {
	s.dropped += l.Shortfall()
	s.samples++
}

func (s *Shortfall) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.dropped) / float64(s.samples)
}

func (s *Shortfall) Reset() {
	s.dropped = 0
	s.samples = 0
}

// Fallbacks is the mean number of points per layout placed by the grid
// phase after random search gave up.
type Fallbacks struct {
	name    string
	phase   string
	samples int
	count   int
}

func NewFallbacks() *Fallbacks {
	return &Fallbacks{name: "grid_fallbacks", phase: packing.SpiralGrid{}.Name()}
}

func (f *Fallbacks) Name() string { return f.name }

func (f *Fallbacks) Observe(l packing.Layout) {
	f.count += l.CountPhase(f.phase)
	f.samples++
}

func (f *Fallbacks) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return float64(f.count) / float64(f.samples)
}

func (f *Fallbacks) Reset() {
	f.count = 0
	f.samples = 0
}
