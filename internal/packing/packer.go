package packing

// Packer places circles one at a time, trying its strategies in order for
// each circle. Later circles avoid all earlier ones.
type Packer struct {
	strategies []Strategy
}

func New(strategies ...Strategy) *Packer {
	return &Packer{strategies: strategies}
}

// NewHybrid returns a packer that searches randomly first and falls back to
// the spiral grid.
func NewHybrid(src Source) *Packer {
	return New(&RandomSearch{Rand: src, Attempts: MaxAttempts}, SpiralGrid{})
}

func (p *Packer) Strategies() []Strategy {
	return p.strategies
}

// Layout packs the request and records which strategy placed each point.
// Invalid requests yield an empty layout.
func (p *Packer) Layout(req Request) Layout {
	layout := Layout{Request: req, Points: []Point{}}
	if req.Count <= 0 {
		return layout
	}
	region, ok := req.Region()
	if !ok {
		for i := 0; i < req.Count; i++ {
			layout.Dropped = append(layout.Dropped, i)
		}
		return layout
	}

	for i := 0; i < req.Count; i++ {
		pt, phase, ok := p.place(region, layout.Points)
		if !ok {
			layout.Dropped = append(layout.Dropped, i)
			continue
		}
		layout.Points = append(layout.Points, pt)
		layout.Phases = append(layout.Phases, phase)
	}
	return layout
}

func (p *Packer) place(r Region, placed []Point) (Point, string, bool) {
	for _, s := range p.strategies {
		if pt, ok := s.Place(r, placed); ok {
			return pt, s.Name(), true
		}
	}
	return Point{}, "", false
}

// Pack returns the placed centers. The result may be shorter than
// req.Count.
func (p *Packer) Pack(req Request) []Point {
	return p.Layout(req).Points
}

// PackExact is Pack that reports a shortfall as a *CapacityError. The
// partial result is returned alongside the error.
func (p *Packer) PackExact(req Request) ([]Point, error) {
	l := p.Layout(req)
	if l.Shortfall() > 0 {
		return l.Points, &CapacityError{Requested: req.Count, Placed: l.Placed()}
	}
	return l.Points, nil
}

// Pack places count circles with the hybrid strategy. A nil src disables
// the random phase, leaving only the deterministic grid.
func Pack(count int, container Size, cornerRadius, circleRadius float64, src Source) []Point {
	req := Request{
		Count:        count,
		Container:    container,
		CornerRadius: cornerRadius,
		CircleRadius: circleRadius,
	}
	if src == nil {
		return New(SpiralGrid{}).Pack(req)
	}
	return NewHybrid(src).Pack(req)
}
