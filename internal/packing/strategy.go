package packing

// Strategy finds one point accepted by a region given the points already
// placed.
type Strategy interface {
	Name() string
	Place(r Region, placed []Point) (Point, bool)
}

// RandomSearch draws uniform candidates inside the region bounds and returns
// the first accepted one.
type RandomSearch struct {
	Rand Source
	// Attempts defaults to MaxAttempts when <= 0.
	Attempts int
}

func (s *RandomSearch) Name() string { return "random" }

func (s *RandomSearch) Place(r Region, placed []Point) (Point, bool) {
	if s.Rand == nil {
		return Point{}, false
	}
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = MaxAttempts
	}
	w, h := r.Width(), r.Height()
	for i := 0; i < attempts; i++ {
		p := Point{
			X: r.Bounds.Min.X + s.Rand.Float64()*w,
			Y: r.Bounds.Min.Y + s.Rand.Float64()*h,
		}
		if r.Accepts(p, placed) {
			return p, true
		}
	}
	return Point{}, false
}

// SpiralGrid searches the region's grid outward from its center cell.
// It is deterministic.
type SpiralGrid struct{}

func (SpiralGrid) Name() string { return "grid" }

func (SpiralGrid) Place(r Region, placed []Point) (Point, bool) {
	g := NewGrid(r)
	var found Point
	ok := false
	g.Spiral(func(col, row int) bool {
		p := g.At(col, row)
		if r.Accepts(p, placed) {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}
