package packing

import "github.com/jbeda/geom"

// Region is the safe region for circle centers: a rectangle whose four
// corners are cut by quarter circles matching the container's rounding.
type Region struct {
	Bounds geom.Rect
	// CornerRadius is the container corner radius minus the margin. Values
	// <= 0 leave the corners square.
	CornerRadius float64
	Spacing      float64
}

// corner is one rounded corner. sx and sy point from the corner center
// toward the corner of the bounds.
type corner struct {
	center Point
	sx, sy float64
}

func (r Region) corners() [4]corner {
	lo, hi, rc := r.Bounds.Min, r.Bounds.Max, r.CornerRadius
	return [4]corner{
		{center: Point{X: lo.X + rc, Y: lo.Y + rc}, sx: -1, sy: -1},
		{center: Point{X: hi.X - rc, Y: lo.Y + rc}, sx: 1, sy: -1},
		{center: Point{X: lo.X + rc, Y: hi.Y - rc}, sx: -1, sy: 1},
		{center: Point{X: hi.X - rc, Y: hi.Y - rc}, sx: 1, sy: 1},
	}
}

// covers reports whether p lies strictly inside the corner's quadrant.
func (c corner) covers(p Point) bool {
	d := p.Minus(c.center)
	return d.X*c.sx > 0 && d.Y*c.sy > 0
}

func (r Region) Width() float64  { return r.Bounds.Width() }
func (r Region) Height() float64 { return r.Bounds.Height() }

// InBounds reports whether p lies inside the rectangular bounds.
func (r Region) InBounds(p Point) bool {
	return p.X >= r.Bounds.Min.X && p.X <= r.Bounds.Max.X &&
		p.Y >= r.Bounds.Min.Y && p.Y <= r.Bounds.Max.Y
}

// InCorners reports whether p satisfies the rounded-corner constraint.
func (r Region) InCorners(p Point) bool {
	if r.CornerRadius <= 0 {
		return true
	}
	for _, c := range r.corners() {
		if c.covers(p) && p.DistanceFrom(c.center) > r.CornerRadius {
			return false
		}
	}
	return true
}

// Contains reports whether p is a legal circle center ignoring other circles.
func (r Region) Contains(p Point) bool {
	return r.InBounds(p) && r.InCorners(p)
}

// Clear reports whether p keeps the minimum spacing to every placed point.
func (r Region) Clear(p Point, placed []Point) bool {
	for _, q := range placed {
		if p.DistanceFrom(q) < r.Spacing {
			return false
		}
	}
	return true
}

// Accepts combines Contains and Clear.
func (r Region) Accepts(p Point, placed []Point) bool {
	return r.Contains(p) && r.Clear(p, placed)
}
