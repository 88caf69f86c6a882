package packing

import (
	"math"
	"math/rand"

	"github.com/jbeda/geom"
)

const (
	// BoundaryInset is the wall thickness of the container.
	BoundaryInset = 10.0
	// MarginBuffer is added to the circle radius to form the margin.
	MarginBuffer = 5.0
	// SpacingFactor times the circle radius is the minimum center distance.
	SpacingFactor = 2.2
	// MaxAttempts bounds the random search for a single circle.
	MaxAttempts = 1000
)

// Point is a circle center in container coordinates. The origin is the
// container's minimum corner.
type Point = geom.Coord

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Request is the input of one packing call.
type Request struct {
	Count        int     `json:"count"`
	Container    Size    `json:"container"`
	CornerRadius float64 `json:"corner_radius"`
	CircleRadius float64 `json:"circle_radius"`
}

// Margin is the distance kept between a circle center and the inner wall.
func (q Request) Margin() float64 {
	return q.CircleRadius + MarginBuffer
}

// Spacing is the minimum distance between two circle centers.
func (q Request) Spacing() float64 {
	return q.CircleRadius * SpacingFactor
}

// Valid reports whether the request describes a packable geometry.
func (q Request) Valid() bool {
	for _, v := range []float64{q.Container.Width, q.Container.Height, q.CornerRadius, q.CircleRadius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return q.Count >= 0 && q.CircleRadius > 0 &&
		q.Container.Width > 0 && q.Container.Height > 0
}

// Region returns the safe region of the request. The second result is false
// when the request is invalid or the insets leave no room for a center.
func (q Request) Region() (Region, bool) {
	if !q.Valid() {
		return Region{}, false
	}
	inset := BoundaryInset + q.Margin()
	r := Region{
		Bounds: geom.Rect{
			Min: Point{X: inset, Y: inset},
			Max: Point{X: q.Container.Width - inset, Y: q.Container.Height - inset},
		},
		CornerRadius: q.CornerRadius - q.Margin(),
		Spacing:      q.Spacing(),
	}
	if r.Bounds.Max.X < r.Bounds.Min.X || r.Bounds.Max.Y < r.Bounds.Min.Y {
		return Region{}, false
	}
	return r, true
}

// Layout is the outcome of packing a request.
type Layout struct {
	Request Request
	Points  []Point
	// Phases[i] names the strategy that placed Points[i].
	Phases []string
	// Dropped lists the request indices no strategy could place.
	Dropped []int
}

func (l Layout) Placed() int { return len(l.Points) }

func (l Layout) Shortfall() int {
	if n := l.Request.Count - len(l.Points); n > 0 {
		return n
	}
	return 0
}

// CountPhase returns how many points the named strategy placed.
func (l Layout) CountPhase(name string) int {
	n := 0
	for _, p := range l.Phases {
		if p == name {
			n++
		}
	}
	return n
}

// Source supplies uniform random numbers in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. It is not safe for concurrent use.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
