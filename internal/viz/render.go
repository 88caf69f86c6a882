package viz

import (
	"math"

	"github.com/san-kum/bottle/internal/packing"
)

// Renderer projects container coordinates onto a canvas. The container's
// y axis points up; the canvas's points down.
type Renderer struct {
	canvas *Canvas
	size   packing.Size
	scale  float64
}

// NewRenderer sizes a canvas cols characters wide for the container.
func NewRenderer(size packing.Size, cols int) *Renderer {
	if cols < 1 {
		cols = 1
	}
	r := &Renderer{size: size}
	pw := cols * 2
	if size.Width > 0 {
		r.scale = float64(pw-1) / size.Width
	}
	ph := int(math.Ceil(math.Max(size.Height, 0)*r.scale)) + 1
	r.canvas = NewCanvas(cols, (ph+3)/4)
	return r
}

func (r *Renderer) Canvas() *Canvas { return r.canvas }

func (r *Renderer) project(p packing.Point) (int, int) {
	x := int(math.Round(p.X * r.scale))
	y := int(math.Round((r.size.Height - p.Y) * r.scale))
	return x, y
}

func (r *Renderer) line(a, b packing.Point) {
	x0, y0 := r.project(a)
	x1, y1 := r.project(b)
	r.canvas.DrawLine(x0, y0, x1, y1)
}

// arc draws a circular arc from angle a0 to a1 (radians, counterclockwise
// in container space).
func (r *Renderer) arc(center packing.Point, radius, a0, a1 float64) {
	steps := max(8, int(radius*r.scale*2))
	prev := packing.Point{X: center.X + radius*math.Cos(a0), Y: center.Y + radius*math.Sin(a0)}
	for i := 1; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		next := packing.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
		r.line(prev, next)
		prev = next
	}
}

// DrawContainer outlines the rounded rectangle.
func (r *Renderer) DrawContainer(cornerRadius float64) {
	w, h := r.size.Width, r.size.Height
	cr := math.Max(0, math.Min(cornerRadius, math.Min(w, h)/2))

	r.line(packing.Point{X: cr, Y: 0}, packing.Point{X: w - cr, Y: 0})
	r.line(packing.Point{X: cr, Y: h}, packing.Point{X: w - cr, Y: h})
	r.line(packing.Point{X: 0, Y: cr}, packing.Point{X: 0, Y: h - cr})
	r.line(packing.Point{X: w, Y: cr}, packing.Point{X: w, Y: h - cr})
	if cr == 0 {
		return
	}
	r.arc(packing.Point{X: cr, Y: cr}, cr, math.Pi, 1.5*math.Pi)
	r.arc(packing.Point{X: w - cr, Y: cr}, cr, 1.5*math.Pi, 2*math.Pi)
	r.arc(packing.Point{X: w - cr, Y: h - cr}, cr, 0, 0.5*math.Pi)
	r.arc(packing.Point{X: cr, Y: h - cr}, cr, 0.5*math.Pi, math.Pi)
}

func (r *Renderer) DrawCircles(points []packing.Point, radius float64) {
	pr := int(math.Round(radius * r.scale))
	for _, p := range points {
		x, y := r.project(p)
		r.canvas.DrawCircle(x, y, pr)
	}
}

// Render draws the layout's container and circles cols characters wide.
func Render(l packing.Layout, cols int) string {
	r := NewRenderer(l.Request.Container, cols)
	r.DrawContainer(l.Request.CornerRadius)
	r.DrawCircles(l.Points, l.Request.CircleRadius)
	return r.canvas.String()
}
