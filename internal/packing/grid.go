package packing

import "math"

// Grid is the lattice searched by [SpiralGrid]. Cell (col, row) sits at
// Origin + (col, row) * Spacing.
type Grid struct {
	Origin     Point
	Spacing    float64
	Cols, Rows int
}

func NewGrid(r Region) Grid {
	g := Grid{Origin: r.Bounds.Min, Spacing: r.Spacing}
	if r.Spacing <= 0 {
		return g
	}
	g.Cols = int(math.Floor(r.Width() / r.Spacing))
	g.Rows = int(math.Floor(r.Height() / r.Spacing))
	return g
}

func (g Grid) At(col, row int) Point {
	return Point{
		X: g.Origin.X + float64(col)*g.Spacing,
		Y: g.Origin.Y + float64(row)*g.Spacing,
	}
}

// Center returns the middle cell.
func (g Grid) Center() (col, row int) {
	return g.Cols / 2, g.Rows / 2
}

// Spiral visits cells ring by ring around the center cell. Ring 0 is the
// center; ring n holds the in-bounds cells on the border of the (2n+1)^2
// square around it, in row-major order. Iteration stops when visit returns
// false.
func (g Grid) Spiral(visit func(col, row int) bool) {
	if g.Cols <= 0 || g.Rows <= 0 {
		return
	}
	cc, cr := g.Center()
	maxRing := max(g.Cols, g.Rows)
	for ring := 0; ring <= maxRing; ring++ {
		for row := cr - ring; row <= cr+ring; row++ {
			if row < 0 || row >= g.Rows {
				continue
			}
			step := 2 * ring
			if row == cr-ring || row == cr+ring {
				step = 1
			}
			for col := cc - ring; col <= cc+ring; col += step {
				if col < 0 || col >= g.Cols {
					continue
				}
				if !visit(col, row) {
					return
				}
			}
		}
	}
}
