package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/san-kum/bottle/internal/packing"
)

const (
	dxfContainerLayer = "CONTAINER"
	dxfCircleLayer    = "CIRCLES"
)

// SaveDXF writes the container outline and one CIRCLE per placed point.
// DXF shares the container's y-up orientation, so nothing is flipped.
func SaveDXF(path string, l packing.Layout) error {
	w, h := l.Request.Container.Width, l.Request.Container.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("export: container must be positive, got %gx%g", w, h)
	}
	cr := min(max(l.Request.CornerRadius, 0), w/2, h/2)

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dxfContainerLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}

	lines := [][4]float64{
		{cr, 0, w - cr, 0},
		{w, cr, w, h - cr},
		{w - cr, h, cr, h},
		{0, h - cr, 0, cr},
	}
	for _, ln := range lines {
		if _, err := d.Line(ln[0], ln[1], 0, ln[2], ln[3], 0); err != nil {
			return err
		}
	}
	if cr > 0 {
		arcs := []struct{ x, y, start, end float64 }{
			{cr, cr, 180, 270},
			{w - cr, cr, 270, 360},
			{w - cr, h - cr, 0, 90},
			{cr, h - cr, 90, 180},
		}
		for _, a := range arcs {
			if _, err := d.Arc(a.x, a.y, 0, cr, a.start, a.end); err != nil {
				return err
			}
		}
	}

	if _, err := d.AddLayer(dxfCircleLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, p := range l.Points {
		if _, err := d.Circle(p.X, p.Y, 0, l.Request.CircleRadius); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}
