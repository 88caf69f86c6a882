package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

const (
	background  = "#0a0a0a"
	glassStroke = "#7fffd4"
	plainFill   = "#00ccff"
)

// LayoutToSVG draws the container and every placed circle. Circles take the
// color of the item kind they were assigned to when spawns and colors are
// given. The y axis is flipped so the container's origin sits bottom-left.
func LayoutToSVG(l packing.Layout, spawns []items.Spawn, colors map[string]string) string {
	w, h := l.Request.Container.Width, l.Request.Container.Height
	if w <= 0 || h <= 0 {
		return ""
	}
	cr := min(max(l.Request.CornerRadius, 0), w/2, h/2)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="0" y="0" width="%g" height="%g" rx="%g" ry="%g" fill="none" stroke="%s" stroke-width="2"/>
`, w, h, w, h, background, w, h, cr, cr, glassStroke))

	for i, p := range l.Points {
		fill := plainFill
		if i < len(spawns) {
			if c, ok := colors[spawns[i].Kind]; ok && c != "" {
				fill = c
			}
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%g" fill="%s"/>
`, p.X, h-p.Y, l.Request.CircleRadius, fill))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteCSV writes one "index,x,y,phase" row per placed point.
func WriteCSV(w io.Writer, l packing.Layout) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x", "y", "phase"}); err != nil {
		return err
	}
	for i, p := range l.Points {
		phase := ""
		if i < len(l.Phases) {
			phase = l.Phases[i]
		}
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			phase,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
