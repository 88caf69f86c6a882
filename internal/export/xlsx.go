package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

const (
	pointsSheet  = "points"
	requestSheet = "request"
)

// WriteXLSX writes a workbook with a "points" sheet (one row per placed
// point) and a "request" sheet holding the request and shortfall.
func WriteXLSX(w io.Writer, l packing.Layout, spawns []items.Spawn) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", pointsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(pointsSheet, "A1", &[]any{"index", "x", "y", "phase", "kind"}); err != nil {
		return err
	}
	for i, p := range l.Points {
		phase, kind := "", ""
		if i < len(l.Phases) {
			phase = l.Phases[i]
		}
		if i < len(spawns) {
			kind = spawns[i].Kind
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(pointsSheet, cell, &[]any{i, p.X, p.Y, phase, kind}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(requestSheet); err != nil {
		return err
	}
	req := l.Request
	rows := [][]any{
		{"count", req.Count},
		{"width", req.Container.Width},
		{"height", req.Container.Height},
		{"corner_radius", req.CornerRadius},
		{"circle_radius", req.CircleRadius},
		{"placed", l.Placed()},
		{"shortfall", l.Shortfall()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(requestSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
