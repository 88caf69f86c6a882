package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

// RunInfo identifies the stored run a document was made from. It is
// printed in the header and encoded in the QR code.
type RunInfo struct {
	ID          string `json:"id"`
	Strategy    string `json:"strategy"`
	Seed        int64  `json:"seed"`
	Fingerprint string `json:"fingerprint"`
	Requested   int    `json:"requested"`
	Placed      int    `json:"placed"`
}

// A4 portrait, mm.
const (
	pdfPageWidth    = 210.0
	pdfPageHeight   = 297.0
	pdfMargin       = 15.0
	pdfHeaderHeight = 10.0
	pdfQRSize       = 30.0
	pdfLegendHeight = 40.0
)

// WritePDF renders the layout on one page with a header, a per-kind legend
// and a QR code of the run info.
func WritePDF(w io.Writer, info RunInfo, l packing.Layout, spawns []items.Spawn, colors map[string]string) error {
	cw, ch := l.Request.Container.Width, l.Request.Container.Height
	if cw <= 0 || ch <= 0 {
		return fmt.Errorf("export: container must be positive, got %gx%g", cw, ch)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, pdfHeaderHeight, "bottle layout "+info.ID, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(pdfMargin, pdfMargin+pdfHeaderHeight)
	stats := fmt.Sprintf("%gx%g corner %g | radius %g | placed %d/%d | %s seed %d",
		cw, ch, l.Request.CornerRadius, l.Request.CircleRadius,
		l.Placed(), l.Request.Count, info.Strategy, info.Seed)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 5, stats, "", 0, "L", false, 0, "")

	top := pdfMargin + pdfHeaderHeight + 10
	drawW := pdfPageWidth - 2*pdfMargin
	drawH := pdfPageHeight - top - pdfMargin - pdfLegendHeight
	scale := math.Min(drawW/cw, drawH/ch)
	offsetX := pdfMargin + (drawW-cw*scale)/2

	cr := min(max(l.Request.CornerRadius, 0), cw/2, ch/2)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.RoundedRect(offsetX, top, cw*scale, ch*scale, cr*scale, "1234", "D")

	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.2)
	for i, p := range l.Points {
		c := defaultFill
		if i < len(spawns) {
			if parsed, ok := parseHex(colors[spawns[i].Kind]); ok {
				c = parsed
			}
		}
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.Circle(offsetX+p.X*scale, top+(ch-p.Y)*scale, l.Request.CircleRadius*scale, "FD")
	}

	legendY := top + ch*scale + 8
	drawLegend(pdf, legendY, spawns, colors)

	if err := drawQR(pdf, info, pdfPageWidth-pdfMargin-pdfQRSize, legendY); err != nil {
		return err
	}

	return pdf.Output(w)
}

func drawLegend(pdf *fpdf.Fpdf, y float64, spawns []items.Spawn, colors map[string]string) {
	counts := make(map[string]int)
	for _, s := range spawns {
		counts[s.Kind]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	pdf.SetFont("Helvetica", "", 8)
	for i, k := range kinds {
		c, ok := parseHex(colors[k])
		if !ok {
			c = defaultFill
		}
		rowY := y + float64(i)*5
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.Rect(pdfMargin, rowY, 4, 3.5, "F")
		pdf.SetXY(pdfMargin+6, rowY)
		pdf.CellFormat(40, 3.5, fmt.Sprintf("%s x%d", k, counts[k]), "", 0, "L", false, 0, "")
	}
}

func drawQR(pdf *fpdf.Fpdf, info RunInfo, x, y float64) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal run info: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	name := "qr_" + info.ID
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x, y, pdfQRSize, pdfQRSize, false, opts, 0, "")
	return nil
}
