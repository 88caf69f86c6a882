package metrics

import (
	"math"

	"github.com/san-kum/bottle/internal/packing"
)

// FillRatio is the share of the container area covered by circles,
// averaged over observed layouts.
type FillRatio struct {
	name    string
	samples int
	total   float64
}

func NewFillRatio() *FillRatio {
	return &FillRatio{name: "fill_ratio"}
}

func (f *FillRatio) Name() string { return f.name }

func (f *FillRatio) Observe(l packing.Layout) {
	area := l.Request.Container.Width * l.Request.Container.Height
	if area <= 0 {
		return
	}
	r := l.Request.CircleRadius
	f.total += float64(len(l.Points)) * math.Pi * r * r / area
	f.samples++
}

func (f *FillRatio) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.total / float64(f.samples)
}

func (f *FillRatio) Reset() {
	f.total = 0
	f.samples = 0
}
