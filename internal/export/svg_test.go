package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

func sampleLayout() packing.Layout {
	return packing.Layout{
		Request: packing.Request{
			Count:        2,
			Container:    packing.Size{Width: 290, Height: 345},
			CornerRadius: 85,
			CircleRadius: 20,
		},
		Points: []packing.Point{{X: 123, Y: 167}, {X: 79, Y: 123}},
		Phases: []string{"random", "grid"},
	}
}

func TestLayoutToSVG(t *testing.T) {
	svg := LayoutToSVG(sampleLayout(), nil, nil)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `rx="85"`)
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	// y is flipped: 345 - 167
	assert.Contains(t, svg, `cx="123.0" cy="178.0" r="20"`)
	assert.Contains(t, svg, `fill="`+plainFill+`"`)
}

func TestLayoutToSVGColorsByKind(t *testing.T) {
	spawns := []items.Spawn{
		{Kind: "amber", Position: packing.Point{X: 123, Y: 167}},
		{Kind: "jade", Position: packing.Point{X: 79, Y: 123}},
	}
	colors := map[string]string{"amber": "#ffb000"}

	svg := LayoutToSVG(sampleLayout(), spawns, colors)
	assert.Contains(t, svg, `fill="#ffb000"`)
	// jade has no color and falls back
	assert.Contains(t, svg, `fill="`+plainFill+`"`)
}

func TestLayoutToSVGClampsCorner(t *testing.T) {
	l := sampleLayout()
	l.Request.CornerRadius = 500
	assert.Contains(t, LayoutToSVG(l, nil, nil), `rx="145"`)
}

func TestLayoutToSVGEmptyContainer(t *testing.T) {
	assert.Empty(t, LayoutToSVG(packing.Layout{}, nil, nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleLayout()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"index", "x", "y", "phase"}, rows[0])
	assert.Equal(t, []string{"0", "123", "167", "random"}, rows[1])
	assert.Equal(t, []string{"1", "79", "123", "grid"}, rows[2])
}
