package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want rgb
		ok   bool
	}{
		{"#ffb000", rgb{255, 176, 0}, true},
		{"00a86b", rgb{0, 168, 107}, true},
		{"#fff", rgb{255, 255, 255}, true},
		{"", rgb{}, false},
		{"#ggg000", rgb{}, false},
		{"#12345", rgb{}, false},
	}
	for _, tt := range tests {
		got, ok := parseHex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestWritePDF(t *testing.T) {
	spawns := []items.Spawn{{Kind: "amber"}, {Kind: "jade"}}
	info := RunInfo{ID: "run-1", Strategy: "hybrid", Seed: 7, Requested: 2, Placed: 2}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, info, sampleLayout(), spawns, map[string]string{"amber": "#ffb000"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	assert.Error(t, WritePDF(&buf, info, packing.Layout{}, nil, nil))
}

func TestSaveDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.dxf")
	require.NoError(t, SaveDXF(path, sampleLayout()))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var circles, arcs, lines int
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.Circle:
			circles++
			assert.Equal(t, 20.0, e.Radius)
		case *entity.Arc:
			arcs++
		case *entity.Line:
			lines++
		}
	}
	assert.Equal(t, 2, circles)
	assert.Equal(t, 4, arcs)
	assert.Equal(t, 4, lines)
}

func TestSaveDXFSquareCorners(t *testing.T) {
	l := sampleLayout()
	l.Request.CornerRadius = 0
	path := filepath.Join(t.TempDir(), "square.dxf")
	require.NoError(t, SaveDXF(path, l))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)
	for _, ent := range drawing.Entities() {
		_, isArc := ent.(*entity.Arc)
		assert.False(t, isArc, "square container should have no arcs")
	}
}

func TestWriteXLSX(t *testing.T) {
	spawns := []items.Spawn{{Kind: "amber"}, {Kind: "jade"}}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleLayout(), spawns))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(pointsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"index", "x", "y", "phase", "kind"}, rows[0])
	assert.Equal(t, []string{"0", "123", "167", "random", "amber"}, rows[1])
	assert.Equal(t, []string{"1", "79", "123", "grid", "jade"}, rows[2])

	req, err := f.GetRows(requestSheet)
	require.NoError(t, err)
	assert.Contains(t, req, []string{"shortfall", "0"})
}
