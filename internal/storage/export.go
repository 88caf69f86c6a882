package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

type ExportData struct {
	ID       string             `json:"id"`
	Request  packing.Request    `json:"request"`
	Strategy string             `json:"strategy"`
	Seed     int64              `json:"seed"`
	Placed   int                `json:"placed"`
	Dropped  []int              `json:"dropped"`
	Points   [][2]float64       `json:"points"`
	Phases   []string           `json:"phases"`
	Spawns   []items.Spawn      `json:"spawns,omitempty"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run as a single JSON document.
func ExportJSON(w io.Writer, id string, rec *Record) error {
	l := rec.Layout
	data := ExportData{
		ID:       id,
		Request:  l.Request,
		Strategy: rec.Strategy,
		Seed:     rec.Seed,
		Placed:   l.Placed(),
		Dropped:  l.Dropped,
		Points:   make([][2]float64, len(l.Points)),
		Phases:   l.Phases,
		Spawns:   rec.Spawns,
		Metrics:  rec.Metrics,
	}
	if data.Dropped == nil {
		data.Dropped = []int{}
	}
	for i, p := range l.Points {
		data.Points[i] = [2]float64{p.X, p.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
