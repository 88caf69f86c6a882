package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/san-kum/bottle/internal/items"
	"github.com/san-kum/bottle/internal/packing"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv"
)

// ErrRunNotFound is returned when a run directory has no metadata.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Fingerprint string             `json:"fingerprint"`
	Request     packing.Request    `json:"request"`
	Strategy    string             `json:"strategy"`
	Seed        int64              `json:"seed"`
	Placed      int                `json:"placed"`
	Dropped     []int              `json:"dropped,omitempty"`
	Items       items.Manifest     `json:"items,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Record is everything persisted for one packing run.
type Record struct {
	Layout   packing.Layout
	Spawns   []items.Spawn
	Items    items.Manifest
	Strategy string
	Seed     int64
	Metrics  map[string]float64
}

// PointRecord is one row of points.csv.
type PointRecord struct {
	Index int
	Point packing.Point
	Phase string
	Kind  string
}

// Fingerprint identifies a request's geometry and count. Runs with the same
// fingerprint differ only by seed and strategy.
func Fingerprint(req packing.Request) string {
	key := fmt.Sprintf("%d|%g|%g|%g|%g", req.Count, req.Container.Width, req.Container.Height, req.CornerRadius, req.CircleRadius)
	return strconv.FormatUint(xxhash.Sum64String(key), 16)
}

func (s *Store) Save(rec Record) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	l := rec.Layout
	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Fingerprint: Fingerprint(l.Request),
		Request:     l.Request,
		Strategy:    rec.Strategy,
		Seed:        rec.Seed,
		Placed:      l.Placed(),
		Dropped:     l.Dropped,
		Items:       rec.Items,
		Metrics:     rec.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePoints(filepath.Join(runDir, pointsFile), l, rec.Spawns); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePoints(path string, l packing.Layout, spawns []items.Spawn) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "x", "y", "phase", "kind"}); err != nil {
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
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			phase,
			kind,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all readable runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]PointRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, pointsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []PointRecord{}, nil
	}

	points := make([]PointRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(record[1], 64)
		y, errY := strconv.ParseFloat(record[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		pr := PointRecord{Index: idx, Point: packing.Point{X: x, Y: y}}
		if len(record) > 3 {
			pr.Phase = record[3]
		}
		if len(record) > 4 {
			pr.Kind = record[4]
		}
		points = append(points, pr)
	}
	return points, nil
}

// LoadRecord rebuilds the layout and spawns of a stored run.
func (s *Store) LoadRecord(runID string) (*RunMetadata, *Record, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	points, err := s.LoadPoints(runID)
	if err != nil {
		return nil, nil, err
	}

	rec := &Record{
		Layout: packing.Layout{
			Request: meta.Request,
			Points:  make([]packing.Point, 0, len(points)),
			Dropped: meta.Dropped,
		},
		Items:    meta.Items,
		Strategy: meta.Strategy,
		Seed:     meta.Seed,
		Metrics:  meta.Metrics,
	}
	for _, p := range points {
		rec.Layout.Points = append(rec.Layout.Points, p.Point)
		rec.Layout.Phases = append(rec.Layout.Phases, p.Phase)
		if p.Kind != "" {
			rec.Spawns = append(rec.Spawns, items.Spawn{Kind: p.Kind, Position: p.Point})
		}
	}
	return meta, rec, nil
}
