// Package items models the spheres poured into the bottle: a manifest of
// kinds with fixed quantities, shuffled into a spawn order and matched
// against packed positions.
package items

import (
	"math/rand"

	"github.com/san-kum/bottle/internal/packing"
)

// Kind is one type of sphere.
type Kind struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity" toml:"quantity"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

type Manifest []Kind

// DefaultManifest is the mix used by the bottle demo.
func DefaultManifest() Manifest {
	return Manifest{
		{Name: "amber", Quantity: 7, Color: "#ffb000"},
		{Name: "jade", Quantity: 5, Color: "#00a86b"},
		{Name: "coral", Quantity: 5, Color: "#ff7f50"},
	}
}

// Total is the number of spheres in the manifest. Negative quantities
// count as zero.
func (m Manifest) Total() int {
	n := 0
	for _, k := range m {
		if k.Quantity > 0 {
			n += k.Quantity
		}
	}
	return n
}

// Expand lists each kind name once per unit of quantity, in manifest order.
func (m Manifest) Expand() []string {
	out := make([]string, 0, m.Total())
	for _, k := range m {
		for i := 0; i < k.Quantity; i++ {
			out = append(out, k.Name)
		}
	}
	return out
}

// Colors maps kind names to their display color.
func (m Manifest) Colors() map[string]string {
	out := make(map[string]string, len(m))
	for _, k := range m {
		if k.Color != "" {
			out[k.Name] = k.Color
		}
	}
	return out
}

// Shuffle permutes names in place.
func Shuffle(names []string, r *rand.Rand) {
	r.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}

// Spawn is one sphere paired with its starting position.
type Spawn struct {
	Kind     string        `json:"kind"`
	Position packing.Point `json:"position"`
}

// Assign pairs names[i] with points[i]. Names past the end of points had no
// position and are returned as unplaced.
func Assign(names []string, points []packing.Point) ([]Spawn, []string) {
	n := min(len(names), len(points))
	spawns := make([]Spawn, n)
	for i := 0; i < n; i++ {
		spawns[i] = Spawn{Kind: names[i], Position: points[i]}
	}
	var unplaced []string
	if len(names) > n {
		unplaced = append(unplaced, names[n:]...)
	}
	return spawns, unplaced
}
