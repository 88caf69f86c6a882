package items

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/san-kum/bottle/internal/packing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest()
	assert.Equal(t, 17, m.Total())
	assert.Len(t, m.Expand(), 17)
	assert.Equal(t, "#00a86b", m.Colors()["jade"])
}

func TestManifest_NegativeQuantity(t *testing.T) {
	m := Manifest{{Name: "a", Quantity: 2}, {Name: "b", Quantity: -3}}
	assert.Equal(t, 2, m.Total())
	assert.Equal(t, []string{"a", "a"}, m.Expand())
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	names := DefaultManifest().Expand()
	shuffled := append([]string(nil), names...)
	Shuffle(shuffled, rand.New(rand.NewSource(3)))

	sort.Strings(names)
	sorted := append([]string(nil), shuffled...)
	sort.Strings(sorted)
	assert.Equal(t, names, sorted)
}

func TestShuffle_Seeded(t *testing.T) {
	a := DefaultManifest().Expand()
	b := DefaultManifest().Expand()
	Shuffle(a, rand.New(rand.NewSource(9)))
	Shuffle(b, rand.New(rand.NewSource(9)))
	assert.Equal(t, a, b)
}

func TestAssign(t *testing.T) {
	names := []string{"amber", "jade", "coral"}
	points := []packing.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

	spawns, unplaced := Assign(names, points)
	require.Len(t, spawns, 2)
	assert.Equal(t, Spawn{Kind: "amber", Position: packing.Point{X: 1, Y: 2}}, spawns[0])
	assert.Equal(t, "jade", spawns[1].Kind)
	assert.Equal(t, []string{"coral"}, unplaced)
}

func TestAssign_AllPlaced(t *testing.T) {
	spawns, unplaced := Assign([]string{"a"}, []packing.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.Len(t, spawns, 1)
	assert.Empty(t, unplaced)
}
