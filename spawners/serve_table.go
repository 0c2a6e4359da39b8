package spawners

import (
	"math/rand/v2"
)

// ServeTable defines the possible vertical speeds of a serve and their odds
type ServeTable struct {
	Entries []ServeTableEntry
	rng     *rand.Rand
}

// ServeTableEntry represents a single entry in a serve table
type ServeTableEntry struct {
	Vy     float64
	Weight int
}

// DefaultServes is a gentle spread of serve angles, flat ones most likely.
var DefaultServes = []ServeTableEntry{
	{Vy: 0, Weight: 4},
	{Vy: -1, Weight: 2},
	{Vy: 1, Weight: 2},
	{Vy: -2, Weight: 1},
	{Vy: 2, Weight: 1},
}

// NewServeTable creates a serve table drawing from a generator seeded with seed
func NewServeTable(entries []ServeTableEntry, seed uint64) *ServeTable {
	return &ServeTable{
		Entries: entries,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll picks the vertical speed of the next serve
func (st *ServeTable) Roll() float64 {
	// Calculate total weight
	totalWeight := 0
	for _, entry := range st.Entries {
		totalWeight += max(entry.Weight, 0)
	}
	if totalWeight == 0 {
		return 0
	}

	roll := st.rng.IntN(totalWeight)
	for _, entry := range st.Entries {
		if entry.Weight <= 0 {
			continue
		}
		if roll < entry.Weight {
			return entry.Vy
		}
		roll -= entry.Weight
	}
	return 0
}
