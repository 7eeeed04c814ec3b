package core

import (
	"math/rand/v2"
	"time"
)

// ChaosThreshold is the standard-normal cutoff above which a random fill
// marks a cell alive (roughly 31% of cells).
const ChaosThreshold = 0.5

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewClockRNG seeds an RNG from the wall clock.
func NewClockRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// FillNormal sets each cell alive when a standard-normal draw exceeds
// threshold and returns the number of live cells written.
func (r *RNG) FillNormal(cells []bool, threshold float64) int {
	alive := 0
	for i := range cells {
		cells[i] = r.r.NormFloat64() > threshold
		if cells[i] {
			alive++
		}
	}
	return alive
}
