package benchmark

import (
	"math/rand"
	"time"
)

// Randomizer hands out independent random sources, one per sweep
type Randomizer struct {
	seed int64
}

// NewRandomizer returns new Randomizer; seed 0 means every source is seeded from the clock
func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{seed: seed}
}

// Seed returns the configured seed
func (rz *Randomizer) Seed() int64 {
	return rz.seed
}

// Source returns a random source for the sweep with the given index.
// The same seed and index always produce the same sequence unless the seed is 0.
func (rz *Randomizer) Source(sweepIndex int) *rand.Rand {
	seed := rz.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += 1 + int64(sweepIndex)
	}

	return rand.New(rand.NewSource(seed)) //nolint:gosec
}
