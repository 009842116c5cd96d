package exchange

import (
	"math/rand/v2"
	"time"
)

// newRand returns the random source used by a single call when the caller did not supply one.
// A zero seed draws the seed from the clock, any other seed is used verbatim.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSeededRand(seed)
}

// NewSeededRand returns a deterministic random source; two sources built from the same seed
// produce the same gift exchange for the same input.
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
