package maze

import (
	"math/rand"
	"time"
)

// Source is the only randomness the generator consumes. Intn must return a
// uniformly distributed value in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a Source seeded with the given value. If the seed is not
// positive, a new seed will be selected based on the current time in
// nanoseconds. The seed actually used is returned alongside the source.
func NewSource(seed int64) (Source, int64) {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
