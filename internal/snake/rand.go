package snake

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand yields uniform integers in [0, n).
type Rand interface {
	Intn(n int) int
}

// NewRand returns a generator seeded from the current time.
func NewRand() Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// NewSeededRand returns a deterministic generator.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}
