package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the uniform integer source used for apple placement
// Intn returns a value in [0, n) and requires n > 0
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded source; seed 0 picks a time-based seed
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
