package grid

import (
	"math/rand"
	"time"
)

// Source supplies the randomness used for spawning.
// *rand.Rand satisfies it; tests provide scripted sequences.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// NewSource returns a seeded source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
