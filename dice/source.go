package dice

import (
	"math/rand/v2"
	"time"
)

// Source is the uniform random provider used by every effect
// Not safe for concurrent use; all callers share the UI goroutine
type Source interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// NewSource returns a PCG-backed source
// Seed 0 seeds from the wall clock
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
