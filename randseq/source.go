// Package randseq: injected randomness capability and its constructors.
package randseq

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// Source supplies uniform random float64 values in [0,1). It is the sole
// randomness dependency of this package. A nil Source is a programmer
// error and panics on the first draw.
type Source func() float64

// FromRand adapts a math/rand generator into a Source.
// Complexity: O(1).
func FromRand(r *rand.Rand) Source {
	return r.Float64
}

// MT19937 returns a Mersenne-Twister-backed Source seeded with seed.
// Two Sources built from the same seed produce identical draw sequences,
// which makes shuffles and selections reproducible across runs.
// Complexity: O(1) per draw after O(n) state init.
func MT19937(seed int64) Source {
	mt := mt19937.New()
	mt.Seed(seed)

	return rand.New(mt).Float64
}

// draw maps one uniform float in [0,1) onto an integer index in [0,n).
// Precondition: n ≥ 1.
func draw(src Source, n int) int {
	return int(src() * float64(n))
}
