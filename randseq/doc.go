// Package randseq provides randomized sequence operations — uniform in-place
// shuffling, random selection, random removal — plus the single-step left
// rotation their callers pair them with.
//
// Randomness is an injected capability: every randomized operation takes a
// Source, a func() float64 uniform in [0,1). There is no package-level
// generator and nothing touches the process-global math/rand state, so a
// seeded Source makes any run reproducible. Adapt an existing *rand.Rand via
// FromRand, or build a seedable Mersenne-Twister Source via MT19937.
//
// Degenerate input (empty sequences, out-of-range sub-ranges) is reported
// through comma-ok false returns, never through errors or panics.
package randseq
