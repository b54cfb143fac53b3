package ranges

import (
	"math"

	"golang.org/x/exp/constraints"
)

// defaultStep is the increment used when a step is omitted.
const defaultStep = 1.0

// Ints returns the inclusive integer range {start, start+1, …, end}.
// If start > end the result is an empty sequence (no error).
//
// Time Complexity: O(end−start)
func Ints[T constraints.Integer](start, end T) []T {
	if start > end {
		return []T{}
	}

	out := make([]T, 0, int(end-start)+1)
	// Break on equality rather than v <= end: v++ past the maximal value of
	// T would wrap and loop forever.
	for v := start; ; v++ {
		out = append(out, v)
		if v == end {
			break
		}
	}

	return out
}

// Steps builds a stepped numeric sequence. The shape is chosen by arity:
//
//   - Steps()              → empty sequence
//   - Steps(n)             → half-open [0, n) with step 1
//   - Steps(start, end)    → start..end with step 1
//   - Steps(start, end, s) → start..end with step s (extra args ignored)
//
// The element count is max(roundHalfAway((end−start)/s′), 0), where s′
// substitutes 1 for a zero step in the length computation only. Elements are
// emitted by repeatedly adding the ORIGINAL step to a running value, so a
// zero step repeats start:
//
//	Steps(4)        → [0 1 2 3]
//	Steps(1, 5)     → [1 2 3 4]
//	Steps(0, 20, 5) → [0 5 10 15]
//	Steps(0, -4, -1)→ [0 -1 -2 -3]
//	Steps(1, 4, 0)  → [1 1 1]
//	Steps(0)        → []
//
// Rounding breaks .5 ties away from zero (2.5→3, −2.5→−3), not upward.
//
// Time Complexity: O(length)
func Steps(args ...float64) []float64 {
	var start, end, step float64
	switch len(args) {
	case 0:
		return []float64{}
	case 1:
		start, end, step = 0, args[0], defaultStep
	case 2:
		start, end, step = args[0], args[1], defaultStep
	default:
		start, end, step = args[0], args[1], args[2]
	}

	// Zero-step substitution applies to the length divisor only; the emitted
	// increment below stays the caller's step.
	div := step
	if div == 0 {
		div = defaultStep
	}
	// math.Round is round-half-away-from-zero, the exact tie rule required.
	n := int(math.Round((end - start) / div))
	if n < 0 {
		n = 0
	}

	out := make([]float64, n)
	v := start
	for i := 0; i < n; i++ {
		out[i] = v
		v += step
	}

	return out
}
