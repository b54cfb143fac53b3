package nearest

import "math"

// Closest returns the entry of sorted closest to value, clamped to
// [sorted[0], sorted[last]]. Ties (value exactly halfway between two
// neighbors) resolve to the higher neighbor. An empty scale yields NaN.
//
// Precondition: sorted is ascending (unspecified results otherwise).
//
// Time Complexity: O(n)
func Closest(value float64, sorted []float64) float64 {
	i := ClosestIndex(value, sorted)
	if i < 0 {
		return math.NaN()
	}

	return sorted[i]
}

// ClosestIndex returns the index of the entry Closest would pick, or −1 for
// an empty scale. With duplicate entries the first closest wins.
//
// Time Complexity: O(n)
func ClosestIndex(value float64, sorted []float64) int {
	n := len(sorted)
	if n == 0 {
		return -1
	}
	// A one-entry scale, or a query below the scale, clamps to the front.
	if n == 1 || value < sorted[0] {
		return 0
	}

	// Scan for the first entry ≥ value; its left neighbor is the only other
	// candidate. Ties go to the higher neighbor.
	for i := 1; i < n; i++ {
		if sorted[i] >= value {
			low, high := sorted[i-1], sorted[i]
			if high-value <= value-low {
				return i
			}
			return i - 1
		}
	}

	// value exceeds every entry: the +∞ pseudo-neighbor can never win the
	// tie-break, so clamp to the last real entry.
	return n - 1
}
