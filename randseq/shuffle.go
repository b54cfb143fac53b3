package randseq

// Shuffle permutes s in place with the Fisher–Yates algorithm and returns
// the same slice: for i from len(s)−1 down to 1, a swap partner j is drawn
// uniformly from [0, i]. With an unbiased Source every permutation of s is
// equally likely. Empty and single-element sequences are no-ops.
//
// Time Complexity: O(n), in place.
func Shuffle[S ~[]E, E any](s S, src Source) S {
	for i := len(s) - 1; i >= 1; i-- {
		j := draw(src, i+1)
		s[i], s[j] = s[j], s[i]
	}

	return s
}
