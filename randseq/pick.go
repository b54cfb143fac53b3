package randseq

// pickIndex validates a [start, start+length) window over a sequence of n
// elements and draws one index uniformly from it. The window is clipped to
// the sequence's end; a window that starts out of bounds or has no length
// yields ok=false.
func pickIndex(n, start, length int, src Source) (int, bool) {
	if n == 0 || start < 0 || start >= n || length <= 0 {
		return 0, false
	}
	end := start + length
	if end > n {
		end = n
	}

	return start + draw(src, end-start), true
}

// Item returns one element of s drawn uniformly at random.
// ok=false when s is empty.
//
// Time Complexity: O(1)
func Item[S ~[]E, E any](s S, src Source) (E, bool) {
	return ItemRange(s, src, 0, len(s))
}

// ItemRange returns one element drawn uniformly from s[start : start+length]
// (clipped to the end of s). ok=false for an empty sequence, an out-of-range
// start, or a non-positive length.
//
// Time Complexity: O(1)
func ItemRange[S ~[]E, E any](s S, src Source, start, length int) (E, bool) {
	var zero E
	i, ok := pickIndex(len(s), start, length, src)
	if !ok {
		return zero, false
	}

	return s[i], true
}

// Remove deletes one uniformly drawn element from *s and returns it,
// preserving the relative order of the remaining elements.
// ok=false when *s is empty.
//
// Time Complexity: O(n) for the shift.
func Remove[S ~[]E, E any](s *S, src Source) (E, bool) {
	return RemoveRange(s, src, 0, len(*s))
}

// RemoveRange deletes one element drawn uniformly from the
// [start, start+length) window of *s (clipped to the end) and returns it.
// The remainder keeps its relative order; *s shrinks by one.
// ok=false under the same window rules as ItemRange.
//
// Time Complexity: O(n) for the shift.
func RemoveRange[S ~[]E, E any](s *S, src Source, start, length int) (E, bool) {
	var zero E
	seq := *s
	i, ok := pickIndex(len(seq), start, length, src)
	if !ok {
		return zero, false
	}

	item := seq[i]
	copy(seq[i:], seq[i+1:])
	seq[len(seq)-1] = zero // clear the vacated tail slot
	*s = seq[:len(seq)-1]

	return item, true
}

// RotateLeft moves the front element of s to the back, in place, and returns
// the moved element. ok=false when s is empty. Length never changes.
//
// Time Complexity: O(n) for the shift.
func RotateLeft[S ~[]E, E any](s S) (E, bool) {
	var zero E
	if len(s) == 0 {
		return zero, false
	}

	front := s[0]
	copy(s, s[1:])
	s[len(s)-1] = front

	return front, true
}
