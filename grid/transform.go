package grid

// Transpose returns a freshly allocated C×R grid t with t[i][j] = m[j][i]
// for an R×C input. The input is never touched.
//
// Precondition: m is rectangular with at least one row and one column.
// Ragged rows yield unspecified (but memory-safe) results.
//
// Time Complexity: O(R×C)
// Memory: O(R×C)
func Transpose[T any](m Matrix[T]) Matrix[T] {
	rows := len(m)
	if rows == 0 {
		return Matrix[T]{}
	}
	cols := len(m[0])

	t := make(Matrix[T], cols)
	for i := 0; i < cols; i++ {
		t[i] = make([]T, rows)
		for j := 0; j < rows; j++ {
			t[i][j] = m[j][i]
		}
	}

	return t
}

// Rotate rotates m according to r and returns the rotated grid.
//
// Per-branch contract (the asymmetry is deliberate and load-bearing):
//
//   - Left:  Transpose(m), then reverse the row order of the result.
//     Input untouched; result is a new allocation.
//   - Right: reverse the row order of m IN PLACE, then Transpose.
//     Input's row order is mutated; result is a new allocation.
//   - Half:  reverse every row in place, then the row order in place.
//     Returns the same container it was given.
//   - Unsupported angle (e.g. Degrees(45)): defined no-op, returns m.
//
// Precondition: m is rectangular, R,C ≥ 1 (see Transpose).
//
// Time Complexity: O(R×C)
func Rotate[T any](m Matrix[T], r Rotation) Matrix[T] {
	dir, ok := r.resolve()
	if !ok {
		return m
	}

	switch dir {
	case Left:
		t := Transpose(m)
		reverseRows(t)
		return t
	case Right:
		reverseRows(m)
		return Transpose(m)
	case Half:
		for _, row := range m {
			reverseRow(row)
		}
		reverseRows(m)
		return m
	}

	return m
}

// Rectangular reports whether m satisfies the transform precondition:
// at least one row and one column, every row the same length.
// Complexity: O(R).
func Rectangular[T any](m Matrix[T]) bool {
	if len(m) == 0 || len(m[0]) == 0 {
		return false
	}
	w := len(m[0])
	for _, row := range m[1:] {
		if len(row) != w {
			return false
		}
	}

	return true
}

// reverseRows reverses the order of m's rows in place.
// Complexity: O(R).
func reverseRows[T any](m Matrix[T]) {
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

// reverseRow reverses a single row in place.
// Complexity: O(C).
func reverseRow[T any](row []T) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}
