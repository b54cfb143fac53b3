// Package grid: domain types for grid transforms.
package grid

// Matrix is a rectangular 2D grid stored as row-major rows.
// All rows must share one length, with at least one row and one column;
// this is a caller precondition (see the package documentation), not a
// runtime-checked invariant.
type Matrix[T any] [][]T

// Direction enumerates the named grid rotations.
type Direction int

const (
	// Left rotates 90° counter-clockwise (equivalently −270° / 90°).
	Left Direction = iota
	// Right rotates 90° clockwise (equivalently −90° / 270°).
	Right
	// Half rotates 180° (equivalently ±180°).
	Half
)

// File-local degree constants (no magic literals in dispatch).
const (
	degFull  = 360
	degLeft  = 90
	degHalf  = 180
	degRight = 270
)

// Rotation is a tagged rotation request: either a named Direction or a raw
// signed degree count. Build one with Turn or Degrees; the zero value is a
// 0° rotation, which Rotate treats as a no-op.
type Rotation struct {
	dir     Direction
	degrees int
	named   bool
}

// Turn requests rotation by a named Direction.
// Complexity: O(1).
func Turn(d Direction) Rotation {
	return Rotation{dir: d, named: true}
}

// Degrees requests rotation by a signed number of degrees. The value is
// normalized modulo 360 into [0,360) before dispatch, so Degrees(-90) and
// Degrees(270) request the same turn.
// Complexity: O(1).
func Degrees(n int) Rotation {
	return Rotation{degrees: n}
}

// resolve maps the request onto a supported Direction.
// ok=false means the normalized angle is not a quarter or half turn and the
// rotation must be a no-op.
func (r Rotation) resolve() (Direction, bool) {
	if r.named {
		switch r.dir {
		case Left, Right, Half:
			return r.dir, true
		}
		return 0, false
	}
	// True mathematical modulus: negative degree counts land in [0,360).
	switch d := ((r.degrees % degFull) + degFull) % degFull; d {
	case degLeft:
		return Left, true
	case degRight:
		return Right, true
	case degHalf:
		return Half, true
	}

	return 0, false
}
