// Package grid provides transpose and quarter/half-turn rotation for
// rectangular 2D grids of arbitrary cell values. It supports:
//
//   - Transpose into a freshly allocated grid (input untouched)
//   - Rotation by named direction (Left, Right, Half) or signed degrees,
//     normalized into [0,360) before dispatch
//   - A defined no-op for unsupported angles (45°, 135°, …), preserved for
//     compatibility with callers that rely on it
//
// Rectangularity — every row the same length, at least one row and one
// column — is a caller precondition. It is never checked or repaired inside
// the transforms; use Rectangular to assert it explicitly when ingesting
// untrusted grids.
//
// Rotation branches are deliberately asymmetric about allocation: the two
// quarter turns allocate a new grid (Right additionally reverses the input's
// row order in place first), while the half turn reverses in place and
// returns the same container. Callers must not assume the result is always
// independent of the argument. See Rotate for the per-branch contract.
package grid
