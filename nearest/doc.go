// Package nearest snaps a value onto the closest entry of an ascending
// numeric scale — snap angles onto allowed rotations, zoom factors onto
// zoom stops, timestamps onto frame boundaries.
//
// Contract highlights:
//
//   - The scale must be pre-sorted ascending; that is a caller precondition
//     and is never verified (unsorted input yields unspecified results).
//   - Exact-distance ties resolve to the HIGHER neighbor, deterministically.
//   - Queries below the scale clamp to its first entry, queries above it to
//     its last: the result always lies within [scale[0], scale[last]].
//   - An empty scale yields the NaN sentinel (math.IsNaN to detect), never
//     an error or panic.
//
// The scan is linear from the front; scales in the target workloads hold a
// handful of stops, where a binary search buys nothing.
package nearest
