// Package ranges generates integer ranges and stepped numeric sequences,
// the kind used for frame indices, tile coordinates and animation timelines.
//
// Two generators are provided:
//
//   - Ints(start, end)  — inclusive [start, end]; start > end yields an
//     empty sequence, never an error.
//   - Steps(args...)    — flexible stepped sequence with arity-based shapes:
//     Steps(n) is the half-open [0, n) with step 1, Steps(start, end) steps
//     by 1, Steps(start, end, step) steps by step. Negative and zero steps
//     are both meaningful; see Steps for the exact length rule.
//
// Degenerate requests are communicated through empty sequences only; no
// generator returns an error or panics on representable input.
package ranges
