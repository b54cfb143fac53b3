// Package gridkit is a small toolbox of deterministic, allocation-light
// transformations over slices and 2D grids, built for tile-based 2D
// graphics: rotating tile grids, generating frame-index ranges, snapping
// values onto discrete scales, and shuffling sequences reproducibly.
//
// 🚀 What is gridkit?
//
//	A pure-computation library of flat leaf packages — no services, no
//	globals, no hidden state:
//		• grid/    — transpose & quarter/half-turn rotation of rectangular grids
//		• ranges/  — inclusive integer ranges and stepped numeric sequences
//		• nearest/ — snap a value onto the closest entry of a sorted scale
//		• randseq/ — Fisher–Yates shuffle & random selection with an injected source
//
// ✨ Why choose gridkit?
//
//   - Deterministic by construction – randomness is an injected capability,
//     never a process global, so every run is seedable and testable
//   - Sentinel-based contracts – degenerate input yields NaN, comma-ok false
//     or empty sequences; nothing panics on representable input
//   - Pure Go – no cgo, minimal deps
//
// Quick ASCII example — a quarter turn clockwise:
//
//	1 2 3        4 1
//	4 5 6   →    5 2
//	             6 3
//
// Dive into each package's doc.go and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
