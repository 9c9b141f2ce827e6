// Package gridgen provides deterministic weight-matrix generators used
// as input for gridpath graphs.
//
// What:
//
//   - Open:    uniform all-passable field.
//   - Walled:  open field split by a wall column with an optional gap.
//   - Random:  seeded random weights with a tunable wall ratio.
//   - Terrain: opensimplex-noise cost field; low ground becomes water
//     (impassable), higher ground costs more to cross.
//
// Why:
//
//   - Benchmarks and tests need reproducible maps of controlled shape.
//   - Demo surfaces (pathserver) need plausible terrain on demand.
//
// Determinism:
//
//   - Random and Terrain are pure functions of their seed and
//     parameters; stable cell order (row-major) guarantees identical
//     matrices across runs.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadWeight, ErrBadRatio, ErrBadScale —
//     invalid generator parameters; never panics.
package gridgen
