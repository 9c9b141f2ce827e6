// Package grid models a weighted 2D grid as a graph suitable for
// informed search.
//
// What:
//
//   - Graph owns a fixed arena of Nodes built from a [][]float64 weight
//     matrix (0 = impassable, otherwise a positive traversal-cost
//     multiplier for moving onto the cell).
//   - Neighbors enumerates in-bounds adjacent cells in a fixed order:
//     Left, Right, Down, Up, then the four diagonals when 8-directional
//     movement is enabled via WithDiagonal.
//   - MarkDirty/CleanDirty track exactly the nodes a search touched, so
//     resetting a large, mostly-static grid between searches costs
//     O(touched) rather than O(W×H).
//
// Why:
//
//   - Agent navigation: many sequential path queries against one map.
//   - Simulation/game maps: cheap per-tick re-planning on static terrain.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - Neighbors:  O(1) per call (at most 8 cells).
//   - CleanDirty: O(number of touched nodes).
//
// Errors:
//
//   - ErrEmptyGrid:      input matrix has no rows or no columns.
//   - ErrNegativeWeight: a cell carries a negative weight.
//
// Concurrency:
//
//   - A Graph's node arena is mutated in place during a search. Run
//     concurrent searches against separate Graph instances, or serialize
//     externally.
package grid
