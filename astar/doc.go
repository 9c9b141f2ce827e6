// Package astar provides the informed-search driver of gridpath:
// minimum-cost paths between two cells of a weighted grid.
//
// Overview:
//
//   - Search seeds a binary min-heap with the start node, repeatedly
//     extracts the lowest f = g + h, expands its neighbors via the
//     graph, relaxes costs, and re-prioritizes the frontier until the
//     goal is popped or the frontier empties.
//   - The path is reconstructed by walking parent back-references from
//     the goal to the start and reversing; the returned sequence runs
//     from just-after-start through the goal, inclusive.
//
// Per-node state machine within one search:
//
//	unvisited → visited(open) → closed
//
// No transition leaves closed; open nodes may have g/f relaxed downward
// repeatedly. Search clears the graph's dirty state before running, so
// one Graph serves many sequential searches.
//
// Heuristics:
//
//   - Manhattan: |dx| + |dy| — admissible for 4-directional movement.
//   - Octile:    D·(dx+dy) + (D2−2D)·min(dx,dy), D=1, D2=√2 —
//     admissible for 8-directional movement.
//
// Using a heuristic mismatched to the movement model (e.g. Octile on a
// 4-directional grid) breaks the optimality guarantee; this is a caller
// contract, not enforced internally.
//
// Execution model:
//
//   - Single-threaded and synchronous; Search runs to completion with
//     no internal suspension, cancellation, or timeout. A caller that
//     needs bounded execution time must enforce it externally and
//     discard the result.
//
// Errors (sentinel):
//
//   - ErrNilGraph:     nil graph passed to Search.
//   - ErrNilNode:      nil start or end node.
//   - ErrNilHeuristic: WithHeuristic(nil) (panics at option time).
//
// Unreachable goals are a normal outcome, not an error: the result is
// an empty path, or a best-effort path under WithClosest.
package astar
