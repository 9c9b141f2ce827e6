// Package gridpath is a small, focused toolkit for minimum-cost
// pathfinding on weighted 2D grids.
//
// 🚀 What is gridpath?
//
//	A pure-Go library built around three tightly-coupled pieces:
//		• grid    — weighted grid graph: node arena, neighbor enumeration,
//		            and dirty-list bookkeeping for cheap reuse across searches
//		• binheap — generic binary min-heap with live re-prioritization
//		• astar   — A* search driver with pluggable heuristics
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed neighbor order, reproducible results
//   - Reuse-friendly – dirty tracking resets only the cells a search touched
//   - Extensible – heuristics are plain functions; bring your own
//
// Supporting packages:
//
//	gridgen/        — deterministic weight-matrix generators (open fields,
//	                  seeded random maps, walls, opensimplex terrain)
//	cmd/pathserver/ — demo HTTP service exposing the search as JSON
//
// Quick ASCII example:
//
//	    S 1 1        S = start, E = end, 0 = wall
//	    1 0 1
//	    1 1 E
//
//	astar.Search walks S → E around the wall at minimum total weight.
//
// A Graph may be reused across many sequential searches; it is not safe
// for concurrent searches against the same instance.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
