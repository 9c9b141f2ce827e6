// Package astar implements the A* search driver over gridpath graphs.
//
// A* combines cost-so-far (g) and a heuristic estimate-to-goal (h) to
// prioritize which node to expand next, extracting the lowest f = g + h
// from a binary min-heap until the goal is popped or the frontier
// empties.
//
// Complexity:
//
//   - Time:  O(N log N) for N cells touched (each open-set operation is
//     O(log N); each cell closes at most once).
//   - Space: O(N) for the frontier plus the graph's dirty list.
package astar

import (
	"github.com/katalvlaran/gridpath/binheap"
	"github.com/katalvlaran/gridpath/grid"
)

// Search computes a minimum-cost path on g from start to end and
// returns it as the ordered sequence of nodes from just-after-start
// through end, inclusive. When end is unreachable the result is an
// empty path, or the path to the closest reachable node under
// WithClosest. When start == end the goal pops on the first extraction
// and the path is empty: zero steps required.
//
// Search clears g's dirty state before running, so a Graph may be
// reused across sequential calls; it must not serve two searches
// concurrently.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be non-nil (ErrNilNode).
//
// Options customization:
//
//   - WithHeuristic(h): estimate-to-goal function (default Manhattan).
//   - WithClosest():    best-effort path when the goal is unreachable.
func Search(g *grid.Graph, start, end *grid.Node, opts ...Option) ([]*grid.Node, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate endpoints are non-nil.
	if start == nil || end == nil {
		return nil, ErrNilNode
	}

	// 4) Initialize runner: frontier keyed live on each node's current f.
	r := &runner{
		g:       g,
		end:     end,
		options: cfg,
		open: binheap.New[*grid.Node](func(n *grid.Node) float64 {
			return n.F
		}),
	}

	return r.run(start)
}

// Cost returns the total weighted cost of a path produced by Search:
// the accumulated g of its final node, or 0 for an empty path.
func Cost(path []*grid.Node) float64 {
	if len(path) == 0 {
		return 0
	}

	return path[len(path)-1].G
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *grid.Graph               // node arena + dirty bookkeeping
	end     *grid.Node                // goal node
	options Options                   // heuristic + best-effort flag
	open    *binheap.Heap[*grid.Node] // frontier, min-f first
	closest *grid.Node                // best fallback candidate (Closest mode)
}

// run executes the A* loop from start.
func (r *runner) run(start *grid.Node) ([]*grid.Node, error) {
	// 1) Clear dirty state so nothing leaks from a prior search on a
	//    reused graph.
	r.g.CleanDirty()

	// 2) Seed the frontier with start: g is baseline 0, h computed once.
	start.H = r.options.Heuristic(start, r.end)
	start.F = start.G + start.H
	r.g.MarkDirty(start)
	r.open.Push(start)

	// 3) The fallback candidate begins at start; it only matters when
	//    Closest mode is on.
	r.closest = start

	// 4) Main loop: expand the lowest-f node until the goal pops or the
	//    frontier drains.
	var current *grid.Node
	var err error
	for r.open.Size() > 0 {
		// 4a) Pop the minimum-f node. The Size guard above makes an
		//     empty-heap error unreachable; surface it if it ever fires.
		if current, err = r.open.Pop(); err != nil {
			return nil, err
		}

		// 4b) Goal reached: walk parent links back to start and reverse.
		if current == r.end {
			return r.pathTo(current), nil
		}

		// 4c) Finalize: current never re-enters consideration.
		current.Closed = true

		// 4d) Relax every neighbor in graph order.
		r.relax(current)
	}

	// 5) Frontier drained without reaching the goal.
	if r.options.Closest {
		return r.pathTo(r.closest), nil
	}

	return []*grid.Node{}, nil
}

// relax examines each neighbor of current and records any improvement
// to its best known cost. g only ever decreases within one search, so a
// node already in the frontier needs at most a sink-only Rescore.
func (r *runner) relax(current *grid.Node) {
	for _, neighbor := range r.g.Neighbors(current) {
		// Finalized or impassable cells are skipped outright.
		if neighbor.Closed || neighbor.Wall() {
			continue
		}

		// Candidate cost of reaching neighbor through current. The step
		// cost is the destination cell's weight, ×√2 on diagonal steps.
		gScore := current.G + neighbor.Cost(current)
		beenVisited := neighbor.Visited
		if beenVisited && gScore >= neighbor.G {
			continue
		}

		// First discovery, or a strictly cheaper route: re-annotate.
		neighbor.Visited = true
		r.g.SetParent(neighbor, current)
		if neighbor.H == 0 {
			neighbor.H = r.options.Heuristic(neighbor, r.end)
		}
		neighbor.G = gScore
		neighbor.F = neighbor.G + neighbor.H
		r.g.MarkDirty(neighbor)

		// Track the fallback candidate: strictly smaller h wins; equal h
		// falls back to strictly smaller g.
		if r.options.Closest {
			if neighbor.H < r.closest.H ||
				(neighbor.H == r.closest.H && neighbor.G < r.closest.G) {
				r.closest = neighbor
			}
		}

		if !beenVisited {
			r.open.Push(neighbor)
		} else {
			// Already in the frontier with a now-lower f: re-sink.
			r.open.Rescore(neighbor)
		}
	}
}

// pathTo reconstructs the path ending at n by following parent links
// back toward the start, then reversing into traversal order. The start
// node itself (the only node with no parent) is excluded.
func (r *runner) pathTo(n *grid.Node) []*grid.Node {
	path := make([]*grid.Node, 0)
	for cur := n; r.g.ParentOf(cur) != nil; cur = r.g.ParentOf(cur) {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
