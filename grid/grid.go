package grid

import (
	"fmt"
	"strings"
)

// Graph owns the node arena for a fixed grid shape, addressed by
// (row, column) index, plus the dirty list used to reset exactly the
// cells a search touched. A Graph may be reused across many sequential
// searches; it is not safe for concurrent searches against the same
// instance.
type Graph struct {
	rows     [][]Node // rows[x][y]; row lengths may differ (ragged input)
	dirty    []*Node  // ordered, possibly-duplicate record of touched nodes
	diagonal bool
}

// New builds a Graph from a weight matrix: one node per cell, with
// coordinates equal to the row/column index and weight equal to the
// matrix value (0 = impassable). Ragged rows are accepted; neighbor
// lookups are simply bounded per-row.
//
// Returns ErrEmptyGrid if the matrix has no rows or no columns,
// ErrNegativeWeight (with cell context) on any negative value.
// Complexity: O(W×H) time and memory.
func New(weights [][]float64, opts ...Option) (*Graph, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := make([][]Node, len(weights))
	for x, row := range weights {
		rows[x] = make([]Node, len(row))
		for y, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) weight=%v", ErrNegativeWeight, x, y, w)
			}
			rows[x][y] = Node{X: x, Y: y, Weight: w}
		}
	}

	g := &Graph{
		rows:     rows,
		dirty:    make([]*Node, 0),
		diagonal: cfg.diagonal,
	}
	g.init()

	return g, nil
}

// init performs a full reset: every node back to baseline and the dirty
// list emptied. Used at construction; incremental reuse goes through
// CleanDirty instead.
func (g *Graph) init() {
	for x := range g.rows {
		for y := range g.rows[x] {
			g.rows[x][y].reset()
		}
	}
	g.dirty = g.dirty[:0]
}

// Rows returns the number of rows in the grid.
func (g *Graph) Rows() int { return len(g.rows) }

// Cols returns the number of columns in row x, or 0 if x is out of range.
func (g *Graph) Cols(x int) int {
	if x < 0 || x >= len(g.rows) {
		return 0
	}

	return len(g.rows[x])
}

// Diagonal reports whether 8-directional movement is enabled.
func (g *Graph) Diagonal() bool { return g.diagonal }

// InBounds reports whether (x,y) addresses a cell of the grid.
// Complexity: O(1).
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < len(g.rows) && y >= 0 && y < len(g.rows[x])
}

// NodeAt returns the node stored at (x,y) and whether it exists.
func (g *Graph) NodeAt(x, y int) (*Node, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}

	return &g.rows[x][y], true
}

// Neighbors returns the in-bounds adjacent nodes of n in fixed order:
// Left, Right, Down (y−1), Up (y+1); with diagonal movement enabled,
// additionally Down-Left, Down-Right, Up-Left, Up-Right, in that order.
// The order is significant: it determines insertion order into the
// search frontier and thus which of several equal-score nodes is
// expanded first. Out-of-bounds positions are excluded, never an error.
// Complexity: O(1).
func (g *Graph) Neighbors(n *Node) []*Node {
	x, y := n.X, n.Y
	out := make([]*Node, 0, 8)

	// Orthogonal: Left, Right, Down, Up.
	if nb, ok := g.NodeAt(x-1, y); ok {
		out = append(out, nb)
	}
	if nb, ok := g.NodeAt(x+1, y); ok {
		out = append(out, nb)
	}
	if nb, ok := g.NodeAt(x, y-1); ok {
		out = append(out, nb)
	}
	if nb, ok := g.NodeAt(x, y+1); ok {
		out = append(out, nb)
	}

	if !g.diagonal {
		return out
	}

	// Diagonal: Down-Left, Down-Right, Up-Left, Up-Right.
	if nb, ok := g.NodeAt(x-1, y-1); ok {
		out = append(out, nb)
	}
	if nb, ok := g.NodeAt(x+1, y-1); ok {
		out = append(out, nb)
	}
	if nb, ok := g.NodeAt(x-1, y+1); ok {
		out = append(out, nb)
	}
	if nb, ok := g.NodeAt(x+1, y+1); ok {
		out = append(out, nb)
	}

	return out
}

// MarkDirty appends n to the dirty list. Duplicates are permitted;
// reset is idempotent.
func (g *Graph) MarkDirty(n *Node) {
	g.dirty = append(g.dirty, n)
}

// CleanDirty resets every node currently in the dirty list to baseline
// (F=G=H=0, Visited=Closed=false, no parent), then empties the list.
// Must run before each new search over a reused graph; the search
// driver does so itself. Complexity: O(len(dirty)).
func (g *Graph) CleanDirty() {
	for _, n := range g.dirty {
		n.reset()
	}
	g.dirty = g.dirty[:0]
}

// DirtyCount returns the current length of the dirty list, duplicates
// included. Intended for diagnostics and tests.
func (g *Graph) DirtyCount() int { return len(g.dirty) }

// SetParent records p as the parent of n on the best known path so far.
// The relation is stored as arena coordinates; pass nil to clear it.
// The parent links form a tree rooted at the search's start node.
func (g *Graph) SetParent(n, p *Node) {
	if p == nil {
		n.parentX, n.parentY = noParent, noParent
		return
	}
	n.parentX, n.parentY = p.X, p.Y
}

// ParentOf resolves n's parent back-reference into the arena, or nil
// if n has no parent.
func (g *Graph) ParentOf(n *Node) *Node {
	if n.parentX == noParent {
		return nil
	}

	return &g.rows[n.parentX][n.parentY]
}

// String renders the grid's weights row by row, impassable cells as '#'.
// Intended for debugging.
func (g *Graph) String() string {
	var sb strings.Builder
	for x := range g.rows {
		for y := range g.rows[x] {
			if y > 0 {
				sb.WriteByte(' ')
			}
			if g.rows[x][y].Wall() {
				sb.WriteByte('#')
			} else {
				fmt.Fprintf(&sb, "%g", g.rows[x][y].Weight)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
