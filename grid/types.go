// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input weight matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: weight matrix must have at least one row and one column")
	// ErrNegativeWeight indicates a cell carries a negative traversal weight.
	ErrNegativeWeight = errors.New("grid: cell weight must be non-negative")
)

// noParent marks the absence of a parent back-reference.
const noParent = -1

// SqrtTwo is the cost multiplier applied to diagonal steps.
const SqrtTwo = math.Sqrt2

// Node represents one grid cell.
//
// X and Y form the immutable identity (X = row index, Y = column index).
// Weight is the static traversal-cost multiplier for moving onto this
// cell; zero marks the cell impassable.
//
// G, H, F, Visited, Closed and the parent back-reference are transient
// per-search annotations owned by the enclosing Graph. They are reset to
// baseline (all zero, no parent) by Graph.CleanDirty between searches.
// Whenever a node sits in the open set, F equals G + H; once Closed is
// true the node is never examined or mutated again within that search.
type Node struct {
	X, Y   int     // Coordinates within the grid
	Weight float64 // Traversal weight; 0 = impassable

	G float64 // Best known cost from the start node
	H float64 // Heuristic estimate to the goal, computed once and cached
	F float64 // G + H

	Visited bool // Discovered during the current search
	Closed  bool // Finalized; excluded from further expansion

	// Parent back-reference, stored as arena coordinates rather than a
	// pointer so the arena can be reset and reused without lifetime
	// hazards. (noParent, noParent) means no parent.
	parentX, parentY int
}

// Wall reports whether the node is impassable (Weight == 0).
func (n *Node) Wall() bool { return n.Weight == 0 }

// Cost returns the cost of stepping onto n from the given neighbor:
// n.Weight, scaled by √2 when the step is diagonal (both coordinates
// differ). Cost is a function of the destination cell only.
func (n *Node) Cost(from *Node) float64 {
	if from != nil && from.X != n.X && from.Y != n.Y {
		return n.Weight * SqrtTwo
	}

	return n.Weight
}

// String renders the node's coordinates as "(x,y)".
func (n *Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// reset restores the transient search annotation to baseline.
func (n *Node) reset() {
	n.G = 0
	n.H = 0
	n.F = 0
	n.Visited = false
	n.Closed = false
	n.parentX = noParent
	n.parentY = noParent
}

// Option represents a functional option for configuring a Graph.
type Option func(*options)

// options collects construction-time settings.
type options struct {
	diagonal bool
}

// WithDiagonal enables 8-directional movement: neighbor enumeration
// additionally yields the four diagonal cells.
func WithDiagonal() Option {
	return func(o *options) {
		o.diagonal = true
	}
}
