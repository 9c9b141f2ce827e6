package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from one node to another.
// Search evaluates it once per node and caches the result for the rest
// of that search.
type Heuristic func(from, to *grid.Node) float64

// Octile D/D2 weights: one orthogonal step costs 1, one diagonal step √2.
const (
	octileD  = 1.0
	octileD2 = grid.SqrtTwo
)

// Manhattan returns |dx| + |dy|.
// Admissible only for 4-directional movement.
func Manhattan(from, to *grid.Node) float64 {
	dx := math.Abs(float64(to.X - from.X))
	dy := math.Abs(float64(to.Y - from.Y))

	return dx + dy
}

// Octile returns D·(dx+dy) + (D2 − 2D)·min(dx,dy) with D=1, D2=√2.
// Admissible for 8-directional movement.
func Octile(from, to *grid.Node) float64 {
	dx := math.Abs(float64(to.X - from.X))
	dy := math.Abs(float64(to.Y - from.Y))

	return octileD*(dx+dy) + (octileD2-2*octileD)*math.Min(dx, dy)
}
