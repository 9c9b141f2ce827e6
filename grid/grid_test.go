package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty and negative-weight input.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		weights [][]float64
		err     error
	}{
		{"EmptyRows", [][]float64{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, grid.ErrEmptyGrid},
		{"NegativeWeight", [][]float64{{1, 2}, {3, -1}}, grid.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.weights)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.weights, err, tc.err)
			}
		})
	}
}

// TestNew_NodesMirrorMatrix checks coordinates and weights after construction.
func TestNew_NodesMirrorMatrix(t *testing.T) {
	weights := [][]float64{
		{1, 0, 3},
		{2, 5, 1},
	}
	g, err := grid.New(weights)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if g.Rows() != 2 {
		t.Errorf("Rows() = %d; want 2", g.Rows())
	}
	for x, row := range weights {
		if g.Cols(x) != len(row) {
			t.Errorf("Cols(%d) = %d; want %d", x, g.Cols(x), len(row))
		}
		for y, w := range row {
			n, ok := g.NodeAt(x, y)
			if !ok {
				t.Fatalf("NodeAt(%d,%d) missing", x, y)
			}
			if n.X != x || n.Y != y || n.Weight != w {
				t.Errorf("NodeAt(%d,%d) = %+v; want X=%d Y=%d Weight=%v", x, y, n, x, y, w)
			}
			if n.Wall() != (w == 0) {
				t.Errorf("NodeAt(%d,%d).Wall() = %t; want %t", x, y, n.Wall(), w == 0)
			}
		}
	}
}

// TestInBounds checks bounds on a ragged grid: lookups past a short row
// are excluded, never an error.
func TestInBounds_Ragged(t *testing.T) {
	g, err := grid.New([][]float64{
		{1, 1, 1},
		{1},
		{1, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := [][2]int{{0, 0}, {0, 2}, {1, 0}, {2, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 1}, {2, 2}, {0, 3}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbor Enumeration Tests
//----------------------------------------------------------------------------//

// coords flattens a neighbor list for comparison.
func coords(nodes []*grid.Node) [][2]int {
	out := make([][2]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, [2]int{n.X, n.Y})
	}

	return out
}

func equalCoords(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// TestNeighbors_Order4 verifies the fixed Left, Right, Down, Up order.
func TestNeighbors_Order4(t *testing.T) {
	m := [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	g, err := grid.New(m)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	center, _ := g.NodeAt(1, 1)
	got := coords(g.Neighbors(center))
	want := [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	if !equalCoords(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}

	// Corner: out-of-bounds positions drop out silently.
	corner, _ := g.NodeAt(0, 0)
	got = coords(g.Neighbors(corner))
	want = [][2]int{{1, 0}, {0, 1}}
	if !equalCoords(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestNeighbors_Order8 verifies orthogonal-then-diagonal enumeration
// under WithDiagonal.
func TestNeighbors_Order8(t *testing.T) {
	m := [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	g, err := grid.New(m, grid.WithDiagonal())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !g.Diagonal() {
		t.Fatal("Diagonal() = false; want true")
	}

	center, _ := g.NodeAt(1, 1)
	got := coords(g.Neighbors(center))
	want := [][2]int{
		{0, 1}, {2, 1}, {1, 0}, {1, 2}, // Left, Right, Down, Up
		{0, 0}, {2, 0}, {0, 2}, {2, 2}, // DL, DR, UL, UR
	}
	if !equalCoords(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// Step-Cost Tests
//----------------------------------------------------------------------------//

// TestNode_Cost checks that cost depends on the destination weight only,
// scaled by √2 on diagonal steps.
func TestNode_Cost(t *testing.T) {
	g, err := grid.New([][]float64{{1, 7}, {3, 2}}, grid.WithDiagonal())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	origin, _ := g.NodeAt(0, 0)
	right, _ := g.NodeAt(1, 0)
	diag, _ := g.NodeAt(1, 1)

	if got := right.Cost(origin); got != 3 {
		t.Errorf("orthogonal cost = %v; want 3", got)
	}
	if got, want := diag.Cost(origin), 2*math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Errorf("diagonal cost = %v; want %v", got, want)
	}
	// Reverse orthogonal step lands on the origin's own weight.
	if got := origin.Cost(right); got != 1 {
		t.Errorf("reverse orthogonal cost = %v; want 1", got)
	}
}

//----------------------------------------------------------------------------//
// Dirty-List Tests
//----------------------------------------------------------------------------//

// TestCleanDirty_ResetsTouchedNodes verifies that every dirty node goes
// back to baseline and the list empties; duplicates are tolerated.
func TestCleanDirty_ResetsTouchedNodes(t *testing.T) {
	g, err := grid.New([][]float64{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a, _ := g.NodeAt(0, 0)
	b, _ := g.NodeAt(1, 1)

	a.G, a.H, a.F = 1, 2, 3
	a.Visited, a.Closed = true, true
	g.SetParent(a, b)
	b.G = 9
	b.Visited = true

	g.MarkDirty(a)
	g.MarkDirty(b)
	g.MarkDirty(a) // duplicate on purpose
	if g.DirtyCount() != 3 {
		t.Errorf("DirtyCount() = %d; want 3", g.DirtyCount())
	}

	g.CleanDirty()

	if g.DirtyCount() != 0 {
		t.Errorf("DirtyCount() after clean = %d; want 0", g.DirtyCount())
	}
	for _, n := range []*grid.Node{a, b} {
		if n.G != 0 || n.H != 0 || n.F != 0 || n.Visited || n.Closed {
			t.Errorf("node %v not at baseline: %+v", n, n)
		}
		if g.ParentOf(n) != nil {
			t.Errorf("node %v still has a parent after clean", n)
		}
	}
}

// TestCleanDirty_LeavesUntouchedNodesAlone: only listed nodes reset.
func TestCleanDirty_LeavesUntouchedNodesAlone(t *testing.T) {
	g, err := grid.New([][]float64{{1, 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	a, _ := g.NodeAt(0, 0)
	b, _ := g.NodeAt(0, 1)

	a.G = 5
	b.G = 7
	g.MarkDirty(a)
	g.CleanDirty()

	if a.G != 0 {
		t.Errorf("dirty node G = %v; want 0", a.G)
	}
	if b.G != 7 {
		t.Errorf("untouched node G = %v; want 7 (must not reset)", b.G)
	}
}

//----------------------------------------------------------------------------//
// Parent-Link Tests
//----------------------------------------------------------------------------//

// TestParentLinks round-trips SetParent/ParentOf through the arena.
func TestParentLinks(t *testing.T) {
	g, err := grid.New([][]float64{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	child, _ := g.NodeAt(1, 1)
	parent, _ := g.NodeAt(0, 1)

	if g.ParentOf(child) != nil {
		t.Fatal("fresh node must have no parent")
	}

	g.SetParent(child, parent)
	if got := g.ParentOf(child); got != parent {
		t.Errorf("ParentOf = %v; want %v", got, parent)
	}

	g.SetParent(child, nil)
	if g.ParentOf(child) != nil {
		t.Error("ParentOf after clear must be nil")
	}
}

//----------------------------------------------------------------------------//
// Rendering Tests
//----------------------------------------------------------------------------//

// TestGraph_String renders walls as '#'.
func TestGraph_String(t *testing.T) {
	g, err := grid.New([][]float64{{1, 0}, {2.5, 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := "1 #\n2.5 1\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
