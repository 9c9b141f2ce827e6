package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGraph_Neighbors demonstrates the fixed enumeration order that
// drives deterministic searches: Left, Right, Down, Up.
func ExampleGraph_Neighbors() {
	g, _ := grid.New([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	center, _ := g.NodeAt(1, 1)
	for _, n := range g.Neighbors(center) {
		fmt.Print(n, " ")
	}
	fmt.Println()

	// Output:
	// (0,1) (2,1) (1,0) (1,2)
}

// ExampleGraph_String renders a small map with an impassable cell.
func ExampleGraph_String() {
	g, _ := grid.New([][]float64{
		{1, 1, 1},
		{1, 0, 1},
	})
	fmt.Print(g)

	// Output:
	// 1 1 1
	// 1 # 1
}
