// Package dijkstra_test provides runnable examples for grid shortest-path
// search, via "go test -run Example", showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/advent2022/dijkstra"
	"github.com/katalvlaran/advent2022/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Distance
////////////////////////////////////////////////////////////////////////////////

// ExampleDistance demonstrates a single-target search over a small terrain
// where each step may climb at most one unit.
// Scenario:
//
//   - 4×3 elevation grid; the direct route east is blocked by a cliff (9),
//     so the shortest path detours along the southern row.
//
// Complexity: O(W×H×d×log(W×H))
func ExampleDistance() {
	g, _ := grid.FromRows([][]int{
		{0, 9, 9, 2},
		{0, 9, 2, 1},
		{0, 1, 1, 0},
	})

	cost, found, _ := dijkstra.Distance(
		g,
		grid.Coord{X: 0, Y: 0},
		grid.Coord{X: 3, Y: 0},
		func(from, to int) bool { return to <= from+1 },
	)
	fmt.Println("found:", found, "cost:", cost)

	// Output:
	// found: true cost: 7
}

////////////////////////////////////////////////////////////////////////////////
// Example: DistanceField
////////////////////////////////////////////////////////////////////////////////

// ExampleDistanceField demonstrates the exhaustive variant: one search from
// a fixed goal with the predicate reversed answers "which of several start
// candidates is closest" without re-running the search per candidate.
func ExampleDistanceField() {
	g, _ := grid.FromRows([][]int{
		{0, 1, 2},
		{1, 2, 3},
		{0, 3, 4},
	})

	// Walk backwards from the summit: an edge u→v exists when the forward
	// climb v→u would be allowed.
	field, _ := dijkstra.DistanceField(
		g,
		grid.Coord{X: 2, Y: 2},
		func(from, to int) bool { return from <= to+1 },
	)

	for _, c := range []grid.Coord{{X: 0, Y: 0}, {X: 0, Y: 2}} {
		fmt.Printf("from %v: %d steps\n", c, field.At(c.X, c.Y))
	}

	// Output:
	// from (0,0): 4 steps
	// from (0,2): 4 steps
}
