package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/advent2022/dijkstra"
	"github.com/katalvlaran/advent2022/grid"
)

// BenchmarkDistance measures a corner-to-corner search on an open 500×500
// grid with 4-way adjacency.
// Complexity: O(W×H×d×log(W×H))
func BenchmarkDistance(b *testing.B) {
	const n = 500
	g, err := grid.New[int](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: n - 1, Y: n - 1}
	step := func(_, _ int) bool { return true }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Distance(g, start, goal, step)
	}
}

// BenchmarkDistanceField measures the exhaustive variant from one corner of
// the same grid.
func BenchmarkDistanceField(b *testing.B) {
	const n = 500
	g, err := grid.New[int](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	source := grid.Coord{X: 0, Y: 0}
	step := func(_, _ int) bool { return true }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.DistanceField(g, source, step)
	}
}
