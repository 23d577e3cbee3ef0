// Package dijkstra implements uniform-cost shortest-path search over a
// grid.Grid, where traversability between adjacent cells is decided by a
// caller-supplied predicate on the two cell values.
//
// Overview:
//
//   - Every permitted step between adjacent cells costs exactly 1; the graph
//     is implicit in the grid, so no adjacency structure is ever built.
//   - Distance answers the single-target question "how far from start to
//     goal" and stops as soon as the goal leaves the priority queue.
//   - DistanceField runs the same relaxation to exhaustion and returns the
//     full per-cell distance map from one source, which callers combine with
//     a filter+min to answer "closest of several candidate cells" queries
//     (typically by searching backwards from the goal with the predicate's
//     arguments swapped).
//
// When to use:
//
//   - Terrain where stepping is conditional on the cells involved: climbing
//     limits, walls, one-way drops.
//   - Any dense 2D map small enough to hold in memory; for the few-hundred
//     cells-per-axis grids this package targets, a search is effectively
//     instant and runs to completion (no cancellation semantics).
//
// Key features:
//
//   - StepFunc receives (from, to) cell values, so the same search serves a
//     forward climb ("to ≤ from+1") and its reversed variant with arguments
//     swapped.
//   - Lazy decrease-key: improved distances push duplicate heap entries and
//     stale ones are discarded on pop, the standard technique when the heap
//     has no addressable decrease-key.
//   - Deterministic pop order: ties on cost break by row-major cell index.
//   - WithDiagonals() switches the implicit adjacency from 4-way to 8-way.
//
// Performance and complexity:
//
//   - Time:  O(W×H × d × log(W×H)), d = 4 or 8.
//   - Space: O(W×H) for the distance array plus heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:     a nil *grid.Grid was passed.
//   - ErrNilStep:     a nil step predicate was passed.
//   - ErrCoordBounds: start, goal or source lies outside the grid
//     (wrapped with the offending coordinate).
//
// Unreachability is not an error: Distance reports it through its boolean
// result and DistanceField leaves the cell at Unreachable.
//
// API reference:
//
//	func Distance[T any](
//	    g *grid.Grid[T],
//	    start, goal grid.Coord,
//	    step StepFunc[T],
//	    opts ...Option,
//	) (cost int, found bool, err error)
//
//	func DistanceField[T any](
//	    g *grid.Grid[T],
//	    source grid.Coord,
//	    step StepFunc[T],
//	    opts ...Option,
//	) (*grid.Grid[int], error)
//
//	  - step(from, to) reports whether the edge from → to exists.
//	  - cost:  number of steps on a shortest path; 0 with found=true when
//	           start == goal.
//	  - found: false when the goal cannot be reached (cost is then 0).
//	  - the returned field holds Unreachable for cells no path reaches.
//
// Thread safety:
//
//   - Each call owns its queue and distance array, so concurrent searches
//     over grids that are not being mutated are safe; mutating a shared
//     grid during a search is not supported.
//
// See also:
//
//   - grid.Grid: construction, bounds contract, neighbor enumeration order.
package dijkstra
