// Package dijkstra implements Dijkstra's algorithm specialized to grids with
// unit step cost and predicate-gated edges.
//
// Every relaxation works on row-major cell indices, so the distance array is
// a flat []int rather than a map, and heap entries carry two ints. The heap
// uses lazy decrease-key: a better distance pushes a duplicate entry and the
// stale one is recognized on pop by comparing against the recorded best.
//
// Complexity:
//
//   - Time:  O(W×H × d × log(W×H)), d = 4 or 8 neighbors per cell.
//   - Space: O(W×H) for distances, O(W×H) worst case in the heap.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/advent2022/grid"
)

// noGoal disables the early exit in run; used by DistanceField.
const noGoal = -1

// Distance computes the length of a shortest start→goal path where a move
// between adjacent cells is permitted by step and costs 1.
//
// Returns:
//
//   - cost:  steps on a shortest path, 0 when start == goal.
//   - found: false when no path exists (cost is then 0); unreachability is
//     an expected outcome, not an error.
//   - err:   validation failure, nil otherwise.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. step must be non-nil (ErrNilStep).
//  3. start must lie inside g (ErrCoordBounds).
//  4. goal must lie inside g (ErrCoordBounds).
//
// The search stops the moment the goal leaves the priority queue: with
// non-negative (here: unit) costs its distance is final at that point.
// Complexity: O(W×H × d × log(W×H)) time, O(W×H) space.
func Distance[T any](g *grid.Grid[T], start, goal grid.Coord, step StepFunc[T], opts ...Option) (int, bool, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the input cascade: grid, predicate, both coordinates.
	if g == nil {
		return 0, false, ErrNilGrid
	}
	if step == nil {
		return 0, false, ErrNilStep
	}
	if !g.InBounds(start.X, start.Y) {
		return 0, false, fmt.Errorf("%w: start %v, grid %dx%d", ErrCoordBounds, start, g.Width(), g.Height())
	}
	if !g.InBounds(goal.X, goal.Y) {
		return 0, false, fmt.Errorf("%w: goal %v, grid %dx%d", ErrCoordBounds, goal, g.Width(), g.Height())
	}

	// 3) Seed the runner at start and process with early exit at goal.
	r := newRunner(g, step, cfg)
	r.seed(g.Index(start.X, start.Y))
	cost, found := r.run(g.Index(goal.X, goal.Y))

	return cost, found, nil
}

// DistanceField computes the distance from source to every cell reachable
// under step, using the same relaxation as Distance but never exiting early.
// The result has the input's dimensions; cells no path reaches hold
// Unreachable.
//
// Validation cascade matches Distance with source in place of start/goal.
// Complexity: O(W×H × d × log(W×H)) time, O(W×H) space.
func DistanceField[T any](g *grid.Grid[T], source grid.Coord, step StepFunc[T], opts ...Option) (*grid.Grid[int], error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the input cascade: grid, predicate, source coordinate.
	if g == nil {
		return nil, ErrNilGrid
	}
	if step == nil {
		return nil, ErrNilStep
	}
	if !g.InBounds(source.X, source.Y) {
		return nil, fmt.Errorf("%w: source %v, grid %dx%d", ErrCoordBounds, source, g.Width(), g.Height())
	}

	// 3) Seed at source and run the queue to exhaustion.
	r := newRunner(g, step, cfg)
	r.seed(g.Index(source.X, source.Y))
	r.run(noGoal)

	// 4) Wrap the flat distance array in a Grid of matching dimensions.
	out, err := grid.New[int](g.Width(), g.Height())
	if err != nil {
		return nil, err
	}
	var c grid.Coord
	for i, d := range r.dist {
		c = out.CoordAt(i)
		out.Set(c.X, c.Y, d)
	}

	return out, nil
}

// runner holds the mutable state for a single search execution.
type runner[T any] struct {
	g        *grid.Grid[T] // the input grid; read-only during the search
	step     StepFunc[T]   // edge predicate on (from, to) cell values
	diagonal bool          // 4-way (false) or 8-way (true) adjacency
	dist     []int         // row-major index → best known step count
	pq       cellPQ        // min-heap of (cost, index) with lazy decrease-key
}

// newRunner allocates the distance array (all Unreachable) and an empty heap.
func newRunner[T any](g *grid.Grid[T], step StepFunc[T], cfg Options) *runner[T] {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = Unreachable
	}

	return &runner[T]{
		g:        g,
		step:     step,
		diagonal: cfg.Diagonal,
		dist:     dist,
		pq:       make(cellPQ, 0, g.Len()),
	}
}

// seed zeroes the source distance and pushes the initial heap entry.
func (r *runner[T]) seed(src int) {
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{idx: src, cost: 0})
}

// run is the core loop. It repeatedly extracts the minimum (cost, index)
// entry and relaxes its neighbors, until the goal index is popped (early
// exit) or the queue empties. Pass noGoal to disable the early exit and
// exhaust the reachable region.
func (r *runner[T]) run(goal int) (int, bool) {
	var item *cellItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest entry; ties break deterministically by index.
		item = heap.Pop(&r.pq).(*cellItem)

		// 2) The goal's distance is final the moment it is popped.
		if item.idx == goal {
			return item.cost, true
		}

		// 3) Discard stale entries superseded by a cheaper push.
		if item.cost > r.dist[item.idx] {
			continue
		}

		// 4) Relax every neighbor the predicate permits.
		r.relax(item.idx, item.cost)
	}

	return 0, false
}

// relax attempts to improve the distance of each neighbor of cell idx that
// the step predicate admits. cost is the finalized distance of idx, so the
// candidate cost+1 is always finite and the Unreachable sentinel is never
// part of any sum.
func (r *runner[T]) relax(idx, cost int) {
	c := r.g.CoordAt(idx)
	from := r.g.At(c.X, c.Y)
	next := cost + 1
	var ni int
	for nb := range r.g.Neighbors(c.X, c.Y, r.diagonal) {
		// Skip edges the predicate forbids.
		if !r.step(from, r.g.At(nb.X, nb.Y)) {
			continue
		}

		// Push only strict improvements; equal-cost duplicates are waste.
		ni = r.g.Index(nb.X, nb.Y)
		if next >= r.dist[ni] {
			continue
		}
		r.dist[ni] = next
		heap.Push(&r.pq, &cellItem{idx: ni, cost: next})
	}
}

// cellItem pairs a cumulative step count with the row-major index of a cell.
// Created per relaxation candidate, consumed by the priority queue.
type cellItem struct {
	idx  int // row-major cell index
	cost int // steps from the source
}

// cellPQ is a min-heap of *cellItem ordered by cost ascending, ties broken
// by index ascending. The secondary key makes pop order, and therefore any
// trace of the search, deterministic.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by cost, then by row-major index.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
