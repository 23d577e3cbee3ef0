// Package dijkstra defines the core types, configuration options and
// sentinel errors for grid shortest-path search.
//
// The search explores cells in order of increasing step count from the
// source, using a min-heap priority queue with the lazy decrease-key
// strategy. Edges are implicit: two adjacent cells are connected exactly
// when the caller's StepFunc permits the move, and every move costs 1.
//
// Options:
//
//   - WithDiagonals: extend adjacency from the 4 orthogonal neighbors to
//     all 8, in the grid package's enumeration order.
//
// Errors (sentinel):
//
//   - ErrNilGrid     if the provided grid pointer is nil.
//   - ErrNilStep     if the provided step predicate is nil.
//   - ErrCoordBounds if start, goal or source lies outside the grid.
//
// Example usage:
//
//	cost, found, err := dijkstra.Distance(g, start, goal,
//	    func(from, to int) bool { return to <= from+1 },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !found {
//	    fmt.Println("goal unreachable")
//	}
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Distance and DistanceField.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilStep indicates that a nil step predicate was passed.
	ErrNilStep = errors.New("dijkstra: step predicate is nil")

	// ErrCoordBounds indicates that start, goal or source lies outside the
	// grid. The returned error wraps this sentinel with the offending
	// coordinate and the grid dimensions.
	ErrCoordBounds = errors.New("dijkstra: coordinate outside grid")
)

// Unreachable is the sentinel distance for cells no path reaches. It is
// larger than any real step count on a finite grid and must never be
// treated as a finite distance; the relaxation never adds to it, so it
// cannot overflow into a plausible value.
const Unreachable = math.MaxInt

// StepFunc reports whether a move from a cell holding `from` onto an
// adjacent cell holding `to` is permitted. It must be pure: the search may
// evaluate it several times for the same pair.
type StepFunc[T any] func(from, to T) bool

// Options configures a search.
//
// Diagonal – adjacency: false = 4 orthogonal neighbors (default),
// true = all 8 neighbors.
type Options struct {
	Diagonal bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithDiagonals switches the implicit adjacency to 8-way, adding the four
// diagonal neighbors in the grid package's enumeration order.
func WithDiagonals() Option {
	return func(o *Options) {
		o.Diagonal = true
	}
}

// DefaultOptions returns the Options every search starts from:
// 4-way orthogonal adjacency.
func DefaultOptions() Options {
	return Options{Diagonal: false}
}
