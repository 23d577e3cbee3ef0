// Package grid defines the core types and sentinel errors for the
// fixed-width 2D container.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrNoRows indicates constructor input with no rows or an empty first row.
	ErrNoRows = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths; the first row fixes the width.
	ErrRaggedRows = errors.New("grid: all rows must match the width of the first")
	// ErrDimensions indicates a non-positive width or negative height.
	ErrDimensions = errors.New("grid: width must be positive and height non-negative")
)

// Coord addresses a cell by column (X) and row (Y).
// (0,0) is the top-left cell; Y grows downward.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbor offsets in enumeration order. Orthogonal: right, down, left, up.
// Diagonal extends the orthogonal order with up-left, up-right, down-right,
// down-left.
var (
	orthoOffsets = []Coord{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagOffsets  = []Coord{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
)

// Grid is a dense 2D container of T with row-major layout.
// The invariant len(cells) % width == 0 holds for every constructed Grid;
// height is derived from it and never stored. Width never changes after
// construction. The zero Grid is not usable; build one with a constructor.
type Grid[T any] struct {
	cells []T
	width int
}
