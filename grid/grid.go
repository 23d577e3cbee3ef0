package grid

import (
	"fmt"
	"unicode/utf8"
)

// FromRows constructs a Grid from a non-empty sequence of equal-length rows.
// The first row fixes the width permanently. Input is copied, so later
// mutation of rows does not affect the Grid.
// Returns ErrNoRows if rows is empty or the first row has no cells,
// ErrRaggedRows (wrapped with the offending row index) if any later row
// differs in length.
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoRows
	}
	w := len(rows[0])
	cells := make([]T, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{cells: cells, width: w}, nil
}

// ParseLines constructs a Grid from text lines, one cell per rune, converted
// by conv. The first line fixes the width in runes. Same structural errors
// as FromRows.
// Complexity: O(W×H).
func ParseLines[T any](lines []string, conv func(r rune) T) (*Grid[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrNoRows
	}
	w := utf8.RuneCountInString(lines[0])
	cells := make([]T, 0, w*len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedRows, y, n, w)
		}
		for _, r := range line {
			cells = append(cells, conv(r))
		}
	}

	return &Grid[T]{cells: cells, width: w}, nil
}

// New allocates a width×height Grid holding zero values of T.
// Returns ErrDimensions (wrapped with the requested size) if width ≤ 0 or
// height < 0. A zero height is legal: the Grid starts empty and rows can be
// appended later.
// Complexity: O(W×H).
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height < 0 {
		return nil, fmt.Errorf("%w: requested %dx%d", ErrDimensions, width, height)
	}

	return &Grid[T]{cells: make([]T, width*height), width: width}, nil
}

// NewFilled allocates a width×height Grid with every cell set to fill.
// Same dimension contract as New.
// Complexity: O(W×H).
func NewFilled[T any](width, height int, fill T) (*Grid[T], error) {
	g, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = fill
	}

	return g, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows, derived from the cell count.
// Complexity: O(1).
func (g *Grid[T]) Height() int { return len(g.cells) / g.width }

// Len returns the total number of cells (Width × Height).
// Complexity: O(1).
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.Height()
}

// checkBounds panics with a descriptive message when (x,y) is out of range.
// Out-of-range access is a caller bug, not a recoverable condition.
func (g *Grid[T]) checkBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinate (%d,%d) out of range %dx%d", x, y, g.width, g.Height()))
	}
}

// At returns the value stored at (x,y). Panics when out of range.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) T {
	g.checkBounds(x, y)

	return g.cells[y*g.width+x]
}

// Set stores v at (x,y). Panics when out of range.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) {
	g.checkBounds(x, y)
	g.cells[y*g.width+x] = v
}

// Index maps (x,y) to its row-major linear index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// CoordAt converts a row-major linear index back to a Coord.
// Complexity: O(1).
func (g *Grid[T]) CoordAt(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// AppendRow grows the grid by one row of `width` zero values, preserving the
// len(cells) % width == 0 invariant. The zero value of T plays the role of a
// default-constructed cell, so the operation is always legal.
// Complexity: O(W) amortized.
func (g *Grid[T]) AppendRow() {
	g.cells = append(g.cells, make([]T, g.width)...)
}

// Row returns the backing slice of row y. The view aliases grid storage:
// writes through it are visible to the Grid and vice versa. Panics when y is
// out of range.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) []T {
	g.checkBounds(0, y)

	return g.cells[y*g.width : (y+1)*g.width]
}
