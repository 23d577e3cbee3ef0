package grid

import "iter"

// Neighbors returns a lazy sequence of the in-bounds cells adjacent to
// (x,y): up to 4 with diagonal=false, up to 8 with diagonal=true, always in
// the fixed order right, down, left, up, then up-left, up-right, down-right,
// down-left. Edge and corner cells simply yield fewer coordinates; there is
// no wraparound.
//
// The sequence is bound to the grid's dimensions, not its contents, and is
// restartable: every range over it re-enumerates from the first offset, so
// one Neighbors value can serve repeated queries at the same origin. Panics
// when (x,y) itself is out of range.
// Complexity: O(d) per traversal, d = 4 or 8; no allocations.
func (g *Grid[T]) Neighbors(x, y int, diagonal bool) iter.Seq[Coord] {
	g.checkBounds(x, y)
	offsets := orthoOffsets
	if diagonal {
		offsets = diagOffsets
	}
	w, h := g.width, g.Height()

	return func(yield func(Coord) bool) {
		for _, d := range offsets {
			nx, ny := x+d.X, y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if !yield(Coord{X: nx, Y: ny}) {
				return
			}
		}
	}
}

// All returns a lazy row-major traversal of every cell with its coordinate:
// (0,0), (1,0), … , (W-1,0), (0,1), … Restartable like Neighbors.
// Complexity: O(W×H) per traversal.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.CoordAt(i), v) {
				return
			}
		}
	}
}
