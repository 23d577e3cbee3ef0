// Package day08 surveys a forest of digit heights. Part 1 counts trees
// visible from outside the grid, part 2 maximizes the scenic score, the
// product of viewing distances in the four cardinal directions.
package day08

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/advent2022/grid"
	"github.com/katalvlaran/advent2022/scan"
)

func parseForest(r io.Reader) (*grid.Grid[uint8], error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		for _, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("day08: line %d: invalid tree height %q", i+1, c)
			}
		}
	}

	g, err := grid.ParseLines(lines, func(c rune) uint8 { return uint8(c - '0') })
	if err != nil {
		return nil, fmt.Errorf("day08: %w", err)
	}

	return g, nil
}

// Part1 counts the trees visible from at least one edge. Four sweeps mark
// every tree taller than all before it into one shared bitset, so each
// tree is visited once per direction instead of rescanning its whole line.
func Part1(r io.Reader) (int, error) {
	g, err := parseForest(r)
	if err != nil {
		return 0, err
	}

	w, h := g.Width(), g.Height()
	visible := bitset.New(uint(g.Len()))
	for y := 0; y < h; y++ {
		best := -1
		for x := 0; x < w; x++ {
			if int(g.At(x, y)) > best {
				visible.Set(uint(g.Index(x, y)))
				best = int(g.At(x, y))
			}
		}
		best = -1
		for x := w - 1; x >= 0; x-- {
			if int(g.At(x, y)) > best {
				visible.Set(uint(g.Index(x, y)))
				best = int(g.At(x, y))
			}
		}
	}
	for x := 0; x < w; x++ {
		best := -1
		for y := 0; y < h; y++ {
			if int(g.At(x, y)) > best {
				visible.Set(uint(g.Index(x, y)))
				best = int(g.At(x, y))
			}
		}
		best = -1
		for y := h - 1; y >= 0; y-- {
			if int(g.At(x, y)) > best {
				visible.Set(uint(g.Index(x, y)))
				best = int(g.At(x, y))
			}
		}
	}

	return int(visible.Count()), nil
}

// Part2 returns the best scenic score. The viewing distance in a direction
// counts trees up to and including the first one at least as tall; edge
// trees score zero outward and therefore overall.
func Part2(r io.Reader) (int, error) {
	g, err := parseForest(r)
	if err != nil {
		return 0, err
	}

	directions := []grid.Coord{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	best := 0
	for c, height := range g.All() {
		score := 1
		for _, d := range directions {
			dist := 0
			for x, y := c.X+d.X, c.Y+d.Y; g.InBounds(x, y); x, y = x+d.X, y+d.Y {
				dist++
				if g.At(x, y) >= height {
					break
				}
			}
			score *= dist
		}
		if score > best {
			best = score
		}
	}

	return best, nil
}
