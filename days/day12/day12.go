// Package day12 routes across the heightmap. Elevations run a-z, S marks
// the start at elevation a and E the summit at elevation z; each move may
// climb at most one level. Part 1 walks start to summit, part 2 finds the
// shortest route from any elevation-a cell by searching backwards from
// the summit once.
package day12

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/advent2022/dijkstra"
	"github.com/katalvlaran/advent2022/grid"
	"github.com/katalvlaran/advent2022/scan"
)

type heightmap struct {
	g          *grid.Grid[int]
	start, end grid.Coord
}

func parse(r io.Reader) (*heightmap, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return nil, err
	}

	var hm heightmap
	foundS, foundE := false, false
	for y, line := range lines {
		for x, c := range line {
			switch {
			case c == 'S':
				hm.start = grid.Coord{X: x, Y: y}
				foundS = true
			case c == 'E':
				hm.end = grid.Coord{X: x, Y: y}
				foundE = true
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("day12: line %d: invalid elevation %q", y+1, c)
			}
		}
	}
	if !foundS || !foundE {
		return nil, errors.New("day12: heightmap is missing its S or E marker")
	}

	hm.g, err = grid.ParseLines(lines, func(c rune) int {
		switch c {
		case 'S':
			return 0
		case 'E':
			return 25
		}

		return int(c - 'a')
	})
	if err != nil {
		return nil, fmt.Errorf("day12: %w", err)
	}

	return &hm, nil
}

// Part1 returns the fewest steps from S to E.
func Part1(r io.Reader) (int, error) {
	hm, err := parse(r)
	if err != nil {
		return 0, err
	}

	cost, ok, err := dijkstra.Distance(hm.g, hm.start, hm.end, func(from, to int) bool {
		return to <= from+1
	})
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.New("day12: no route from start to summit")
	}

	return cost, nil
}

// Part2 returns the fewest steps from any elevation-a cell to E. One
// backwards search from the summit with the climb rule inverted prices
// every cell at once.
func Part2(r io.Reader) (int, error) {
	hm, err := parse(r)
	if err != nil {
		return 0, err
	}

	field, err := dijkstra.DistanceField(hm.g, hm.end, func(from, to int) bool {
		return from <= to+1
	})
	if err != nil {
		return 0, err
	}

	best := dijkstra.Unreachable
	for c, h := range hm.g.All() {
		if h != 0 {
			continue
		}
		if d := field.At(c.X, c.Y); d < best {
			best = d
		}
	}
	if best == dijkstra.Unreachable {
		return 0, errors.New("day12: no low cell reaches the summit")
	}

	return best, nil
}
