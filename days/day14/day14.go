// Package day14 pours sand into a cave scanned as rock paths. Each unit
// falls from (500,0), preferring straight down, then down-left, then
// down-right. Part 1 counts units that come to rest before sand starts
// escaping past the lowest rock; part 2 adds an infinite floor two below
// the lowest rock and counts units until the source itself clogs.
package day14

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/grid"
	"github.com/katalvlaran/advent2022/scan"
)

var source = grid.Coord{X: 500, Y: 0}

func parsePath(line string) ([]grid.Coord, error) {
	parts := strings.Split(line, "->")
	if len(parts) < 2 {
		return nil, fmt.Errorf("day14: path %q needs at least two points", line)
	}

	pts := make([]grid.Coord, 0, len(parts))
	for _, p := range parts {
		xs, ys, ok := strings.Cut(strings.TrimSpace(p), ",")
		if !ok {
			return nil, fmt.Errorf("day14: invalid point %q", strings.TrimSpace(p))
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("day14: invalid coordinate: %w", err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("day14: invalid coordinate: %w", err)
		}
		pts = append(pts, grid.Coord{X: x, Y: y})
	}

	return pts, nil
}

// scanRocks rasterizes every path into an occupancy set and returns it
// with the largest rock Y.
func scanRocks(r io.Reader) (map[grid.Coord]struct{}, int, error) {
	paths, err := scan.Items(r, parsePath)
	if err != nil {
		return nil, 0, err
	}

	rocks := map[grid.Coord]struct{}{}
	lowest := 0
	for _, pts := range paths {
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			switch {
			case a.X == b.X:
				for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
					rocks[grid.Coord{X: a.X, Y: y}] = struct{}{}
				}
			case a.Y == b.Y:
				for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
					rocks[grid.Coord{X: x, Y: a.Y}] = struct{}{}
				}
			default:
				return nil, 0, fmt.Errorf("day14: diagonal segment %v -> %v", a, b)
			}
			lowest = max(lowest, a.Y, b.Y)
		}
	}
	if len(rocks) == 0 {
		return nil, 0, errors.New("day14: no rock scanned")
	}

	return rocks, lowest, nil
}

// settle traces one unit of sand until it comes to rest. With hasFloor the
// infinite floor lies two below lowest; without it a unit sinking past the
// lowest rock is lost and ok is false.
func settle(occupied map[grid.Coord]struct{}, lowest int, hasFloor bool) (grid.Coord, bool) {
	pos := source
	for {
		if hasFloor {
			if pos.Y == lowest+1 {
				return pos, true
			}
		} else if pos.Y >= lowest {
			return grid.Coord{}, false
		}

		moved := false
		for _, next := range [3]grid.Coord{
			{X: pos.X, Y: pos.Y + 1},
			{X: pos.X - 1, Y: pos.Y + 1},
			{X: pos.X + 1, Y: pos.Y + 1},
		} {
			if _, blocked := occupied[next]; !blocked {
				pos = next
				moved = true
				break
			}
		}
		if !moved {
			return pos, true
		}
	}
}

// Part1 counts the units at rest when sand first escapes into the abyss.
func Part1(r io.Reader) (int, error) {
	occupied, lowest, err := scanRocks(r)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		p, ok := settle(occupied, lowest, false)
		if !ok {
			return count, nil
		}
		occupied[p] = struct{}{}
		count++
	}
}

// Part2 counts the units poured until one rests at the source itself.
func Part2(r io.Reader) (int, error) {
	occupied, lowest, err := scanRocks(r)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		p, _ := settle(occupied, lowest, true)
		count++
		if p == source {
			return count, nil
		}
		occupied[p] = struct{}{}
	}
}
