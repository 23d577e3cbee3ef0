// Package day09 drags a rope across an infinite plane. The head follows
// the movement list one step at a time and every further knot snaps one
// step toward its predecessor whenever it loses contact. The answer counts
// positions the last knot visits, with 2 knots in part 1 and 10 in part 2.
package day09

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/grid"
	"github.com/katalvlaran/advent2022/scan"
	"github.com/katalvlaran/advent2022/xmath"
)

type move struct {
	dx, dy, steps int
}

func parseMove(line string) (move, error) {
	dir, dist, ok := strings.Cut(line, " ")
	if !ok {
		return move{}, fmt.Errorf("day09: invalid movement %q", line)
	}
	steps, err := strconv.Atoi(dist)
	if err != nil {
		return move{}, fmt.Errorf("day09: invalid distance: %w", err)
	}

	switch dir {
	case "U":
		return move{0, 1, steps}, nil
	case "D":
		return move{0, -1, steps}, nil
	case "L":
		return move{-1, 0, steps}, nil
	case "R":
		return move{1, 0, steps}, nil
	}

	return move{}, fmt.Errorf("day09: invalid direction %q", dir)
}

// touches reports whether two knots overlap or are adjacent, diagonals
// included.
func touches(a, b grid.Coord) bool {
	return xmath.Abs(a.X-b.X) <= 1 && xmath.Abs(a.Y-b.Y) <= 1
}

func simulate(r io.Reader, knots int) (int, error) {
	moves, err := scan.Items(r, parseMove)
	if err != nil {
		return 0, err
	}

	rope := make([]grid.Coord, knots)
	visited := map[grid.Coord]struct{}{rope[knots-1]: {}}
	for _, m := range moves {
		for s := 0; s < m.steps; s++ {
			rope[0].X += m.dx
			rope[0].Y += m.dy
			for i := 1; i < len(rope); i++ {
				if touches(rope[i-1], rope[i]) {
					// Knots behind an unmoved knot stay put too.
					break
				}
				rope[i].X += xmath.Sign(rope[i-1].X - rope[i].X)
				rope[i].Y += xmath.Sign(rope[i-1].Y - rope[i].Y)
			}
			visited[rope[len(rope)-1]] = struct{}{}
		}
	}

	return len(visited), nil
}

// Part1 counts the cells a two-knot rope's tail visits.
func Part1(r io.Reader) (int, error) {
	return simulate(r, 2)
}

// Part2 counts the cells the last knot of a ten-knot rope visits.
func Part2(r io.Reader) (int, error) {
	return simulate(r, 10)
}
