// Package day17 drops the five cyclic rock shapes down a 7-wide chamber,
// pushed left and right by the jet pattern. Part 1 measures the tower
// after 2022 rocks. Part 2 asks for a trillion rocks, so the simulation
// fingerprints the top of the tower together with the rock and jet cursors
// and fast-forwards over the cycle it finds.
package day17

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/advent2022/grid"
	"github.com/katalvlaran/advent2022/scan"
)

const (
	chamberWidth    = 7
	fingerprintRows = 20
)

// rockShapes lists each shape's cells relative to its bottom-left corner,
// y growing upward: bar, plus, corner, column, square.
var rockShapes = [5][]grid.Coord{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

func parseJets(r io.Reader) ([]int, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.New("day17: empty jet pattern")
	}

	jets := make([]int, 0, len(lines[0]))
	for _, ch := range lines[0] {
		switch ch {
		case '<':
			jets = append(jets, -1)
		case '>':
			jets = append(jets, 1)
		default:
			return nil, fmt.Errorf("day17: unexpected jet direction %q", ch)
		}
	}

	return jets, nil
}

type chamber struct {
	occupied map[grid.Coord]struct{}
	top      int
}

// blocked treats the side walls and the floor as solid rock.
func (c *chamber) blocked(p grid.Coord) bool {
	if p.X < 0 || p.X >= chamberWidth || p.Y < 0 {
		return true
	}
	_, ok := c.occupied[p]

	return ok
}

func (c *chamber) fits(shape []grid.Coord, pos grid.Coord) bool {
	for _, off := range shape {
		if c.blocked(grid.Coord{X: pos.X + off.X, Y: pos.Y + off.Y}) {
			return false
		}
	}

	return true
}

// drop releases one rock two cells from the left wall and three above the
// tower, alternating jet pushes and falls until it rests. It returns the
// jet cursor for the next rock.
func (c *chamber) drop(shape []grid.Coord, jets []int, jet int) int {
	pos := grid.Coord{X: 2, Y: c.top + 3}
	for {
		push := grid.Coord{X: pos.X + jets[jet], Y: pos.Y}
		jet = (jet + 1) % len(jets)
		if c.fits(shape, push) {
			pos = push
		}

		down := grid.Coord{X: pos.X, Y: pos.Y - 1}
		if c.fits(shape, down) {
			pos = down
			continue
		}
		for _, off := range shape {
			cell := grid.Coord{X: pos.X + off.X, Y: pos.Y + off.Y}
			c.occupied[cell] = struct{}{}
			if cell.Y+1 > c.top {
				c.top = cell.Y + 1
			}
		}

		return jet
	}
}

// profile packs the topmost rows into one 7-bit mask per level.
func (c *chamber) profile() [fingerprintRows]uint8 {
	var rows [fingerprintRows]uint8
	for i := 0; i < fingerprintRows && i < c.top; i++ {
		y := c.top - 1 - i
		for x := 0; x < chamberWidth; x++ {
			if _, ok := c.occupied[grid.Coord{X: x, Y: y}]; ok {
				rows[i] |= 1 << x
			}
		}
	}

	return rows
}

type towerState struct {
	rock, jet int
	rows      [fingerprintRows]uint8
}

type towerProgress struct {
	rocks, height int
}

// totalHeight simulates target rocks. Once the pair of cursors and the top
// rows repeat, the tower grows by a fixed amount per fixed rock count, so
// whole cycles are skipped arithmetically and only the remainder is
// simulated.
func totalHeight(r io.Reader, target int) (int, error) {
	jets, err := parseJets(r)
	if err != nil {
		return 0, err
	}

	c := &chamber{occupied: map[grid.Coord]struct{}{}}
	seen := map[towerState]towerProgress{}
	jet := 0
	skipped := 0
	fastForwarded := false
	for dropped := 0; dropped < target; {
		if !fastForwarded && c.top >= fingerprintRows {
			st := towerState{rock: dropped % len(rockShapes), jet: jet, rows: c.profile()}
			if prev, ok := seen[st]; ok {
				cycleRocks := dropped - prev.rocks
				cycleHeight := c.top - prev.height
				n := (target - dropped) / cycleRocks
				skipped = n * cycleHeight
				dropped += n * cycleRocks
				fastForwarded = true
				continue
			}
			seen[st] = towerProgress{rocks: dropped, height: c.top}
		}
		jet = c.drop(rockShapes[dropped%len(rockShapes)], jets, jet)
		dropped++
	}

	return c.top + skipped, nil
}

// Part1 returns the tower height after 2022 rocks.
func Part1(r io.Reader) (int, error) {
	return totalHeight(r, 2022)
}

// Part2 returns the tower height after 1000000000000 rocks.
func Part2(r io.Reader) (int, error) {
	return totalHeight(r, 1000000000000)
}
