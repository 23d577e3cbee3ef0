// Package day10 emulates the handheld's video system. A two-instruction
// CPU (noop, addx) drives the X register; part 1 samples signal strength
// every 40 cycles starting at cycle 20, part 2 renders the 40-wide CRT
// where a pixel lights up when the three-wide sprite overlaps the beam.
package day10

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/scan"
)

// states returns the value of X during every cycle. noop holds the value
// for one cycle, addx for two before the add lands.
func states(r io.Reader) ([]int, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return nil, err
	}

	var out []int
	x := 1
	for i, line := range lines {
		switch {
		case line == "noop":
			out = append(out, x)
		case strings.HasPrefix(line, "addx "):
			v, err := strconv.Atoi(strings.TrimPrefix(line, "addx "))
			if err != nil {
				return nil, fmt.Errorf("day10: line %d: invalid addx parameter: %w", i+1, err)
			}
			out = append(out, x, x)
			x += v
		default:
			return nil, fmt.Errorf("day10: line %d: invalid opcode %q", i+1, line)
		}
	}

	return out, nil
}

// Part1 sums cycle*X at cycles 20, 60, 100 and so on.
func Part1(r io.Reader) (int, error) {
	xs, err := states(r)
	if err != nil {
		return 0, err
	}

	sum := 0
	for i, x := range xs {
		cycle := i + 1
		if cycle >= 20 && (cycle-20)%40 == 0 {
			sum += cycle * x
		}
	}

	return sum, nil
}

// Part2 renders the CRT: one character per cycle, 40 per row, '#' when the
// sprite centered on X covers the beam column and '.' otherwise. Every
// completed row ends with a newline.
func Part2(r io.Reader) (string, error) {
	xs, err := states(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, x := range xs {
		col := i % 40
		if col >= x-1 && col <= x+1 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if col == 39 {
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}
