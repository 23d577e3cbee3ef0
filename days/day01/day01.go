// Package day01 counts calories: the input is a sequence of inventories,
// each a blank-line-separated block of one integer per line, and the
// answers rank the inventory totals.
package day01

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/advent2022/scan"
)

// totals sums every inventory block in input order.
func totals(r io.Reader) ([]int, error) {
	blocks, err := scan.Blocks(r)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(blocks))
	for _, block := range blocks {
		sum := 0
		for _, line := range block {
			v, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("day01: bad calorie count %q: %w", line, err)
			}
			sum += v
		}
		out = append(out, sum)
	}

	return out, nil
}

// Part1 returns the largest inventory total.
func Part1(r io.Reader) (int, error) {
	sums, err := totals(r)
	if err != nil {
		return 0, err
	}

	best := 0
	for _, s := range sums {
		if s > best {
			best = s
		}
	}

	return best, nil
}

// Part2 returns the combined total of the three largest inventories.
func Part2(r io.Reader) (int, error) {
	sums, err := totals(r)
	if err != nil {
		return 0, err
	}

	sort.Sort(sort.Reverse(sort.IntSlice(sums)))
	top := 0
	for i := 0; i < 3 && i < len(sums); i++ {
		top += sums[i]
	}

	return top, nil
}
