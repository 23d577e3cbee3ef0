// Package day07 sizes directories from a shell transcript. Replaying the
// cd/ls session credits every file's size to each directory on its path,
// which is all the two answers need: no tree, just a path-keyed total map.
package day07

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/advent2022/scan"
)

const (
	smallDirLimit  = 100000
	totalAvailable = 70000000
	requiredFree   = 30000000
)

// sizes replays the transcript and returns the cumulative size of every
// directory, keyed by its path relative to root (root itself keys as "").
func sizes(r io.Reader) (map[string]int, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	stack := []string{""}
	for i, line := range lines {
		switch {
		case line == "$ cd /":
			stack = stack[:1]
		case line == "$ cd ..":
			if len(stack) == 1 {
				return nil, fmt.Errorf("day07: line %d: cd above root", i+1)
			}
			stack = stack[:len(stack)-1]
		case strings.HasPrefix(line, "$ cd "):
			stack = append(stack, strings.TrimPrefix(line, "$ cd "))
		case line == "$ ls":
			// The listing entries that follow speak for themselves.
		case strings.HasPrefix(line, "dir "):
			// Directories only gain size through the files inside them.
		default:
			prefix, _, ok := strings.Cut(line, " ")
			if !ok {
				return nil, fmt.Errorf("day07: line %d: not a listing tuple %q", i+1, line)
			}
			size, err := strconv.Atoi(prefix)
			if err != nil {
				return nil, fmt.Errorf("day07: line %d: %w", i+1, err)
			}
			for j := range stack {
				totals[strings.Join(stack[:j+1], "/")] += size
			}
		}
	}

	return totals, nil
}

// Part1 sums the totals of all directories smaller than 100000.
func Part1(r io.Reader) (int, error) {
	totals, err := sizes(r)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, size := range maps.Values(totals) {
		if size < smallDirLimit {
			sum += size
		}
	}

	return sum, nil
}

// Part2 returns the size of the smallest directory whose deletion brings
// free space up to the 30000000 the update needs.
func Part2(r io.Reader) (int, error) {
	totals, err := sizes(r)
	if err != nil {
		return 0, err
	}

	need := requiredFree - (totalAvailable - totals[""])
	if need <= 0 {
		return 0, nil
	}

	best := -1
	for _, size := range maps.Values(totals) {
		if size >= need && (best == -1 || size < best) {
			best = size
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("day07: no directory frees up %d", need)
	}

	return best, nil
}
