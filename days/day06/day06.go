// Package day06 locks onto datastream markers: the answer is how many
// characters must be consumed before the last n are pairwise distinct,
// with n=4 for the packet marker and n=14 for the message marker.
package day06

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// marker returns the 1-based count of characters consumed up to and
// including the final byte of the first window of n distinct characters.
func marker(data []byte, n int) (int, error) {
	seen := bitset.New(256)
	for i := n; i <= len(data); i++ {
		seen.ClearAll()
		distinct := true
		for _, c := range data[i-n : i] {
			if seen.Test(uint(c)) {
				distinct = false
				break
			}
			seen.Set(uint(c))
		}
		if distinct {
			return i, nil
		}
	}

	return 0, fmt.Errorf("day06: no window of %d distinct characters", n)
}

func run(r io.Reader, n int) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("day06: %w", err)
	}

	return marker(bytes.TrimRight(data, "\n"), n)
}

// Part1 finds the start-of-packet marker (4 distinct characters).
func Part1(r io.Reader) (int, error) {
	return run(r, 4)
}

// Part2 finds the start-of-message marker (14 distinct characters).
func Part2(r io.Reader) (int, error) {
	return run(r, 14)
}
