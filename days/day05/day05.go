// Package day05 rearranges stacks of crates. The input opens with an ASCII
// drawing of the stacks (crate letters in brackets above a label row), then
// a blank line, then "move N from A to B" instructions. Part 1 moves crates
// one at a time, part 2 moves each batch in one lift.
package day05

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/advent2022/scan"
)

type stacks [][]byte

// parseStacks reads the drawing bottom-up. The last line labels the stacks
// and fixes their count; crate letters sit at column 4*i+1.
func parseStacks(drawing []string) (stacks, error) {
	if len(drawing) < 2 {
		return nil, errors.New("day05: drawing needs at least one crate row and a label row")
	}

	labels := strings.Fields(drawing[len(drawing)-1])
	st := make(stacks, len(labels))
	for i := len(drawing) - 2; i >= 0; i-- {
		line := drawing[i]
		for s := range st {
			pos := s*4 + 1
			if pos >= len(line) {
				break
			}
			if c := line[pos]; c != ' ' {
				st[s] = append(st[s], c)
			}
		}
	}

	return st, nil
}

// move lifts n crates off stack from onto stack to. Stacks are numbered
// from 1 as in the instructions. With preserveOrder the batch keeps its
// stacking order, otherwise crates land one at a time and reverse.
func (st stacks) move(n, from, to int, preserveOrder bool) error {
	if from < 1 || from > len(st) || to < 1 || to > len(st) {
		return fmt.Errorf("day05: stack out of range in move %d from %d to %d", n, from, to)
	}
	src := st[from-1]
	if n > len(src) {
		return fmt.Errorf("day05: cannot move %d crates off stack %d holding %d", n, from, len(src))
	}

	batch := make([]byte, n)
	copy(batch, src[len(src)-n:])
	st[from-1] = src[:len(src)-n]
	if !preserveOrder {
		for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
			batch[i], batch[j] = batch[j], batch[i]
		}
	}
	st[to-1] = append(st[to-1], batch...)

	return nil
}

// tops concatenates the top crate of every stack.
func (st stacks) tops() (string, error) {
	var b strings.Builder
	for i, s := range st {
		if len(s) == 0 {
			return "", fmt.Errorf("day05: stack %d is empty", i+1)
		}
		b.WriteByte(s[len(s)-1])
	}

	return b.String(), nil
}

func run(r io.Reader, preserveOrder bool) (string, error) {
	blocks, err := scan.Blocks(r)
	if err != nil {
		return "", err
	}
	if len(blocks) != 2 {
		return "", fmt.Errorf("day05: want a drawing block and a moves block, got %d", len(blocks))
	}

	st, err := parseStacks(blocks[0])
	if err != nil {
		return "", err
	}
	for i, line := range blocks[1] {
		var n, from, to int
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &n, &from, &to); err != nil {
			return "", fmt.Errorf("day05: instruction %d %q: %w", i+1, line, err)
		}
		if err := st.move(n, from, to, preserveOrder); err != nil {
			return "", err
		}
	}

	return st.tops()
}

// Part1 reports the top crates after the CrateMover 9000 run, which lifts
// one crate at a time.
func Part1(r io.Reader) (string, error) {
	return run(r, false)
}

// Part2 reports the top crates after the CrateMover 9001 run, which lifts
// a whole batch at once.
func Part2(r io.Reader) (string, error) {
	return run(r, true)
}
