// Package day04 compares cleaning assignments. Each line holds two
// inclusive section ranges ("2-4,6-8") and the answers count pairs where
// one range fully contains the other, or where they overlap at all.
package day04

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/scan"
)

// span is an inclusive section range.
type span struct {
	lo, hi int
}

// contains reports whether s covers all of other.
func (s span) contains(other span) bool {
	return s.lo <= other.lo && s.hi >= other.hi
}

// overlaps reports whether s and other share at least one section.
func (s span) overlaps(other span) bool {
	return s.lo <= other.hi && other.lo <= s.hi
}

func parseSpan(s string) (span, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return span{}, fmt.Errorf("day04: invalid range %q", s)
	}
	lo, err := strconv.Atoi(from)
	if err != nil {
		return span{}, fmt.Errorf("day04: invalid range limit: %w", err)
	}
	hi, err := strconv.Atoi(to)
	if err != nil {
		return span{}, fmt.Errorf("day04: invalid range limit: %w", err)
	}

	return span{lo, hi}, nil
}

type pair struct {
	a, b span
}

func parsePair(line string) (pair, error) {
	left, right, ok := strings.Cut(line, ",")
	if !ok {
		return pair{}, fmt.Errorf("day04: invalid pair %q", line)
	}
	a, err := parseSpan(left)
	if err != nil {
		return pair{}, err
	}
	b, err := parseSpan(right)
	if err != nil {
		return pair{}, err
	}

	return pair{a, b}, nil
}

func count(r io.Reader, keep func(pair) bool) (int, error) {
	pairs, err := scan.Items(r, parsePair)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, p := range pairs {
		if keep(p) {
			n++
		}
	}

	return n, nil
}

// Part1 counts pairs where one assignment fully contains the other.
func Part1(r io.Reader) (int, error) {
	return count(r, func(p pair) bool {
		return p.a.contains(p.b) || p.b.contains(p.a)
	})
}

// Part2 counts pairs whose assignments overlap at all.
func Part2(r io.Reader) (int, error) {
	return count(r, func(p pair) bool {
		return p.a.overlaps(p.b)
	})
}
