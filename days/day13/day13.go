// Package day13 orders distress-signal packets. Every packet line is a
// JSON array of numbers and nested arrays, so decoding leans on the JSON
// parser and only the ordering rules are hand-rolled: numbers compare
// numerically, lists lexicographically, and a number meets a list as a
// single-element list.
package day13

import (
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/advent2022/scan"
)

// validate accepts only numbers and nested lists, the two shapes the
// protocol knows.
func validate(p any) error {
	switch v := p.(type) {
	case float64:
		return nil
	case []any:
		for _, c := range v {
			if err := validate(c); err != nil {
				return err
			}
		}

		return nil
	}

	return fmt.Errorf("unexpected element of type %T", p)
}

func parsePacket(line string) (any, error) {
	var p any
	if err := json.Unmarshal([]byte(line), &p); err != nil {
		return nil, fmt.Errorf("day13: invalid packet %q: %w", line, err)
	}
	if _, ok := p.([]any); !ok {
		return nil, fmt.Errorf("day13: packet %q is not a list", line)
	}
	if err := validate(p); err != nil {
		return nil, fmt.Errorf("day13: packet %q: %w", line, err)
	}

	return p, nil
}

// compare returns a negative value when a sorts before b, positive when
// after, zero when the packets tie.
func compare(a, b any) int {
	av, aNum := a.(float64)
	bv, bNum := b.(float64)
	switch {
	case aNum && bNum:
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}

		return 0
	case aNum:
		return compare([]any{a}, b)
	case bNum:
		return compare(a, []any{b})
	}

	al, bl := a.([]any), b.([]any)
	for i := 0; i < len(al) && i < len(bl); i++ {
		if c := compare(al[i], bl[i]); c != 0 {
			return c
		}
	}

	return len(al) - len(bl)
}

func parsePairs(r io.Reader) ([][2]any, error) {
	blocks, err := scan.Blocks(r)
	if err != nil {
		return nil, err
	}

	pairs := make([][2]any, 0, len(blocks))
	for i, block := range blocks {
		if len(block) != 2 {
			return nil, fmt.Errorf("day13: pair %d has %d packets", i+1, len(block))
		}
		a, err := parsePacket(block[0])
		if err != nil {
			return nil, err
		}
		b, err := parsePacket(block[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]any{a, b})
	}

	return pairs, nil
}

// Part1 sums the 1-based indices of pairs already in the right order.
func Part1(r io.Reader) (int, error) {
	pairs, err := parsePairs(r)
	if err != nil {
		return 0, err
	}

	sum := 0
	for i, pair := range pairs {
		if compare(pair[0], pair[1]) < 0 {
			sum += i + 1
		}
	}

	return sum, nil
}

// Part2 sorts all packets together with the [[2]] and [[6]] dividers and
// multiplies the dividers' 1-based positions.
func Part2(r io.Reader) (int, error) {
	pairs, err := parsePairs(r)
	if err != nil {
		return 0, err
	}

	d2 := []any{[]any{float64(2)}}
	d6 := []any{[]any{float64(6)}}
	all := []any{d2, d6}
	for _, pair := range pairs {
		all = append(all, pair[0], pair[1])
	}

	sort.Slice(all, func(i, j int) bool { return compare(all[i], all[j]) < 0 })

	key := 1
	for i, p := range all {
		if compare(p, d2) == 0 || compare(p, d6) == 0 {
			key *= i + 1
		}
	}

	return key, nil
}
