// Package day11 plays keep-away with worry-level arithmetic. Each monkey
// block in the input describes starting items, an inspection operation and
// a divisibility throw test. Part 1 runs 20 rounds with worry divided by 3
// after every inspection; part 2 runs 10000 rounds without relief, keeping
// worry levels tractable modulo the lcm of all divisors. Both answers are
// the product of the two highest inspection counts.
package day11

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/scan"
	"github.com/katalvlaran/advent2022/xmath"
)

type monkey struct {
	items   []int
	op      func(int) int
	divisor int
	ifTrue  int
	ifFalse int
}

// lastInt parses the final space-separated field of a descriptor line.
func lastInt(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("day11: empty descriptor line")
	}

	return strconv.Atoi(fields[len(fields)-1])
}

func parseOperation(line string) (func(int) int, error) {
	_, expr, ok := strings.Cut(line, "new = ")
	if !ok {
		return nil, fmt.Errorf("day11: invalid operation %q", line)
	}
	if expr == "old * old" {
		return func(old int) int { return old * old }, nil
	}
	if rest, found := strings.CutPrefix(expr, "old + "); found {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("day11: invalid operand: %w", err)
		}

		return func(old int) int { return old + v }, nil
	}
	if rest, found := strings.CutPrefix(expr, "old * "); found {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("day11: invalid operand: %w", err)
		}

		return func(old int) int { return old * v }, nil
	}

	return nil, fmt.Errorf("day11: no operator in %q", expr)
}

func parseMonkey(block []string) (*monkey, error) {
	if len(block) != 6 {
		return nil, fmt.Errorf("day11: want 6 descriptor lines, got %d", len(block))
	}

	m := &monkey{}
	_, list, ok := strings.Cut(block[1], ":")
	if !ok {
		return nil, fmt.Errorf("day11: invalid item list %q", block[1])
	}
	for _, it := range strings.Split(list, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(it))
		if err != nil {
			return nil, fmt.Errorf("day11: invalid item: %w", err)
		}
		m.items = append(m.items, v)
	}

	var err error
	if m.op, err = parseOperation(block[2]); err != nil {
		return nil, err
	}
	if m.divisor, err = lastInt(block[3]); err != nil {
		return nil, fmt.Errorf("day11: invalid divisor: %w", err)
	}
	if m.ifTrue, err = lastInt(block[4]); err != nil {
		return nil, fmt.Errorf("day11: invalid true target: %w", err)
	}
	if m.ifFalse, err = lastInt(block[5]); err != nil {
		return nil, fmt.Errorf("day11: invalid false target: %w", err)
	}

	return m, nil
}

func parseTroop(r io.Reader) ([]*monkey, error) {
	blocks, err := scan.Blocks(r)
	if err != nil {
		return nil, err
	}

	monkeys := make([]*monkey, 0, len(blocks))
	for i, block := range blocks {
		m, err := parseMonkey(block)
		if err != nil {
			return nil, fmt.Errorf("monkey %d: %w", i, err)
		}
		monkeys = append(monkeys, m)
	}
	for i, m := range monkeys {
		if m.ifTrue < 0 || m.ifTrue >= len(monkeys) || m.ifFalse < 0 || m.ifFalse >= len(monkeys) {
			return nil, fmt.Errorf("day11: monkey %d throws to a monkey that does not exist", i)
		}
	}

	return monkeys, nil
}

// play runs the given number of rounds and returns the monkey business
// level, the product of the two largest inspection counts. relief maps a
// freshly inspected worry level to the one actually thrown.
func play(monkeys []*monkey, rounds int, relief func(int) int) int {
	counts := make([]int, len(monkeys))
	for r := 0; r < rounds; r++ {
		for i, m := range monkeys {
			items := m.items
			m.items = nil
			counts[i] += len(items)
			for _, item := range items {
				worry := relief(m.op(item))
				to := m.ifFalse
				if worry%m.divisor == 0 {
					to = m.ifTrue
				}
				monkeys[to].items = append(monkeys[to].items, worry)
			}
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	return counts[0] * counts[1]
}

// Part1 plays 20 rounds with worry divided by 3 after each inspection.
func Part1(r io.Reader) (int, error) {
	monkeys, err := parseTroop(r)
	if err != nil {
		return 0, err
	}
	if len(monkeys) < 2 {
		return 0, fmt.Errorf("day11: need at least two monkeys, got %d", len(monkeys))
	}

	return play(monkeys, 20, func(w int) int { return w / 3 }), nil
}

// Part2 plays 10000 rounds without relief, reducing worry modulo the lcm
// of all throw-test divisors to keep the numbers bounded.
func Part2(r io.Reader) (int, error) {
	monkeys, err := parseTroop(r)
	if err != nil {
		return 0, err
	}
	if len(monkeys) < 2 {
		return 0, fmt.Errorf("day11: need at least two monkeys, got %d", len(monkeys))
	}

	ring := 1
	for _, m := range monkeys {
		ring = xmath.Lcm(ring, m.divisor)
	}

	return play(monkeys, 10000, func(w int) int { return w % ring }), nil
}
