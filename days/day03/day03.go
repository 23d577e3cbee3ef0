// Package day03 finds misplaced rucksack items. Priorities run a-z as 1-26
// and A-Z as 27-52, so every rucksack compartment fits in one small bitset
// and the common item drops out of set intersections.
package day03

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/advent2022/scan"
)

// priorityBits is the universe size: priorities 1..52 plus the unused bit 0.
const priorityBits = 53

// priority maps an item rune to its score.
func priority(c rune) (uint, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 27, nil
	}

	return 0, fmt.Errorf("day03: invalid item %q", c)
}

// itemSet collects the priority of every rune in s into one bitset.
func itemSet(s string) (*bitset.BitSet, error) {
	set := bitset.New(priorityBits)
	for _, c := range s {
		p, err := priority(c)
		if err != nil {
			return nil, err
		}
		set.Set(p)
	}

	return set, nil
}

// rucksack keeps the two compartments as separate priority sets.
type rucksack struct {
	first, second *bitset.BitSet
}

func parseRucksack(line string) (rucksack, error) {
	if len(line)%2 != 0 {
		return rucksack{}, fmt.Errorf("day03: odd rucksack length %d", len(line))
	}

	first, err := itemSet(line[:len(line)/2])
	if err != nil {
		return rucksack{}, err
	}
	second, err := itemSet(line[len(line)/2:])
	if err != nil {
		return rucksack{}, err
	}

	return rucksack{first, second}, nil
}

// all returns the union of both compartments.
func (r rucksack) all() *bitset.BitSet {
	return r.first.Union(r.second)
}

// sumSet adds up every priority present in set.
func sumSet(set *bitset.BitSet) int {
	sum := 0
	for p, ok := set.NextSet(1); ok; p, ok = set.NextSet(p + 1) {
		sum += int(p)
	}

	return sum
}

// Part1 sums the priorities of items appearing in both compartments of
// each rucksack.
func Part1(r io.Reader) (int, error) {
	sacks, err := scan.Items(r, parseRucksack)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, s := range sacks {
		sum += sumSet(s.first.Intersection(s.second))
	}

	return sum, nil
}

// Part2 groups rucksacks in threes and sums the priority of each group's
// badge, the single item all three carry.
func Part2(r io.Reader) (int, error) {
	sacks, err := scan.Items(r, parseRucksack)
	if err != nil {
		return 0, err
	}
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("day03: %d rucksacks do not split into groups of three", len(sacks))
	}

	sum := 0
	for i := 0; i < len(sacks); i += 3 {
		badge := sacks[i].all().Intersection(sacks[i+1].all()).Intersection(sacks[i+2].all())
		p, ok := badge.NextSet(1)
		if !ok {
			return 0, fmt.Errorf("day03: group starting at rucksack %d shares no item", i+1)
		}
		sum += int(p)
	}

	return sum, nil
}
