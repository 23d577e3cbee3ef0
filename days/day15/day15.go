// Package day15 maps sensor coverage. Every sensor reports its closest
// beacon, fixing a Manhattan radius inside which no other beacon can sit.
// Merged per-row coverage intervals answer both questions: how many cells
// of one row cannot hold a beacon, and where the single uncovered spot in
// a bounded square is.
package day15

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	"github.com/katalvlaran/advent2022/grid"
	"github.com/katalvlaran/advent2022/scan"
	"github.com/katalvlaran/advent2022/xmath"
)

// tuningMultiplier weighs the x coordinate in part 2's answer.
const tuningMultiplier = 4000000

var numberRe = regexp.MustCompile(`-?\d+`)

type sensor struct {
	pos, beacon grid.Coord
	radius      int
}

type span struct {
	lo, hi int
}

func parseSensor(line string) (sensor, error) {
	nums := numberRe.FindAllString(line, -1)
	if len(nums) != 4 {
		return sensor{}, fmt.Errorf("day15: invalid sensor descriptor %q", line)
	}

	var vals [4]int
	for i, n := range nums {
		v, err := strconv.Atoi(n)
		if err != nil {
			return sensor{}, fmt.Errorf("day15: invalid coordinate: %w", err)
		}
		vals[i] = v
	}

	s := sensor{
		pos:    grid.Coord{X: vals[0], Y: vals[1]},
		beacon: grid.Coord{X: vals[2], Y: vals[3]},
	}
	s.radius = xmath.Abs(s.pos.X-s.beacon.X) + xmath.Abs(s.pos.Y-s.beacon.Y)

	return s, nil
}

func parseSensors(r io.Reader) ([]sensor, error) {
	sensors, err := scan.Items(r, parseSensor)
	if err != nil {
		return nil, err
	}
	if len(sensors) == 0 {
		return nil, errors.New("day15: no sensors")
	}

	return sensors, nil
}

// rowSpans returns the x-intervals covered on row y, merged into disjoint
// spans sorted by lo. Adjacent spans coalesce, so any hole in the returned
// cover is a genuinely uncovered cell.
func rowSpans(sensors []sensor, y int) []span {
	var spans []span
	for _, s := range sensors {
		half := s.radius - xmath.Abs(s.pos.Y-y)
		if half < 0 {
			continue
		}
		spans = append(spans, span{s.pos.X - half, s.pos.X + half})
	}
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	merged := []span{spans[0]}
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.lo <= last.hi+1 {
			if sp.hi > last.hi {
				last.hi = sp.hi
			}
			continue
		}
		merged = append(merged, sp)
	}

	return merged
}

// Part1 counts the cells on the given row that cannot hold a beacon:
// covered cells minus the beacons already sitting there.
func Part1(r io.Reader, row int) (int, error) {
	sensors, err := parseSensors(r)
	if err != nil {
		return 0, err
	}

	spans := rowSpans(sensors, row)
	count := 0
	for _, sp := range spans {
		count += sp.hi - sp.lo + 1
	}

	onRow := map[int]struct{}{}
	for _, s := range sensors {
		if s.beacon.Y == row {
			onRow[s.beacon.X] = struct{}{}
		}
	}
	for x := range onRow {
		for _, sp := range spans {
			if x >= sp.lo && x <= sp.hi {
				count--
				break
			}
		}
	}

	return count, nil
}

// Part2 finds the one position inside [0,bound]x[0,bound] no sensor
// covers and returns its tuning frequency, x*4000000+y.
func Part2(r io.Reader, bound int) (int, error) {
	sensors, err := parseSensors(r)
	if err != nil {
		return 0, err
	}

	for y := 0; y <= bound; y++ {
		x := 0
		for _, sp := range rowSpans(sensors, y) {
			if sp.hi < x || sp.lo > bound {
				continue
			}
			if sp.lo > x {
				break
			}
			x = sp.hi + 1
			if x > bound {
				break
			}
		}
		if x <= bound {
			return x*tuningMultiplier + y, nil
		}
	}

	return 0, fmt.Errorf("day15: every position within %d is covered", bound)
}
