// Command advent runs one day's puzzle solver against its input file and
// prints both answers. Diagnostics go to stderr and stay quiet unless -v
// is set.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent2022/days/day01"
	"github.com/katalvlaran/advent2022/days/day02"
	"github.com/katalvlaran/advent2022/days/day03"
	"github.com/katalvlaran/advent2022/days/day04"
	"github.com/katalvlaran/advent2022/days/day05"
	"github.com/katalvlaran/advent2022/days/day06"
	"github.com/katalvlaran/advent2022/days/day07"
	"github.com/katalvlaran/advent2022/days/day08"
	"github.com/katalvlaran/advent2022/days/day09"
	"github.com/katalvlaran/advent2022/days/day10"
	"github.com/katalvlaran/advent2022/days/day11"
	"github.com/katalvlaran/advent2022/days/day12"
	"github.com/katalvlaran/advent2022/days/day13"
	"github.com/katalvlaran/advent2022/days/day14"
	"github.com/katalvlaran/advent2022/days/day15"
	"github.com/katalvlaran/advent2022/days/day17"
	"github.com/katalvlaran/advent2022/days/day18"
)

// Day 15 probes these in the real input; the worked examples use smaller
// values covered by the package tests.
const (
	beaconRow   = 2000000
	searchBound = 4000000
)

var log = logrus.New()

// solver turns one day's raw input into its two printable answers.
type solver func(data []byte) (string, string, error)

func intParts(p1, p2 func(io.Reader) (int, error)) solver {
	return func(data []byte) (string, string, error) {
		a, err := p1(bytes.NewReader(data))
		if err != nil {
			return "", "", err
		}
		b, err := p2(bytes.NewReader(data))
		if err != nil {
			return "", "", err
		}

		return strconv.Itoa(a), strconv.Itoa(b), nil
	}
}

func stringParts(p1, p2 func(io.Reader) (string, error)) solver {
	return func(data []byte) (string, string, error) {
		a, err := p1(bytes.NewReader(data))
		if err != nil {
			return "", "", err
		}
		b, err := p2(bytes.NewReader(data))
		if err != nil {
			return "", "", err
		}

		return a, b, nil
	}
}

var solvers = map[int]solver{
	1: intParts(day01.Part1, day01.Part2),
	2: intParts(day02.Part1, day02.Part2),
	3: intParts(day03.Part1, day03.Part2),
	4: intParts(day04.Part1, day04.Part2),
	5: stringParts(day05.Part1, day05.Part2),
	6: intParts(day06.Part1, day06.Part2),
	7: intParts(day07.Part1, day07.Part2),
	8: intParts(day08.Part1, day08.Part2),
	9: intParts(day09.Part1, day09.Part2),
	10: func(data []byte) (string, string, error) {
		sum, err := day10.Part1(bytes.NewReader(data))
		if err != nil {
			return "", "", err
		}
		crt, err := day10.Part2(bytes.NewReader(data))
		if err != nil {
			return "", "", err
		}

		return strconv.Itoa(sum), "\n" + crt, nil
	},
	11: intParts(day11.Part1, day11.Part2),
	12: intParts(day12.Part1, day12.Part2),
	13: intParts(day13.Part1, day13.Part2),
	14: intParts(day14.Part1, day14.Part2),
	15: func(data []byte) (string, string, error) {
		count, err := day15.Part1(bytes.NewReader(data), beaconRow)
		if err != nil {
			return "", "", err
		}
		freq, err := day15.Part2(bytes.NewReader(data), searchBound)
		if err != nil {
			return "", "", err
		}

		return strconv.Itoa(count), strconv.Itoa(freq), nil
	},
	17: intParts(day17.Part1, day17.Part2),
	18: intParts(day18.Part1, day18.Part2),
}

func main() {
	day := flag.Int("day", 0, "puzzle day to solve")
	input := flag.String("input", "", "input file, defaults to input/dayNN.txt")
	verbose := flag.Bool("v", false, "log solver diagnostics")
	flag.Parse()

	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.InfoLevel)
	}

	solve, ok := solvers[*day]
	if !ok {
		log.WithFields(logrus.Fields{"day": *day}).Fatal("no solver for this day")
	}

	path := *input
	if path == "" {
		path = fmt.Sprintf("input/day%02d.txt", *day)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithFields(logrus.Fields{"path": path}).WithError(err).Fatal("could not read input")
	}

	log.WithFields(logrus.Fields{"day": *day, "path": path, "bytes": len(data)}).Info("solving")
	start := time.Now()
	part1, part2, err := solve(data)
	if err != nil {
		log.WithFields(logrus.Fields{"day": *day}).WithError(err).Fatal("solver failed")
	}
	log.WithFields(logrus.Fields{"elapsed": time.Since(start)}).Info("solved")

	fmt.Printf("Answer for part 1: %s\n", part1)
	fmt.Printf("Answer for part 2: %s\n", part2)
}
