// Package day02 scores a rock-paper-scissors strategy guide. Each line
// pairs the opponent's shape (A/B/C) with a second column read either as
// the shape to answer with (X/Y/Z) or as the outcome to arrange.
package day02

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/advent2022/scan"
)

// shape carries its base score as value: rock 1, paper 2, scissors 3.
type shape int

const (
	rock shape = 1 + iota
	paper
	scissors
)

// parseShape accepts both the opponent column (A/B/C) and the response
// column (X/Y/Z).
func parseShape(s string) (shape, error) {
	switch s {
	case "A", "X":
		return rock, nil
	case "B", "Y":
		return paper, nil
	case "C", "Z":
		return scissors, nil
	}

	return 0, fmt.Errorf("day02: invalid shape symbol %q", s)
}

// weaker returns the shape s defeats.
func (s shape) weaker() shape {
	switch s {
	case rock:
		return scissors
	case paper:
		return rock
	default:
		return paper
	}
}

// stronger returns the shape that defeats s.
func (s shape) stronger() shape {
	switch s {
	case rock:
		return paper
	case paper:
		return scissors
	default:
		return rock
	}
}

// score tallies one round: the response's base score plus 0, 3 or 6 for a
// loss, draw or win.
func score(opponent, response shape) int {
	v := int(response)
	switch {
	case response == opponent:
		v += 3
	case response.weaker() == opponent:
		v += 6
	}

	return v
}

type round struct {
	opponent, response shape
}

// parseRound reads the second column as the shape to play.
func parseRound(line string) (round, error) {
	left, right, ok := strings.Cut(line, " ")
	if !ok {
		return round{}, fmt.Errorf("day02: invalid strategy line %q", line)
	}
	opponent, err := parseShape(left)
	if err != nil {
		return round{}, err
	}
	response, err := parseShape(right)
	if err != nil {
		return round{}, err
	}

	return round{opponent, response}, nil
}

// parseGoalRound reads the second column as the outcome to arrange: X lose,
// Y draw, Z win. The response shape is derived from the opponent's.
func parseGoalRound(line string) (round, error) {
	left, right, ok := strings.Cut(line, " ")
	if !ok {
		return round{}, fmt.Errorf("day02: invalid strategy line %q", line)
	}
	opponent, err := parseShape(left)
	if err != nil {
		return round{}, err
	}

	var response shape
	switch right {
	case "X":
		response = opponent.weaker()
	case "Y":
		response = opponent
	case "Z":
		response = opponent.stronger()
	default:
		return round{}, fmt.Errorf("day02: invalid outcome symbol %q", right)
	}

	return round{opponent, response}, nil
}

func total(r io.Reader, parse func(string) (round, error)) (int, error) {
	rounds, err := scan.Items(r, parse)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, rd := range rounds {
		sum += score(rd.opponent, rd.response)
	}

	return sum, nil
}

// Part1 sums the scores with the second column taken as the response shape.
func Part1(r io.Reader) (int, error) {
	return total(r, parseRound)
}

// Part2 sums the scores with the second column taken as the desired outcome.
func Part2(r io.Reader) (int, error) {
	return total(r, parseGoalRound)
}
