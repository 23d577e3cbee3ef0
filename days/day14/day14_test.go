package day14_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/days/day14"
)

const example = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func TestPart1_Example(t *testing.T) {
	got, err := day14.Part1(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := day14.Part2(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 93, got)
}

func TestPart1_DiagonalSegment(t *testing.T) {
	_, err := day14.Part1(strings.NewReader("1,1 -> 3,3\n"))
	assert.ErrorContains(t, err, "diagonal segment (1,1) -> (3,3)")
}

func TestPart1_SinglePointPath(t *testing.T) {
	_, err := day14.Part1(strings.NewReader("500,5\n"))
	assert.ErrorContains(t, err, "at least two points")
}

func TestPart1_InvalidPoint(t *testing.T) {
	_, err := day14.Part1(strings.NewReader("498,4 -> 498\n"))
	assert.ErrorContains(t, err, `invalid point "498"`)
}

func TestPart1_NoRock(t *testing.T) {
	_, err := day14.Part1(strings.NewReader(""))
	assert.ErrorContains(t, err, "no rock scanned")
}
