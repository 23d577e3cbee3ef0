package day04_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/days/day04"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestPart1_Example(t *testing.T) {
	got, err := day04.Part1(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := day04.Part2(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestPart1_InvalidPair(t *testing.T) {
	_, err := day04.Part1(strings.NewReader("2-4 6-8\n"))
	assert.ErrorContains(t, err, "invalid pair")
}

func TestPart1_InvalidRange(t *testing.T) {
	_, err := day04.Part1(strings.NewReader("2:4,6-8\n"))
	assert.ErrorContains(t, err, `invalid range "2:4"`)
}

func TestPart1_InvalidLimit(t *testing.T) {
	_, err := day04.Part1(strings.NewReader("2-x,6-8\n"))
	assert.ErrorContains(t, err, "invalid range limit")
}
