package day01_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/days/day01"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestPart1_Example(t *testing.T) {
	got, err := day01.Part1(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 24000, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := day01.Part2(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 45000, got)
}

func TestPart2_FewerThanThreeInventories(t *testing.T) {
	got, err := day01.Part2(strings.NewReader("100\n200\n"))
	require.NoError(t, err)
	assert.Equal(t, 300, got)
}

func TestPart1_BadInput(t *testing.T) {
	_, err := day01.Part1(strings.NewReader("1000\nbeans\n"))
	assert.ErrorContains(t, err, `bad calorie count "beans"`)
}
