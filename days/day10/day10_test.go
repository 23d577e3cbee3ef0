package day10_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/days/day10"
)

const example = `addx 15
addx -11
addx 6
addx -3
addx 5
addx -1
addx -8
addx 13
addx 4
noop
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx -35
addx 1
addx 24
addx -19
addx 1
addx 16
addx -11
noop
noop
addx 21
addx -15
noop
noop
addx -3
addx 9
addx 1
addx -3
addx 8
addx 1
addx 5
noop
noop
noop
noop
noop
addx -36
noop
addx 1
addx 7
noop
noop
noop
addx 2
addx 6
noop
noop
noop
noop
noop
addx 1
noop
noop
addx 7
addx 1
noop
addx -13
addx 13
addx 7
noop
addx 1
addx -33
noop
noop
noop
addx 2
noop
noop
noop
addx 8
noop
addx -1
addx 2
addx 1
noop
addx 17
addx -9
addx 1
addx 1
addx -3
addx 11
noop
noop
addx 1
noop
addx 1
noop
noop
addx -13
addx -19
addx 1
addx 3
addx 26
addx -30
addx 12
addx -1
addx 3
addx 1
noop
noop
noop
addx -9
addx 18
addx 1
addx 2
noop
noop
addx 9
noop
noop
noop
addx -1
addx 2
addx -37
addx 1
addx 3
noop
addx 15
addx -21
addx 22
addx -6
addx 1
noop
addx 2
addx 1
noop
addx -10
noop
noop
addx 20
addx 1
addx 2
addx 2
addx -6
addx -11
noop
noop
noop
`

const picture = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....
`

func TestPart1_Example(t *testing.T) {
	got, err := day10.Part1(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 13140, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := day10.Part2(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, picture, got)
}

func TestPart2_ShortProgram(t *testing.T) {
	got, err := day10.Part2(strings.NewReader("noop\naddx 3\naddx -5\n"))
	require.NoError(t, err)
	assert.Equal(t, "#####", got)
}

func TestPart1_InvalidOpcode(t *testing.T) {
	_, err := day10.Part1(strings.NewReader("noop\njmp 4\n"))
	assert.ErrorContains(t, err, `line 2: invalid opcode "jmp 4"`)
}

func TestPart1_InvalidParameter(t *testing.T) {
	_, err := day10.Part1(strings.NewReader("addx five\n"))
	assert.ErrorContains(t, err, "invalid addx parameter")
}
