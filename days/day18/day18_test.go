package day18_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/days/day18"
)

const example = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`

func TestPart1_Example(t *testing.T) {
	got, err := day18.Part1(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 64, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := day18.Part2(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 58, got)
}

func TestPart1_TwoTouchingCubes(t *testing.T) {
	got, err := day18.Part1(strings.NewReader("1,1,1\n2,1,1\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestPart2_HollowShell(t *testing.T) {
	// A 3x3x3 cube with its center removed: the pocket's 6 faces count in
	// part 1 but not in part 2.
	var b strings.Builder
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				fmt.Fprintf(&b, "%d,%d,%d\n", x, y, z)
			}
		}
	}

	outer, err := day18.Part2(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 54, outer)

	all, err := day18.Part1(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 60, all)
}

func TestPart1_ShortLine(t *testing.T) {
	_, err := day18.Part1(strings.NewReader("1,2\n"))
	assert.ErrorContains(t, err, "want three coordinates, got 2")
}

func TestPart1_Empty(t *testing.T) {
	_, err := day18.Part1(strings.NewReader(""))
	assert.ErrorContains(t, err, "no voxels scanned")
}
