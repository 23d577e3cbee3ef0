package day07_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/days/day07"
)

const example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestPart1_Example(t *testing.T) {
	got, err := day07.Part1(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 95437, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := day07.Part2(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, 24933642, got)
}

func TestPart1_CdAboveRoot(t *testing.T) {
	_, err := day07.Part1(strings.NewReader("$ cd /\n$ cd ..\n"))
	assert.ErrorContains(t, err, "line 2: cd above root")
}

func TestPart1_BadListing(t *testing.T) {
	_, err := day07.Part1(strings.NewReader("$ cd /\n$ ls\nb.txt\n"))
	assert.ErrorContains(t, err, "not a listing tuple")
}

func TestPart2_NothingToFree(t *testing.T) {
	got, err := day07.Part2(strings.NewReader("$ cd /\n$ ls\n100 a.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
