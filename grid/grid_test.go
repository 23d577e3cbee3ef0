// Package grid_test contains unit tests for Grid construction, access and
// mutation, including the structural-error contracts and the out-of-range
// panic contract.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/grid"
)

// ------------------------------------------------------------------------
// 1. Constructors: FromRows, ParseLines, New, NewFilled.
// ------------------------------------------------------------------------

// TestFromRows_BuildsAndReadsBack verifies width, derived height, and that
// every cell reads back exactly the source value.
func TestFromRows_BuildsAndReadsBack(t *testing.T) {
	rows := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Len())
	for y, row := range rows {
		for x, want := range row {
			assert.Equal(t, want, g.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestFromRows_CopiesInput ensures mutating the source rows after
// construction does not leak into the Grid.
func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{7, 8}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 7, g.At(0, 0), "grid must own a copy of the input")
}

// TestFromRows_EmptyInput verifies ErrNoRows for nil input, zero rows, and
// an empty first row.
func TestFromRows_EmptyInput(t *testing.T) {
	_, err := grid.FromRows[int](nil)
	assert.ErrorIs(t, err, grid.ErrNoRows)

	_, err = grid.FromRows([][]int{})
	assert.ErrorIs(t, err, grid.ErrNoRows)

	_, err = grid.FromRows([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrNoRows)
}

// TestFromRows_RaggedRows verifies the fail-fast contract: any row whose
// length differs from the first row's is rejected.
func TestFromRows_RaggedRows(t *testing.T) {
	_, err := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5},
	})
	assert.ErrorIs(t, err, grid.ErrRaggedRows)
	assert.ErrorContains(t, err, "row 1", "error should name the offending row")
}

// TestParseLines_Digits builds an int grid from digit lines.
func TestParseLines_Digits(t *testing.T) {
	g, err := grid.ParseLines([]string{"123", "456"}, func(r rune) int { return int(r - '0') })
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, 6, g.At(2, 1))
}

// TestParseLines_Ragged verifies the same fail-fast contract as FromRows.
func TestParseLines_Ragged(t *testing.T) {
	_, err := grid.ParseLines([]string{"abc", "ab"}, func(r rune) rune { return r })
	assert.ErrorIs(t, err, grid.ErrRaggedRows)

	_, err = grid.ParseLines(nil, func(r rune) rune { return r })
	assert.ErrorIs(t, err, grid.ErrNoRows)
}

// TestNew_ZeroValuesAndDimensions covers zero-value fill and the dimension
// validation cascade.
func TestNew_ZeroValuesAndDimensions(t *testing.T) {
	g, err := grid.New[string](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, "", g.At(1, 2))

	// Zero height is legal: an empty grid that can grow by AppendRow.
	empty, err := grid.New[int](4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Height())

	_, err = grid.New[int](0, 3)
	assert.ErrorIs(t, err, grid.ErrDimensions)
	_, err = grid.New[int](3, -1)
	assert.ErrorIs(t, err, grid.ErrDimensions)
}

// TestNewFilled_Fill verifies every cell holds the fill value.
func TestNewFilled_Fill(t *testing.T) {
	g, err := grid.NewFilled(3, 2, 7)
	require.NoError(t, err)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, 7, g.At(x, y))
		}
	}

	_, err = grid.NewFilled(-1, 2, 7)
	assert.ErrorIs(t, err, grid.ErrDimensions)
}

// ------------------------------------------------------------------------
// 2. Access and mutation: At, Set, Index, CoordAt, Row, AppendRow.
// ------------------------------------------------------------------------

// TestSetAt_RoundTrip writes then reads every cell.
func TestSetAt_RoundTrip(t *testing.T) {
	g, err := grid.New[int](4, 3)
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, g.Index(x, y))
		}
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, y*4+x, g.At(x, y))
		}
	}
}

// TestBounds_PanicOnOutOfRange verifies the loud-failure contract for At and
// Set beyond every edge.
func TestBounds_PanicOnOutOfRange(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { g.At(2, 0) }, "x == width")
	assert.Panics(t, func() { g.At(0, 2) }, "y == height")
	assert.Panics(t, func() { g.At(-1, 0) }, "negative x")
	assert.Panics(t, func() { g.Set(0, -1, 1) }, "negative y")
	assert.NotPanics(t, func() { g.Set(1, 1, 1) })
}

// TestIndexCoordAt_Inverse checks that CoordAt inverts Index for every cell.
func TestIndexCoordAt_Inverse(t *testing.T) {
	g, err := grid.New[int](5, 4)
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx := g.Index(x, y)
			assert.Equal(t, grid.Coord{X: x, Y: y}, g.CoordAt(idx))
		}
	}
}

// TestAppendRow_GrowsByOneZeroRow verifies the appended row holds zero
// values and existing cells are untouched.
func TestAppendRow_GrowsByOneZeroRow(t *testing.T) {
	g, err := grid.NewFilled(3, 1, 9)
	require.NoError(t, err)

	g.AppendRow()
	require.Equal(t, 2, g.Height())
	for x := 0; x < 3; x++ {
		assert.Equal(t, 9, g.At(x, 0))
		assert.Equal(t, 0, g.At(x, 1), "appended cells must be zero values")
	}

	// Grow an initially empty grid from height 0.
	empty, err := grid.New[int](2, 0)
	require.NoError(t, err)
	empty.AppendRow()
	assert.Equal(t, 1, empty.Height())
}

// TestRow_ViewAliasesStorage verifies Row returns a live view and panics out
// of range.
func TestRow_ViewAliasesStorage(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row := g.Row(1)
	require.Equal(t, []int{3, 4}, row)
	row[0] = 30
	assert.Equal(t, 30, g.At(0, 1), "writes through the view must be visible")

	assert.Panics(t, func() { g.Row(2) })
}

// TestInBounds_Edges probes the four corners and just-outside coordinates.
func TestInBounds_Edges(t *testing.T) {
	g, err := grid.New[int](3, 2)
	require.NoError(t, err)

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(2, 1))
	assert.False(t, g.InBounds(3, 1))
	assert.False(t, g.InBounds(2, 2))
	assert.False(t, g.InBounds(-1, 0))
	assert.False(t, g.InBounds(0, -1))
}

// TestCoordString covers the debug rendering used in panic and error text.
func TestCoordString(t *testing.T) {
	assert.Equal(t, "(3,-1)", grid.Coord{X: 3, Y: -1}.String())
}
