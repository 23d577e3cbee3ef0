// Package grid provides a fixed-width, flat-array-backed 2D container
// with row-major addressing and edge-aware neighbor enumeration.
//
// What:
//
//   - Grid[T] stores width*height cells of any type T in one contiguous
//     slice; height is always derived as len(cells)/width, never stored.
//   - Constructors from pre-built rows (FromRows), from text lines with a
//     per-rune converter (ParseLines), or by dimensions (New, NewFilled).
//   - O(1) bounds-checked access (At, Set) and linear addressing helpers
//     (Index, CoordAt).
//   - Lazy, restartable iterators: Neighbors yields up to 4 or 8 in-bounds
//     coordinates in a fixed order, All walks every cell row by row.
//
// Why:
//
//   - Heightmaps, tree grids, mazes: dense 2D puzzle state with cheap
//     neighbor queries.
//   - A single flat slice keeps the width/height invariant in one place and
//     avoids the ragged-row bugs of [][]T.
//
// Complexity:
//
//   - At/Set/InBounds/Index/CoordAt: O(1).
//   - FromRows/ParseLines/New/NewFilled: O(W×H) time and memory.
//   - Neighbors: O(d) per traversal (d = 4 or 8), zero allocations.
//   - All: O(W×H) per traversal.
//
// Errors:
//
//   - ErrNoRows: constructor input has no rows or an empty first row.
//   - ErrRaggedRows: a row's length differs from the first row's.
//   - ErrDimensions: width ≤ 0 or height < 0 passed to New/NewFilled.
//
// Out-of-range coordinates passed to At, Set or Neighbors are caller bugs
// and panic with the offending coordinate; use InBounds to probe first.
package grid
