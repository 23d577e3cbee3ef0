// Package advent2022 is a playground of Advent of Code 2022 solutions —
// reusable grid and search primitives underneath, one small package per
// puzzle on top.
//
// 🚀 What is advent2022?
//
//	A collection of seventeen daily solvers built on a shared core:
//		• grid/     — generic flat-backed 2D fields with neighbor iteration
//		• dijkstra/ — uniform-cost shortest paths over grids
//		• scan/     — puzzle input parsing: lines, items, ints, blocks
//		• xmath/    — the little integer helpers every December needs
//		• days/     — dayNN packages, each exposing Part1 and Part2
//		• cmd/      — the advent binary that runs a day against its input
//
// ✨ Why this layout?
//
//   - Puzzle code stays small – parsing and grid mechanics live in the core
//   - Every solver is a library – io.Reader in, typed answer out
//   - Loud failures – malformed input names its line instead of panicking
//
// Quick ASCII example:
//
//	    Sabqponm
//	    abcryxxl      the day 12 heightmap: climb from S to E,
//	    accszExk      one elevation step at a time
//	    acctuvwj
//	    abdefghi
//
// Run a day with:
//
//	go run ./cmd/advent -day 12 -input input/day12.txt
package advent2022
