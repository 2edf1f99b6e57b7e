// SPDX-License-Identifier: MIT

// Package mazetest holds maze fixtures shared by the package tests.
package mazetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/maze"
)

// Ring is the 3×3 grid with a single wall in the centre.
//
//	A··
//	·*·
//	··B
//
// Row-major IDs:
//
//	0 1 2
//	3 * 4
//	5 6 7
var Ring = []string{"A  ", " * ", "  B"}

// Pair is the smallest maze: start next to goal.
var Pair = []string{"AB"}

// Comb is a 6×10 maze with dead ends and a three-cell pocket (IDs 31, 34, 35)
// that cannot be reached from the start. Start is ID 0 at (0,0) and goal is
// ID 23 at (3,6); the shortest path has 11 steps.
var Comb = []string{
	"A         ",
	" *** ** * ",
	" *   *  * ",
	" * ***B** ",
	"   *   * *",
	"**** * *  ",
}

// CombPocket lists the node IDs of Comb that are unreachable from the start.
var CombPocket = []int{31, 34, 35}

// Split has start and goal in different components.
var Split = []string{
	"A * ",
	"  *B",
}

// Build parses lines and builds the sealed graph, failing t on error.
func Build(t testing.TB, lines ...string) (*maze.Grid, *core.Graph) {
	t.Helper()
	grid, err := maze.Parse(lines)
	require.NoError(t, err)
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)

	return grid, g
}

// Open returns an all-open rows×cols maze with start top-left and goal
// bottom-right. rows*cols must be at least 2.
func Open(rows, cols int) []string {
	lines := make([]string, rows)
	for r := range lines {
		row := make([]byte, cols)
		for c := range row {
			row[c] = maze.Open
		}
		lines[r] = string(row)
	}
	lines[0] = "A" + lines[0][1:]
	last := lines[rows-1]
	lines[rows-1] = last[:cols-1] + "B"

	return lines
}
