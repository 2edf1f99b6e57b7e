// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// neighborOffsets lists the probe order as (Δrow, Δcol): up, down, left, right.
// Adjacency lists inherit this order, and every traversal consumes it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NeighborOffsets returns the fixed probe order (up, down, left, right).
func NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// Build converts grid into an undirected graph in two row-major passes.
//
//  1. Every non-wall cell gets the next sequential ID; the Graph records the
//     Position → ID lookup and picks up start/goal from the cell marker.
//  2. Every non-wall cell probes up, down, left, right; each in-bounds
//     non-wall neighbour is joined with AddEdge, which ignores pairs that
//     already exist, so probing a pair from both ends yields one edge.
//
// The returned Graph is sealed. Its edge set equals the 4-neighbour relation
// of the grid restricted to non-wall cells.
//
// Complexity: O(R×C) time and memory.
func Build(grid *maze.Grid) (*core.Graph, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	g := core.NewGraph()

	// Pass 1: nodes.
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			m := grid.At(r, c)
			if m == maze.Wall {
				continue
			}
			if _, err := g.AddNode(core.Position{Row: r, Col: c}, m); err != nil {
				return nil, fmt.Errorf("gridgraph: add node %d,%d: %w", r, c, err)
			}
		}
	}

	// Pass 2: edges.
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			from, ok := g.NodeAt(core.Position{Row: r, Col: c})
			if !ok {
				continue // wall
			}
			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !grid.InBounds(nr, nc) || grid.IsWall(nr, nc) {
					continue
				}
				to, _ := g.NodeAt(core.Position{Row: nr, Col: nc})
				if _, err := g.AddEdge(from, to); err != nil {
					return nil, fmt.Errorf("gridgraph: add edge %d-%d: %w", from, to, err)
				}
			}
		}
	}

	g.Seal()

	return g, nil
}

// FromLines parses lines with the default alphabet and builds the graph.
// It is a convenience for tests and small programs.
func FromLines(lines ...string) (*maze.Grid, *core.Graph, error) {
	grid, err := maze.Parse(lines)
	if err != nil {
		return nil, nil, err
	}
	g, err := Build(grid)
	if err != nil {
		return nil, nil, err
	}

	return grid, g, nil
}
