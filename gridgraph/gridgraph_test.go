// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/internal/mazetest"
)

func TestBuild_NilGrid(t *testing.T) {
	g, err := gridgraph.Build(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, gridgraph.ErrGridNil)
}

func TestBuild_Ring(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)

	assert.True(t, g.Sealed())
	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.Equal(t, 0, g.Start())
	assert.Equal(t, 7, g.Goal())

	// Insertion order: entries added while probing an earlier node come first.
	want := map[int][]int{
		0: {3, 1},
		1: {0, 2},
		2: {1, 4},
		3: {0, 5},
		4: {2, 7},
		5: {3, 6},
		6: {5, 7},
		7: {4, 6},
	}
	assert.Equal(t, want, g.AdjacencyList())

	n, err := g.Node(4)
	require.NoError(t, err)
	assert.Equal(t, core.Position{Row: 1, Col: 2}, n.Pos)
	_, isNode := g.NodeAt(core.Position{Row: 1, Col: 1})
	assert.False(t, isNode, "walls are never nodes")
}

func TestBuild_Pair(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Pair...)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, map[int][]int{0: {1}, 1: {0}}, g.AdjacencyList())
}

func TestBuild_PaddingBecomesOpen(t *testing.T) {
	// Row 1 is padded to "*   ": three open cells joined to each other and to B.
	_, g := mazetest.Build(t, "A**B", "*")
	assert.Equal(t, 5, g.NodeCount())
	pad, ok := g.NodeAt(core.Position{Row: 1, Col: 3})
	require.True(t, ok)
	assert.True(t, g.HasEdge(g.Goal(), pad))
}

func TestBuild_Symmetric(t *testing.T) {
	fixtures := [][]string{mazetest.Ring, mazetest.Comb, mazetest.Pair, mazetest.Split, {"A", "", "B"}}
	for _, lines := range fixtures {
		_, g := mazetest.Build(t, lines...)
		adj := g.AdjacencyList()
		for a, nbs := range adj {
			seen := map[int]bool{}
			for _, b := range nbs {
				assert.NotEqual(t, a, b, "self-loop at %d", a)
				assert.False(t, seen[b], "duplicate edge %d-%d", a, b)
				seen[b] = true
				assert.Contains(t, adj[b], a, "edge %d->%d not mirrored", a, b)
			}
		}
	}
}

// TestBuild_EdgesMatchGrid checks the edge set equals the 4-neighbour relation
// over non-wall cells.
func TestBuild_EdgesMatchGrid(t *testing.T) {
	grid, g := mazetest.Build(t, mazetest.Comb...)

	halfEdges := 0
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid.IsWall(r, c) {
				continue
			}
			a, ok := g.NodeAt(core.Position{Row: r, Col: c})
			require.True(t, ok)
			for _, d := range gridgraph.NeighborOffsets() {
				nr, nc := r+d[0], c+d[1]
				b, isNode := g.NodeAt(core.Position{Row: nr, Col: nc})
				open := grid.InBounds(nr, nc) && !grid.IsWall(nr, nc)
				assert.Equal(t, open, isNode)
				if open {
					assert.True(t, g.HasEdge(a, b))
					halfEdges++
				}
			}
		}
	}
	assert.Equal(t, halfEdges/2, g.EdgeCount())
	assert.Equal(t, 35, g.EdgeCount())
}

func TestBuild_IDsAreRowMajor(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Comb...)
	assert.Equal(t, 36, g.NodeCount())

	prev := core.Position{Row: -1, Col: -1}
	for _, n := range g.Nodes() {
		after := n.Pos.Row > prev.Row || (n.Pos.Row == prev.Row && n.Pos.Col > prev.Col)
		assert.True(t, after, "node %d at %s follows %s", n.ID, n.Pos, prev)
		prev = n.Pos
	}
}
