// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
)

// buildLine creates a sealed 1×n corridor graph: 0-1-2-...-(n-1).
// Node 0 carries the start marker and node n-1 the goal marker.
func buildLine(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for c := 0; c < n; c++ {
		marker := byte(' ')
		switch c {
		case 0:
			marker = core.MarkerStart
		case n - 1:
			marker = core.MarkerGoal
		}
		_, err := g.AddNode(core.Position{Row: 0, Col: c}, marker)
		require.NoError(t, err)
	}
	for c := 1; c < n; c++ {
		_, err := g.AddEdge(c-1, c)
		require.NoError(t, err)
	}
	g.Seal()

	return g
}

func TestAddNode_SequentialIDs(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		id, err := g.AddNode(core.Position{Row: i / 2, Col: i % 2}, ' ')
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.IDs())
	assert.Equal(t, 5, g.NodeCount())
}

func TestAddNode_DuplicatePosition(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(core.Position{Row: 1, Col: 1}, ' ')
	require.NoError(t, err)

	id, err := g.AddNode(core.Position{Row: 1, Col: 1}, 'A')
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
	assert.Equal(t, core.NoNode, id)
	assert.Equal(t, core.NoNode, g.Start(), "rejected node must not become start")
}

func TestAddNode_StartGoalByMarker(t *testing.T) {
	g := buildLine(t, 4)
	assert.Equal(t, 0, g.Start())
	assert.Equal(t, 3, g.Goal())

	empty := core.NewGraph()
	assert.Equal(t, core.NoNode, empty.Start())
	assert.Equal(t, core.NoNode, empty.Goal())
}

func TestAddEdge_Guards(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Position{Row: 0, Col: 0}, ' ')
	b, _ := g.AddNode(core.Position{Row: 0, Col: 1}, ' ')

	_, err := g.AddEdge(a, a)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(a, 42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	added, err := g.AddEdge(a, b)
	require.NoError(t, err)
	assert.True(t, added)

	// Probing the same pair again from either end is a no-op.
	added, err = g.AddEdge(b, a)
	require.NoError(t, err)
	assert.False(t, added)
	added, err = g.AddEdge(a, b)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1, g.EdgeCount())
	nb, _ := g.Neighbors(a)
	assert.Equal(t, []int{b}, nb)
	nb, _ = g.Neighbors(b)
	assert.Equal(t, []int{a}, nb)
}

func TestSeal_RejectsMutation(t *testing.T) {
	g := buildLine(t, 3)
	assert.True(t, g.Sealed())

	_, err := g.AddNode(core.Position{Row: 5, Col: 5}, ' ')
	assert.ErrorIs(t, err, core.ErrSealed)

	_, err = g.AddEdge(0, 2)
	assert.ErrorIs(t, err, core.ErrSealed)
	assert.False(t, g.HasEdge(0, 2))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildLine(t, 3)
	nb, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nb)

	nb[0] = 99
	again, _ := g.Neighbors(1)
	assert.Equal(t, []int{0, 2}, again, "caller mutation must not leak into the graph")

	_, err = g.Neighbors(7)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEdges_CanonicalDiscoveryOrder(t *testing.T) {
	g := buildLine(t, 4)
	assert.Equal(t, []core.EdgeKey{{Lo: 0, Hi: 1}, {Lo: 1, Hi: 2}, {Lo: 2, Hi: 3}}, g.Edges())
	assert.Equal(t, len(g.Edges()), g.EdgeCount())

	sum := 0
	for _, adj := range g.AdjacencyList() {
		sum += len(adj)
	}
	assert.Equal(t, 2*g.EdgeCount(), sum)
}

func TestNode_SamePosition(t *testing.T) {
	a := core.Node{ID: 1, Pos: core.Position{Row: 2, Col: 3}, Marker: ' '}
	b := core.Node{ID: 9, Pos: core.Position{Row: 2, Col: 3}, Marker: 'A'}
	c := core.Node{ID: 1, Pos: core.Position{Row: 3, Col: 2}, Marker: ' '}

	assert.True(t, a.SamePosition(b))
	assert.False(t, a.SamePosition(c))
}

func TestPosition_Manhattan(t *testing.T) {
	p := core.Position{Row: 0, Col: 0}
	assert.Equal(t, 0, p.Manhattan(p))
	assert.Equal(t, 7, p.Manhattan(core.Position{Row: 3, Col: -4}))
	assert.Equal(t, 7, core.Position{Row: 3, Col: -4}.Manhattan(p))
}

func TestNodeAt(t *testing.T) {
	g := buildLine(t, 3)
	id, ok := g.NodeAt(core.Position{Row: 0, Col: 2})
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok = g.NodeAt(core.Position{Row: 1, Col: 0})
	assert.False(t, ok)
}

func TestPath(t *testing.T) {
	var empty core.Path
	assert.False(t, empty.Found())
	assert.Equal(t, -1, empty.Steps())

	p := core.Path{4, 5, 6}
	assert.True(t, p.Found())
	assert.Equal(t, 2, p.Steps())
}

func TestNewEdgeKey(t *testing.T) {
	assert.Equal(t, core.EdgeKey{Lo: 2, Hi: 5}, core.NewEdgeKey(5, 2))
	assert.Equal(t, core.NewEdgeKey(2, 5), core.NewEdgeKey(5, 2))
}
