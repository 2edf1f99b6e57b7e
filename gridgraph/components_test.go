// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/internal/mazetest"
)

// TestConnectedComponents_Comb expects the main region and the sealed pocket.
func TestConnectedComponents_Comb(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Comb...)

	comps, err := gridgraph.ConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	assert.Len(t, comps[0], 33)
	assert.Equal(t, 0, comps[0][0], "first component starts at the smallest ID")
	assert.ElementsMatch(t, mazetest.CombPocket, comps[1])

	total := 0
	for _, c := range comps {
		total += len(c)
	}
	assert.Equal(t, g.NodeCount(), total)
}

func TestConnectedComponents_Split(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Split...)

	comps, err := gridgraph.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Len(t, comps, 2)

	idx := gridgraph.ComponentIndex(comps)
	assert.NotEqual(t, idx[g.Start()], idx[g.Goal()])
}

func TestReachable(t *testing.T) {
	_, ring := mazetest.Build(t, mazetest.Ring...)
	ok, err := gridgraph.Reachable(ring, ring.Start(), ring.Goal())
	require.NoError(t, err)
	assert.True(t, ok)

	_, comb := mazetest.Build(t, mazetest.Comb...)
	ok, err = gridgraph.Reachable(comb, comb.Start(), mazetest.CombPocket[0])
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gridgraph.Reachable(comb, comb.Start(), 999)
	require.NoError(t, err)
	assert.False(t, ok, "unknown IDs are never reachable")

	_, err = gridgraph.Reachable(nil, 0, 1)
	assert.ErrorIs(t, err, gridgraph.ErrGraphNil)
}
