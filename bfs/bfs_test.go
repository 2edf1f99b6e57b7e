// SPDX-License-Identifier: MIT

package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/internal/mazetest"
)

// TestShortestPath covers the grid scenarios with known answers.
func TestShortestPath(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  core.Path
	}{
		{"ring", mazetest.Ring, core.Path{0, 3, 5, 6, 7}},
		{"pair", mazetest.Pair, core.Path{0, 1}},
		{"comb", mazetest.Comb, core.Path{0, 1, 2, 3, 4, 5, 6, 7, 12, 19, 18, 23}},
		{"split", mazetest.Split, core.Path{}},
		{"multibyte", []string{"é*A", "**B"}, core.Path{1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, g := mazetest.Build(t, tc.lines...)
			got, err := bfs.ShortestPath(g, g.Start(), g.Goal())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestShortestPath_Valid checks that every consecutive pair is an edge
// and that the length matches the BFS depth of the goal.
func TestShortestPath_Valid(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Open(7, 9)...)
	path, err := bfs.ShortestPath(g, g.Start(), g.Goal())
	require.NoError(t, err)
	require.True(t, path.Found())

	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.Goal(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, g.HasEdge(path[i-1], path[i]), "step %d: %d-%d", i, path[i-1], path[i])
	}

	res, err := bfs.BFS(g, g.Start())
	require.NoError(t, err)
	assert.Equal(t, res.Depth[g.Goal()], path.Steps())
	assert.Equal(t, 6+8, path.Steps(), "Manhattan distance on an open grid")
}

func TestShortestPath_SameNode(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)
	path, err := bfs.ShortestPath(g, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, core.Path{4}, path)
}

func TestShortestPath_Errors(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)

	_, err := bfs.ShortestPath(nil, 0, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.ShortestPath(g, 42, 0)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.ShortestPath(g, 0, -3)
	assert.ErrorIs(t, err, bfs.ErrGoalNotFound)
}

// TestBFS_Order verifies the level-order sequence and depths on Ring.
func TestBFS_Order(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)
	res, err := bfs.BFS(g, g.Start())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3, 1, 5, 2, 6, 4, 7}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2, 5: 2, 4: 3, 6: 3, 7: 4}, res.Depth)
	_, hasParent := res.Parent[g.Start()]
	assert.False(t, hasParent, "start has no parent")

	p, err := res.PathTo(7)
	require.NoError(t, err)
	assert.Equal(t, core.Path{0, 3, 5, 6, 7}, p)
}

func TestBFS_Comb(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Comb...)
	order, err := bfs.Order(g, g.Start())
	require.NoError(t, err)

	want := []int{0, 10, 1, 14, 2, 21, 3, 25, 4, 26, 11, 5, 27, 17, 6, 22, 16, 7, 15, 12,
		8, 19, 9, 18, 13, 23, 20, 30, 24, 29, 33, 28, 32}
	assert.Equal(t, want, order)
	for _, id := range mazetest.CombPocket {
		assert.NotContains(t, order, id)
	}
}

func TestBFS_PathToUnreached(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Split...)
	res, err := bfs.BFS(g, g.Start())
	require.NoError(t, err)

	_, err = res.PathTo(g.Goal())
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

// TestBFS_MaxDepth limits exploration to two levels.
func TestBFS_MaxDepth(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)
	res, err := bfs.BFS(g, g.Start(), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 5, 2}, res.Order)

	_, err = bfs.BFS(g, g.Start(), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Hooks checks enqueue order and abort on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)

	var enq []int
	stop := errors.New("stop")
	res, err := bfs.BFS(g, g.Start(),
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id, _ int) error {
			if id == 5 {
				return stop
			}
			return nil
		}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 3, 1, 5}, res.Order)
	assert.Equal(t, []int{0, 3, 1, 5, 2}, enq)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, g := mazetest.Build(t, mazetest.Pair...)
	_, err = bfs.BFS(g, 9)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.Order(g, 9)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}
