// SPDX-License-Identifier: MIT

package bestfirst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bestfirst"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/internal/mazetest"
)

func TestGreedy_Errors(t *testing.T) {
	_, err := bestfirst.Greedy(nil, 0, 1)
	assert.ErrorIs(t, err, bestfirst.ErrGraphNil)

	_, g := mazetest.Build(t, mazetest.Pair...)
	_, err = bestfirst.Greedy(g, 5, 1)
	assert.ErrorIs(t, err, bestfirst.ErrStartNotFound)
	_, err = bestfirst.Greedy(g, 0, 5)
	assert.ErrorIs(t, err, bestfirst.ErrGoalNotFound)
}

func TestGreedy(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []int
	}{
		{"pair", mazetest.Pair, []int{0, 1}},
		{"ring", mazetest.Ring, []int{0, 3, 5, 6, 7}},
		// Dead ends pull the walk away from the 12-node shortest path.
		{"comb", mazetest.Comb, []int{0, 10, 14, 21, 25, 26, 27, 22, 15, 16, 17, 11, 4, 5, 6, 7,
			12, 19, 18, 23}},
		// Goal unreachable: every reachable node is popped.
		{"split", mazetest.Split, []int{0, 3, 4, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, g := mazetest.Build(t, tc.lines...)
			got, err := bestfirst.Greedy(g, g.Start(), g.Goal())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestGreedy_TieBreak walks the ring backwards where both neighbours of the
// goal-side corner score 3; the first pushed wins.
func TestGreedy_TieBreak(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)
	got, err := bestfirst.Greedy(g, g.Goal(), g.Start())
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4, 2, 1, 0}, got)
}

func TestGreedy_SameNode(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Comb...)
	got, err := bestfirst.Greedy(g, 12, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{12}, got)
}

// TestGreedy_NotShortest shows the sequence is longer than the BFS path.
func TestGreedy_NotShortest(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Comb...)
	seq, err := bestfirst.Greedy(g, g.Start(), g.Goal())
	require.NoError(t, err)
	path, err := bfs.ShortestPath(g, g.Start(), g.Goal())
	require.NoError(t, err)

	assert.Greater(t, len(seq), len(path))
	assert.Equal(t, g.Goal(), seq[len(seq)-1])
}

// TestGreedy_ZeroHeuristic degrades to FIFO order, which is BFS order.
func TestGreedy_ZeroHeuristic(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)
	got, err := bestfirst.Greedy(g, g.Start(), g.Goal(),
		bestfirst.WithHeuristic(func(_, _ core.Position) int { return 0 }))
	require.NoError(t, err)

	want, err := bfs.Order(g, g.Start())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGreedy_OnVisit(t *testing.T) {
	_, g := mazetest.Build(t, mazetest.Ring...)

	var scores []int
	_, err := bestfirst.Greedy(g, g.Start(), g.Goal(), bestfirst.WithOnVisit(func(_, score int) error {
		scores = append(scores, score)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, scores)

	stop := errors.New("stop")
	got, err := bestfirst.Greedy(g, g.Start(), g.Goal(), bestfirst.WithOnVisit(func(id, _ int) error {
		if id == 5 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 3, 5}, got)
}
