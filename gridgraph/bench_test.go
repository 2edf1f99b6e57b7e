// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/internal/mazetest"
	"github.com/katalvlaran/labyrinth/maze"
)

// BenchmarkBuild measures Build on an open 300×300 maze.
// Complexity: O(R×C)
func BenchmarkBuild(b *testing.B) {
	grid, err := maze.Parse(mazetest.Open(300, 300))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Build(grid)
	}
}

// BenchmarkMinBreach measures the 0-1 BFS on the same maze.
func BenchmarkMinBreach(b *testing.B) {
	grid, err := maze.Parse(mazetest.Open(300, 300))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.MinBreach(grid)
	}
}
