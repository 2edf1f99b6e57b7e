// SPDX-License-Identifier: MIT

package bestfirst_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/bestfirst"
	"github.com/katalvlaran/labyrinth/internal/mazetest"
)

// BenchmarkGreedy measures corner-to-corner greedy traversal on an open 200×200 maze.
func BenchmarkGreedy(b *testing.B) {
	_, g := mazetest.Build(b, mazetest.Open(200, 200)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.Greedy(g, g.Start(), g.Goal())
	}
}
