// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// ExampleKruskal generates a 5×10 maze and confirms it has no loop.
func ExampleKruskal() {
	lines, err := builder.Kruskal(5, 10, builder.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, g, _ := gridgraph.FromLines(lines...)
	cycle, _ := dfs.FindCycle(g)

	fmt.Printf("%d lines of %d, %d cells, loop: %v\n", len(lines), len(lines[0]), g.NodeCount(), cycle.Found())
	// Output:
	// 11 lines of 21, 99 cells, loop: false
}
