// SPDX-License-Identifier: MIT

// Package labyrinth turns text mazes into graphs and answers questions
// about them.
//
// A maze is a rectangle of '*' walls, ' ' corridors, one 'A' start and one
// 'B' goal. Every non-wall cell becomes a node, numbered in row-major order
// over open cells only, and 4-neighbour adjacency becomes undirected edges.
//
// Packages:
//
//	core/       Graph, Path, EdgeKey and Position primitives
//	maze/       parsing maze text into a validated Grid
//	gridgraph/  Grid → Graph, connected components, cheapest wall breach
//	bfs/        shortest path and level-order traversal
//	dfs/        preorder, inorder, postorder walks and loop detection
//	bestfirst/  greedy best-first search guided by Manhattan distance
//	traversal/  one Strategy enum dispatching to all five traversals
//	matrix/     adjacency and incidence matrices with stable row order
//	builder/    seeded maze generators (Kruskal, recursive backtracker)
//
// The labyrinth command in cmd/labyrinth wires these together behind a
// cobra CLI with YAML configuration, slog logging and lipgloss output.
//
// Quick start:
//
//	grid, _ := maze.Parse([]string{"A  ", " * ", "  B"})
//	g, _ := gridgraph.Build(grid)
//	path, _ := bfs.ShortestPath(g, g.Start(), g.Goal())
//	fmt.Println(path) // [0 3 5 6 7]
package labyrinth
