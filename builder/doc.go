// SPDX-License-Identifier: MIT

// Package builder generates text mazes that maze.Parse accepts.
//
// A rows×cols maze is drawn on a (2*rows+1)×(2*cols+1) canvas: logical
// cells sit at odd coordinates, the border is solid wall, and the start 'A'
// and goal 'B' occupy the top-left and bottom-right cells.
//
// Generators:
//
//   - Kruskal(rows, cols, opts...): randomized Kruskal over a union-find.
//   - Backtracker(rows, cols, opts...): randomized depth-first carving.
//   - Generate(alg, ...): dispatch by Algorithm; ParseAlgorithm maps names.
//
// Without WithLoops the output is a perfect maze: every cell is reachable
// and the maze graph is a tree, so dfs.FindCycle reports no loop. WithLoops(k)
// opens k more walls, each adding exactly one cycle.
//
// Determinism: the same seed, dimensions and options always yield the same
// lines. The default seed is 1.
package builder
