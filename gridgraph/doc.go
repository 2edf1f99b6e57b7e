// SPDX-License-Identifier: MIT

// Package gridgraph builds the maze graph from a parsed grid and answers
// grid-level questions about it.
//
// What:
//
//   - Build: two-pass construction of a sealed *core.Graph. Node IDs follow
//     row-major order of non-wall cells; adjacency follows the probe order
//     up, down, left, right.
//   - ConnectedComponents / Reachable: connected regions of open cells.
//   - MinBreach: fewest walls to knock down so start reaches goal (0-1 BFS).
//
// Why:
//
//   - Every algorithm package (bfs, dfs, bestfirst, matrix) consumes the
//     graph produced here and relies on its adjacency order for determinism.
//   - Components and breach answer the follow-up question when ShortestPath
//     returns an empty path: which regions are cut off, and how cheaply.
//
// Complexity:
//
//   - Build:               O(R×C) time and memory.
//   - ConnectedComponents: O(V+E) time, O(V) memory.
//   - MinBreach:           O(R×C) time and memory.
//
// Errors:
//
//   - ErrGridNil:  nil grid.
//   - ErrGraphNil: nil graph.
//   - ErrNoPath:   MinBreach found no cell path (cannot happen for a parsed
//     grid, whose start and goal are both in bounds).
package gridgraph
