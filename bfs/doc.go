// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a maze core.Graph:
// the shortest start→goal path and the level-order traversal.
//
// What
//
//   - ShortestPath(g, start, goal): minimum-edge path, or an empty Path when
//     goal is unreachable. Predecessors are fixed when a node is first
//     enqueued, never at dequeue time.
//   - BFS(g, start, opts...): full traversal returning a Result with
//   - Order:  nodes in dequeue order
//   - Depth:  node → distance (edges) from start
//   - Parent: node → predecessor in the BFS tree
//   - Order(g, start): just the visit sequence.
//
// Determinism
//
//	Neighbours are enqueued in adjacency order (up, down, left, right for
//	grid-built graphs), so Order and every reconstructed path are reproducible.
//
// State
//
//	Each call allocates its own queue, visited set and result; nothing is
//	kept between calls, so independent calls may share one sealed Graph.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithOnEnqueue(fn): hook when a node is enqueued.
//   - WithOnVisit(fn):   hook when a node is recorded; an error aborts BFS.
//   - WithMaxDepth(d):   do not enqueue nodes deeper than d (>0); 0 means no limit.
//
// Errors
//
//   - ErrGraphNil, ErrStartNotFound, ErrGoalNotFound for invalid input.
//   - ErrOptionViolation for a negative MaxDepth.
//   - ErrNotReached from Result.PathTo.
//   - Wrapped hook errors from OnVisit.
package bfs
