// SPDX-License-Identifier: MIT

// Package bestfirst implements greedy best-first traversal over a maze
// core.Graph.
//
// The frontier is a min-heap (container/heap) keyed by the Manhattan
// distance from each node to the goal, with ties broken by push order.
// A node is pushed at most once and its priority never changes; the walk
// records nodes as they are popped and stops right after recording the goal.
//
// This is a traversal heuristic, not an optimal search: there is no path
// cost bookkeeping and no re-expansion, so on mazes with dead ends it can
// wander far from the shortest route. Use bfs.ShortestPath for paths.
//
// Complexity: O((V+E) log V) time, O(V) memory.
package bestfirst
