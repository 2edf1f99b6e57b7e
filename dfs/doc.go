// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal and loop detection on a maze
// core.Graph.
//
// What:
//
//   - Preorder(g, start, opts...): record a node on first arrival.
//   - Inorder(g, start, opts...): explore the first ⌊deg/2⌋ adjacency
//     entries, record the node, then explore the rest. This generalises
//     binary inorder to arbitrary degree; its only contract is determinism.
//   - Postorder(g, start, opts...): record a node after its subtree.
//   - Walk(g, start, order, opts...): the shared walker behind all three.
//   - FindCycle(g): first loop of the maze using White/Gray/Black colouring
//     with parent-edge skipping, or an empty Path for a perfect maze.
//
// Every call allocates a fresh visited set, so calls never share state and
// each reachable node appears exactly once in the returned sequence.
//
// Complexity:
//
//   - Walk:      Time O(V+E), Memory O(V) (recursion stack + visited set)
//   - FindCycle: Time O(V+E), Memory O(V)
//
// Options:
//
//   - WithOnVisit(fn)         hook when a node is recorded; error aborts.
//   - WithMaxDepth(limit)     stops recursion beyond given depth (>=0).
//   - WithFilterNeighbor(fn)  return false to skip a neighbour.
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrStartNotFound  start ID not in graph
//   - hook errors       propagated from OnVisit, with the partial sequence
package dfs
