// SPDX-License-Identifier: MIT

// Package core provides the maze Graph: an undirected, unweighted graph whose
// vertices are the traversable cells of a grid and whose edges join
// 4-directionally adjacent cells.
//
// The Graph G = (V,E) is organised around three ideas:
//
//   - Integer identity: every Node gets a sequential ID (0,1,2,…) in the
//     order it was added. For grids built by gridgraph this is row-major
//     scan order, so ID order and creation order coincide.
//   - Position equality: two Nodes denote the same cell iff their Position
//     (Row, Col) matches; ID and Marker do not take part (SamePosition).
//   - Ordered adjacency: adjacency[id] keeps neighbour IDs in insertion
//     order. Traversals consume that order verbatim, so for grid graphs it is
//     the probe order up, down, left, right.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.AddNode(pos, marker)   // construction phase
//	g.AddEdge(a, b)          // guarded: no loops, no duplicates, mirrored
//	g.Seal()                 // from here on the graph is read-only
//
// After Seal every mutator fails with ErrSealed and the Graph may be shared
// freely between readers: all getters return copies, never internal slices.
//
// Errors:
//
//	ErrNodeNotFound   - an ID does not name a node of this graph.
//	ErrDuplicateNode  - a second node was added at an occupied Position.
//	ErrLoopNotAllowed - AddEdge(a, a).
//	ErrSealed         - mutation after Seal.
package core
