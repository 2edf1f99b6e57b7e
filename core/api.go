// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters over a Graph.
// Policy:
//   - No algorithms here.
//   - Every slice or map handed out is a fresh copy; callers may mutate it.

package core

import (
	"fmt"
	"strings"
)

// Node returns a copy of the node with the given ID.
// Errors: ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *n, nil
}

// HasNode reports whether id names a node of g.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeAt returns the ID of the node occupying pos, if any.
// Walls and out-of-grid positions report false.
func (g *Graph) NodeAt(pos Position) (int, bool) {
	id, ok := g.byPos[pos]

	return id, ok
}

// Neighbors returns the neighbour IDs of id in insertion order.
//
// For grid-built graphs that order is the build-time probe order:
// up, down, left, right.
//
// Errors: ErrNodeNotFound.
// Complexity: O(deg(id)) for the copy.
func (g *Graph) Neighbors(id int) ([]int, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]int, len(adj))
	copy(out, adj)

	return out, nil
}

// Degree returns the number of neighbours of id, or 0 for unknown IDs.
func (g *Graph) Degree(id int) int {
	return len(g.adjacency[id])
}

// HasEdge reports whether the undirected edge {a, b} exists.
func (g *Graph) HasEdge(a, b int) bool {
	return contains(g.adjacency[a], b)
}

// IDs returns all node IDs in creation order.
// Complexity: O(V).
func (g *Graph) IDs() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// Nodes returns copies of all nodes in creation order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns |E|, the number of undirected edges.
// It always equals the sum of adjacency-list lengths divided by two.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Start returns the ID of the start node, or NoNode.
func (g *Graph) Start() int {
	return g.start
}

// Goal returns the ID of the goal node, or NoNode.
func (g *Graph) Goal() int {
	return g.goal
}

// AdjacencyList returns a deep copy of the adjacency mapping.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.adjacency))
	for id, adj := range g.adjacency {
		cp := make([]int, len(adj))
		copy(cp, adj)
		out[id] = cp
	}

	return out
}

// Edges returns every undirected edge once, as canonical keys, in discovery
// order: nodes in creation order, each adjacency list in insertion order.
// Complexity: O(V + E).
func (g *Graph) Edges() []EdgeKey {
	seen := make(map[EdgeKey]struct{}, g.edges)
	out := make([]EdgeKey, 0, g.edges)
	for _, id := range g.order {
		for _, nb := range g.adjacency[id] {
			k := NewEdgeKey(id, nb)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}

// String renders a short multi-line summary: counts, then one line per node.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph with %d nodes and %d edges\n", g.NodeCount(), g.EdgeCount())
	for _, id := range g.order {
		n := g.nodes[id]
		fmt.Fprintf(&sb, "node %d %s %q -> %v\n", id, n.Pos, n.Marker, g.adjacency[id])
	}

	return sb.String()
}
