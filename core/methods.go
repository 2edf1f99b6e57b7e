// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: construction-phase mutators (AddNode, AddEdge, Seal).
//
// Determinism:
//   - IDs are handed out sequentially in call order.
//   - Adjacency lists keep insertion order; AddEdge appends to both ends.

package core

import "fmt"

// AddNode registers a new node at pos and returns its ID.
//
// Implementation:
//   - Stage 1: reject when sealed (ErrSealed) or pos is occupied (ErrDuplicateNode).
//   - Stage 2: assign ID = number of nodes so far, store node, empty adjacency bucket.
//   - Stage 3: remember the node as start/goal when its marker says so.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
//
// Notes:
//   - When several nodes carry the start (or goal) marker the last one wins;
//     the maze parser rejects such grids long before they get here.
func (g *Graph) AddNode(pos Position, marker byte) (int, error) {
	if g.sealed {
		return NoNode, ErrSealed
	}
	if id, ok := g.byPos[pos]; ok {
		return NoNode, fmt.Errorf("%w: %s held by node %d", ErrDuplicateNode, pos, id)
	}

	id := len(g.order)
	g.nodes[id] = &Node{ID: id, Pos: pos, Marker: marker}
	g.order = append(g.order, id)
	g.adjacency[id] = make([]int, 0, 4) // a grid cell has at most 4 neighbours
	g.byPos[pos] = id

	switch marker {
	case MarkerStart:
		g.start = id
	case MarkerGoal:
		g.goal = id
	}

	return id, nil
}

// AddEdge inserts the undirected edge {a, b}.
//
// Implementation:
//   - Stage 1: validate state and endpoints (ErrSealed, ErrNodeNotFound, ErrLoopNotAllowed).
//   - Stage 2: append b to adjacency(a) unless present, then a to adjacency(b) unless present.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing edge (in either direction) changes nothing,
//     so a builder may probe the same pair from both ends.
//   - Returns true only when a new edge was created.
//
// Complexity:
//   - Time O(deg(a) + deg(b)) for the membership checks; O(1) on grids (deg ≤ 4).
func (g *Graph) AddEdge(a, b int) (bool, error) {
	if g.sealed {
		return false, ErrSealed
	}
	if _, ok := g.nodes[a]; !ok {
		return false, fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return false, fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	if a == b {
		return false, fmt.Errorf("%w: %d", ErrLoopNotAllowed, a)
	}

	added := false
	if !contains(g.adjacency[a], b) {
		g.adjacency[a] = append(g.adjacency[a], b)
		added = true
	}
	if !contains(g.adjacency[b], a) {
		g.adjacency[b] = append(g.adjacency[b], a)
		added = true
	}
	if added {
		g.edges++
	}

	return added, nil
}

// Seal ends the construction phase. It is idempotent.
func (g *Graph) Seal() {
	g.sealed = true
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	return g.sealed
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}
