// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node ID.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates a node already occupies the given Position.
	ErrDuplicateNode = errors.New("core: node already exists at position")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSealed indicates a mutation was attempted after Seal.
	ErrSealed = errors.New("core: graph is sealed")
)

// Marker bytes recognised by the Graph when registering the distinguished
// start and goal nodes. They mirror the default maze alphabet.
const (
	MarkerStart byte = 'A'
	MarkerGoal  byte = 'B'
)

// NoNode is the sentinel ID returned when a distinguished node is absent.
const NoNode = -1

// Position is a (Row, Col) grid coordinate used as a structured map key.
type Position struct {
	Row int
	Col int
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Node is a traversable maze cell.
//
// ID is assigned by the Graph on insertion; Pos and Marker come from the grid.
type Node struct {
	// ID is the sequential identifier of this Node within its Graph.
	ID int

	// Pos is the grid cell this Node stands for.
	Pos Position

	// Marker is the grid character of the cell (open, start or goal).
	Marker byte
}

// SamePosition reports whether n and o occupy the same cell.
// IDs and markers are ignored: structural equality is position-based.
func (n Node) SamePosition(o Node) bool {
	return n.Pos == o.Pos
}

// String formats the node for diagnostics.
func (n Node) String() string {
	return fmt.Sprintf("Node{id=%d, pos=%s, marker=%q}", n.ID, n.Pos, n.Marker)
}

// EdgeKey is the canonical unordered endpoint pair of an undirected edge,
// normalised so that Lo <= Hi.
type EdgeKey struct {
	Lo int
	Hi int
}

// NewEdgeKey builds the canonical key for the edge {a, b}.
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{Lo: a, Hi: b}
}

// Path is an ordered sequence of node IDs from start to goal inclusive.
// The empty Path means "no path".
type Path []int

// Found reports whether the path is non-empty.
func (p Path) Found() bool { return len(p) > 0 }

// Steps returns the edge count of the path (len-1), or -1 for an empty path.
func (p Path) Steps() int { return len(p) - 1 }

// Graph is the maze graph: a node registry plus ordered adjacency lists.
//
// order keeps node IDs in creation order; byPos is the Position → ID lookup;
// start and goal are recorded while nodes are inserted.
type Graph struct {
	nodes     map[int]*Node
	order     []int
	adjacency map[int][]int
	byPos     map[Position]int

	start int
	goal  int

	edges  int
	sealed bool
}

// NewGraph creates an empty, unsealed Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int][]int),
		byPos:     make(map[Position]int),
		start:     NoNode,
		goal:      NoNode,
	}
}
