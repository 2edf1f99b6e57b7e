// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
)

// Visitation colours used by FindCycle.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start ID does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Order selects when a node is recorded relative to its neighbours.
type Order int

const (
	// PreOrder records a node before recursing into any neighbour.
	PreOrder Order = iota

	// InOrder recurses into the first ⌊deg/2⌋ adjacency entries, records the
	// node, then recurses into the rest. It is a degree generalisation of
	// binary inorder and carries no spatial meaning.
	InOrder

	// PostOrder records a node after all of its neighbours are finished.
	PostOrder
)

// String returns the lower-case name of the order.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return "unknown"
	}
}

// split returns how many adjacency entries are explored before recording.
func (o Order) split(deg int) int {
	switch o {
	case InOrder:
		return deg / 2
	case PostOrder:
		return deg
	default:
		return 0
	}
}

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for a depth-first traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a node is recorded into the
	// result, with its depth from the start. Returning an error aborts.
	OnVisit func(id, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before
	// recursing. Return false to skip it.
	FilterNeighbor func(id int) bool
}

// DefaultOptions returns Options with no hook, no depth limit and no filter.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as the record hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
