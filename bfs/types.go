// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGoalNotFound is returned when the goal ID is absent.
	ErrGoalNotFound = errors.New("bfs: goal node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for nodes the traversal never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a node is enqueued, with its depth from the start.
	OnEnqueue func(id, depth int)

	// OnVisit is called when a node is dequeued and recorded. If it returns
	// an error, BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: nodes deeper than d are never enqueued
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes in dequeue (level) order.
//   - Depth: node → edge distance from the start.
//   - Parent: node → predecessor in the BFS tree; the start has no entry.
type Result struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the start→dest path through the BFS tree.
// The path is a shortest path because parents are fixed at first discovery.
// Returns ErrNotReached if dest was not reached.
func (r *Result) PathTo(dest int) (core.Path, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}

	return reconstruct(r.Parent, r.Start, dest), nil
}

// reconstruct walks parent links from dest back to start and reverses.
func reconstruct(parent map[int]int, start, dest int) core.Path {
	path := core.Path{dest}
	for cur := dest; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
