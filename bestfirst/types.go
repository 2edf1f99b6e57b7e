// SPDX-License-Identifier: MIT

package bestfirst

import (
	"errors"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for greedy best-first traversal.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("bestfirst: graph is nil")

	// ErrStartNotFound indicates the start ID is not in the graph.
	ErrStartNotFound = errors.New("bestfirst: start node not found")

	// ErrGoalNotFound indicates the goal ID is not in the graph.
	ErrGoalNotFound = errors.New("bestfirst: goal node not found")
)

// Heuristic scores a position against the goal; lower is explored first.
type Heuristic func(p, goal core.Position) int

// Manhattan is the default heuristic: |Δrow| + |Δcol|.
func Manhattan(p, goal core.Position) int {
	return p.Manhattan(goal)
}

// Option configures Greedy.
type Option func(*Options)

// Options holds the heuristic and the optional record hook.
type Options struct {
	// Heuristic ranks frontier nodes. Defaults to Manhattan.
	Heuristic Heuristic

	// OnVisit, if non-nil, is called when a node is popped and recorded,
	// with its heuristic score. Returning an error aborts the traversal.
	OnVisit func(id, score int) error
}

// DefaultOptions returns Options using the Manhattan heuristic and no hook.
func DefaultOptions() Options {
	return Options{Heuristic: Manhattan}
}

// WithHeuristic replaces the ranking function. A nil fn is ignored.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithOnVisit installs a hook called for every recorded node.
func WithOnVisit(fn func(id, score int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
