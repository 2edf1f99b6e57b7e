// SPDX-License-Identifier: MIT

// Package traversal selects one of the maze traversal strategies by name
// and runs it: the closed set of depth-first orders, breadth-first and
// greedy best-first.
package traversal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/bestfirst"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
)

// ErrUnknownStrategy is returned for names or values outside the enum.
var ErrUnknownStrategy = errors.New("traversal: unknown strategy")

// Strategy enumerates the traversal orders.
type Strategy int

const (
	Preorder Strategy = iota
	Inorder
	Postorder
	BreadthFirst
	GreedyBestFirst
)

var names = [...]string{
	Preorder:        "preorder",
	Inorder:         "inorder",
	Postorder:       "postorder",
	BreadthFirst:    "bfs",
	GreedyBestFirst: "greedy",
}

// aliases maps accepted spellings to strategies.
var aliases = map[string]Strategy{
	"preorder":      Preorder,
	"pre":           Preorder,
	"inorder":       Inorder,
	"in":            Inorder,
	"postorder":     Postorder,
	"post":          Postorder,
	"bfs":           BreadthFirst,
	"breadth-first": BreadthFirst,
	"greedy":        GreedyBestFirst,
	"best-first":    GreedyBestFirst,
}

// String returns the canonical name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return names[s]
}

// Valid reports whether s is one of the enum values.
func (s Strategy) Valid() bool {
	return s >= 0 && int(s) < len(names)
}

// NeedsGoal reports whether the strategy uses the goal node.
func (s Strategy) NeedsGoal() bool {
	return s == GreedyBestFirst
}

// All returns every strategy in declaration order.
func All() []Strategy {
	return []Strategy{Preorder, Inorder, Postorder, BreadthFirst, GreedyBestFirst}
}

// Names returns the canonical names in declaration order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])

	return out
}

// ParseStrategy resolves a name case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}

	return s, nil
}

// Run executes s over g from start. goal is consulted only by
// GreedyBestFirst; other strategies ignore it.
func Run(g *core.Graph, s Strategy, start, goal int) ([]int, error) {
	switch s {
	case Preorder:
		return dfs.Preorder(g, start)
	case Inorder:
		return dfs.Inorder(g, start)
	case Postorder:
		return dfs.Postorder(g, start)
	case BreadthFirst:
		return bfs.Order(g, start)
	case GreedyBestFirst:
		return bestfirst.Greedy(g, start, goal)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// RunAll executes every strategy and returns the sequences keyed by strategy.
// The first failure aborts.
func RunAll(g *core.Graph, start, goal int) (map[Strategy][]int, error) {
	out := make(map[Strategy][]int, len(names))
	for _, s := range All() {
		seq, err := Run(g, s, start, goal)
		if err != nil {
			return nil, fmt.Errorf("traversal: %s: %w", s, err)
		}
		out[s] = seq
	}

	return out, nil
}
