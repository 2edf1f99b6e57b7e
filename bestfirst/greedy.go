// SPDX-License-Identifier: MIT

package bestfirst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// runner holds the per-call state of one traversal.
type runner struct {
	g       *core.Graph
	opts    Options
	goal    int
	target  core.Position
	pq      frontier
	visited map[int]bool
	seq     int
	out     []int
}

// Greedy walks g from start toward goal, always expanding the frontier node
// with the lowest heuristic score (Manhattan distance to the goal unless
// WithHeuristic says otherwise). It returns the nodes in the order they were
// popped. The walk stops right after the goal is recorded; if the goal is
// unreachable every node reachable from start is returned.
//
// Nodes are marked visited when pushed and are never re-prioritised, so the
// returned sequence is a traversal order, not a shortest path.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Greedy(g *core.Graph, start, goal int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	gn, err := g.Node(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		opts:    o,
		goal:    goal,
		target:  gn.Pos,
		pq:      make(frontier, 0, n),
		visited: make(map[int]bool, n),
		out:     make([]int, 0, n),
	}
	heap.Init(&r.pq)
	if err = r.push(start); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return r.out, err
	}

	return r.out, nil
}

// push scores id, marks it visited and adds it to the frontier.
func (r *runner) push(id int) error {
	node, err := r.g.Node(id)
	if err != nil {
		return fmt.Errorf("bestfirst: node %d: %w", id, err)
	}
	r.visited[id] = true
	heap.Push(&r.pq, &item{id: id, score: r.opts.Heuristic(node.Pos, r.target), seq: r.seq})
	r.seq++

	return nil
}

// process pops the best node, records it and expands its unvisited
// neighbours until the goal is recorded or the frontier is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		r.out = append(r.out, it.id)
		if r.opts.OnVisit != nil {
			if err := r.opts.OnVisit(it.id, it.score); err != nil {
				return fmt.Errorf("bestfirst: OnVisit hook for %d: %w", it.id, err)
			}
		}
		if it.id == r.goal {
			return nil
		}

		nbs, err := r.g.Neighbors(it.id)
		if err != nil {
			return fmt.Errorf("bestfirst: neighbors of %d: %w", it.id, err)
		}
		for _, nb := range nbs {
			if r.visited[nb] {
				continue
			}
			if err = r.push(nb); err != nil {
				return err
			}
		}
	}

	return nil
}
