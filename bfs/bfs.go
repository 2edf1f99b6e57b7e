// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates the mutable state of one BFS call.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs a level-order traversal of g from start.
//
// Nodes are recorded when dequeued; neighbours are enqueued in adjacency
// order (up, down, left, right for grid graphs) and marked visited at enqueue
// time, so every reachable node appears in Order exactly once.
//
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, or a wrapped
// OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, core.NoNode)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbs, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
		}
		for _, nb := range nbs {
			if !w.visited[nb] {
				w.enqueue(nb, next, item.id)
			}
		}
	}

	return nil
}

// Order is the plain traversal: the BFS visit sequence from start.
func Order(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
