// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// walker holds the state of one traversal call.
type walker struct {
	graph   *core.Graph
	order   Order
	opts    Options
	visited map[int]bool
	out     []int
}

// Walk performs a depth-first traversal of g from start and returns the
// node IDs in the sequence selected by order. Neighbours are explored in
// adjacency order and each reachable node is recorded exactly once.
//
// On a hook error the partial sequence is returned together with the error.
func Walk(g *core.Graph, start int, order Order, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		graph:   g,
		order:   order,
		opts:    o,
		visited: make(map[int]bool, g.NodeCount()),
		out:     make([]int, 0, g.NodeCount()),
	}
	if err := w.traverse(start, 0); err != nil {
		return w.out, err
	}

	return w.out, nil
}

// Preorder records each node on first arrival.
func Preorder(g *core.Graph, start int, opts ...Option) ([]int, error) {
	return Walk(g, start, PreOrder, opts...)
}

// Inorder records each node between the two halves of its adjacency list.
func Inorder(g *core.Graph, start int, opts ...Option) ([]int, error) {
	return Walk(g, start, InOrder, opts...)
}

// Postorder records each node after its whole subtree.
func Postorder(g *core.Graph, start int, opts ...Option) ([]int, error) {
	return Walk(g, start, PostOrder, opts...)
}

// traverse visits id at the given depth. Entries before the split point
// are explored first, then id is recorded, then the remaining entries.
// Neighbours visited in the meantime are skipped where they stand.
func (w *walker) traverse(id, depth int) error {
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}
	w.visited[id] = true

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}

	split := w.order.split(len(nbs))
	for _, nb := range nbs[:split] {
		if err = w.descend(nb, depth+1); err != nil {
			return err
		}
	}
	if err = w.record(id, depth); err != nil {
		return err
	}
	for _, nb := range nbs[split:] {
		if err = w.descend(nb, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// descend recurses into nb unless it is filtered out or already visited.
func (w *walker) descend(nb, depth int) error {
	if w.visited[nb] {
		return nil
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
		return nil
	}

	return w.traverse(nb, depth)
}

func (w *walker) record(id, depth int) error {
	w.out = append(w.out, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}
