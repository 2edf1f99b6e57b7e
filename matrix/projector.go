// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/labyrinth/core"
)

// Projector turns a sealed core.Graph into dense matrices. Rows follow node
// creation order. Each matrix is built on first request and cached for the
// projector's lifetime; getters hand out deep copies.
type Projector struct {
	g     *core.Graph
	ids   []int
	index map[int]int

	adjOnce sync.Once
	adj     Adjacency

	incOnce sync.Once
	inc     *Incidence
}

// NewProjector indexes g's nodes. Returns ErrGraphNil for a nil graph.
// Complexity: O(V).
func NewProjector(g *core.Graph) (*Projector, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.IDs()
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &Projector{g: g, ids: ids, index: index}, nil
}

// IDs returns node IDs in row order.
func (p *Projector) IDs() []int {
	return append([]int(nil), p.ids...)
}

// Index returns a copy of the id → row mapping.
func (p *Projector) Index() map[int]int {
	out := make(map[int]int, len(p.index))
	for id, i := range p.index {
		out[id] = i
	}

	return out
}

// RowOf returns the row of id, or ErrUnknownNode.
func (p *Projector) RowOf(id int) (int, error) {
	i, ok := p.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return i, nil
}

// Adjacency returns the V×V matrix: for every adjacency entry (u, v),
// [row(u)][row(v)] is true. Symmetric because the graph is undirected.
// Complexity: O(V² + E) on first call, O(V²) copy afterwards.
func (p *Projector) Adjacency() Adjacency {
	p.adjOnce.Do(func() {
		n := len(p.ids)
		m := make(Adjacency, n)
		for i := range m {
			m[i] = make([]bool, n)
		}
		for i, id := range p.ids {
			nbs, _ := p.g.Neighbors(id)
			for _, nb := range nbs {
				m[i][p.index[nb]] = true
			}
		}
		p.adj = m
	})

	return p.adj.clone()
}

// Incidence returns the V×E matrix. Edges are numbered in discovery order
// (nodes in creation order, each adjacency list in order), each undirected
// edge once; both endpoint rows are true in its column.
// Complexity: O(V×E) on first call.
func (p *Projector) Incidence() *Incidence {
	p.incOnce.Do(func() {
		edges := p.g.Edges()
		m := make([][]bool, len(p.ids))
		for i := range m {
			m[i] = make([]bool, len(edges))
		}
		for k, e := range edges {
			m[p.index[e.Lo]][k] = true
			m[p.index[e.Hi]][k] = true
		}
		p.inc = &Incidence{Mat: m, Edges: edges}
	})

	return p.inc.clone()
}
