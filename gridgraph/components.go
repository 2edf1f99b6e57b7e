// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/labyrinth/core"

// ConnectedComponents finds all connected regions of the maze graph.
// Components are discovered by scanning nodes in creation order; each is a
// slice of node IDs in BFS discovery order from its smallest ID.
//
// Time:   O(V + E).
// Memory: O(V) for the seen set and output.
func ConnectedComponents(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int]bool, g.NodeCount())
	var comps [][]int

	for _, id := range g.IDs() {
		if seen[id] {
			continue
		}
		queue := []int{id}
		seen[id] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			nbs, err := g.Neighbors(u)
			if err != nil {
				return nil, err
			}
			for _, v := range nbs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// ComponentIndex maps every node ID to the index of its component in comps.
func ComponentIndex(comps [][]int) map[int]int {
	idx := make(map[int]int)
	for i, comp := range comps {
		for _, id := range comp {
			idx[id] = i
		}
	}

	return idx
}

// Reachable reports whether a and b lie in the same component.
// Unknown IDs are never reachable.
func Reachable(g *core.Graph, a, b int) (bool, error) {
	comps, err := ConnectedComponents(g)
	if err != nil {
		return false, err
	}
	idx := ComponentIndex(comps)
	ca, okA := idx[a]
	cb, okB := idx[b]

	return okA && okB && ca == cb, nil
}
