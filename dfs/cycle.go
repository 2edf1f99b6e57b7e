// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// FindCycle looks for a loop in the undirected graph g, that is, a second
// route between two cells. It returns the first cycle found as a closed
// sequence [v0, v1, ..., v0], or an empty Path when g is a forest (every
// pair of connected cells is joined by exactly one route).
//
// Roots are tried in creation order and neighbours in adjacency order,
// so the result is deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) (core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.IDs()
	state := make(map[int]int, len(ids))
	stack := make([]int, 0, len(ids))
	for _, id := range ids {
		if state[id] != White {
			continue
		}
		cycle, err := findFrom(g, id, core.NoNode, state, &stack)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, nil
		}
	}

	return core.Path{}, nil
}

// findFrom colours id Gray, explores its neighbours and reports the first
// back edge to a Gray node other than the tree parent.
func findFrom(g *core.Graph, id, parent int, state map[int]int, stack *[]int) (core.Path, error) {
	state[id] = Gray
	*stack = append(*stack, id)

	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	for _, nb := range nbs {
		switch state[nb] {
		case White:
			cycle, err := findFrom(g, nb, id, state, stack)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			if nb == parent {
				continue
			}

			return closeCycle(*stack, nb), nil
		}
	}

	*stack = (*stack)[:len(*stack)-1]
	state[id] = Black

	return nil, nil
}

// closeCycle cuts the stack at the first occurrence of head and appends head.
func closeCycle(stack []int, head int) core.Path {
	idx := 0
	for i, v := range stack {
		if v == head {
			idx = i
			break
		}
	}
	cycle := make(core.Path, 0, len(stack)-idx+1)
	cycle = append(cycle, stack[idx:]...)

	return append(cycle, head)
}
