// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ShortestPath returns a minimum-edge path from start to goal, both inclusive.
//
// Behavior:
//  1. Seed a FIFO frontier, the visited set and the predecessor table with start.
//  2. Dequeue; if the node is goal, stop and rebuild the path by walking
//     predecessors back to start, then reversing.
//  3. Otherwise enqueue every unvisited neighbour, marking it visited and
//     fixing its predecessor at enqueue time. First discovery is at minimum
//     distance, so the predecessor chain is a shortest path.
//
// An unreachable goal is a normal outcome: the result is an empty Path and a
// nil error. ShortestPath(g, s, s) is [s].
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrGoalNotFound.
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath(g *core.Graph, start, goal int) (core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	n := g.NodeCount()
	queue := make([]int, 0, n)
	queue = append(queue, start)
	visited := map[int]bool{start: true}
	parent := make(map[int]int, n)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if u == goal {
			return reconstruct(parent, start, goal), nil
		}
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		for _, v := range nbs {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}

	return core.Path{}, nil
}
