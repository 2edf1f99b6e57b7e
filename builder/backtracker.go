// SPDX-License-Identifier: MIT

package builder

// Backtracker carves a rows×cols perfect maze with an iterative randomized
// depth-first search from the top-left cell. Its corridors are long and
// winding compared with Kruskal's.
//
// At each step the cell on top of the stack picks a random unvisited
// neighbour, opens the wall between them and pushes it; a cell with no
// unvisited neighbours is popped.
//
// Errors: ErrTooSmall.
// Complexity: O(R·C) time and memory.
func Backtracker(rows, cols int, opts ...Option) ([]string, error) {
	l, err := newLattice(rows, cols)
	if err != nil {
		return nil, err
	}
	cfg := resolve(opts)

	visited := make([]bool, l.cells())
	visited[0] = true
	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var fresh []int
		for _, nb := range l.neighbours(cur) {
			if !visited[nb] {
				fresh = append(fresh, nb)
			}
		}
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := fresh[cfg.rng.Intn(len(fresh))]
		l.knock(l.between(cur, next))
		visited[next] = true
		stack = append(stack, next)
	}

	l.addLoops(cfg.loops, cfg.rng)

	return l.render(cfg), nil
}
