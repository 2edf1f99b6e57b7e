// SPDX-License-Identifier: MIT

package builder

// Kruskal carves a rows×cols perfect maze with randomized Kruskal.
//
// Steps:
//  1. Lay out every logical cell as an isolated set and list all inner walls.
//  2. Shuffle the walls with the configured RNG.
//  3. For each wall, if the cells on either side are in different sets,
//     knock it down and merge the sets. Stop after cells-1 merges.
//  4. Apply WithLoops, then draw the lattice.
//
// The result is (2*rows+1) lines of (2*cols+1) bytes with 'A' in the
// top-left cell and 'B' in the bottom-right one.
//
// Errors: ErrTooSmall.
// Complexity: O(R·C·α(R·C)) time, O(R·C) memory.
func Kruskal(rows, cols int, opts ...Option) ([]string, error) {
	l, err := newLattice(rows, cols)
	if err != nil {
		return nil, err
	}
	cfg := resolve(opts)

	walls := l.walls()
	cfg.rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	sets := newDSU(l.cells())
	merged := 0
	for _, w := range walls {
		if merged == l.cells()-1 {
			break
		}
		if sets.union(w.a, w.b) {
			l.knock(w)
			merged++
		}
	}

	l.addLoops(cfg.loops, cfg.rng)

	return l.render(cfg), nil
}
