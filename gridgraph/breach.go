// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// Breach is the result of MinBreach.
type Breach struct {
	// Cells is the cell path from start to goal inclusive.
	Cells []core.Position
	// Walls lists the wall cells on Cells, in path order.
	Walls []core.Position
}

// Cost returns the number of walls that must be knocked down.
func (b Breach) Cost() int { return len(b.Walls) }

// MinBreach finds a start→goal cell path that crosses the fewest walls.
// Moving into an open cell costs 0 and into a wall cell costs 1, so a maze
// whose goal is already reachable has Cost 0.
//
// Behavior:
//  1. 0-1 BFS from the start cell over all in-bounds cells (4-neighbour).
//  2. Stop when the goal cell is popped.
//  3. Reconstruct the path via the predecessor table.
//
// Among paths of equal cost the one found first under the up, down, left,
// right probe order wins.
//
// Complexity: O(R×C) time and memory.
func MinBreach(grid *maze.Grid) (Breach, error) {
	if grid == nil {
		return Breach{}, ErrGridNil
	}
	rows, cols := grid.Rows(), grid.Cols()
	n := rows * cols
	index := func(r, c int) int { return r*cols + c }

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src := grid.Start()
	dst := grid.Goal()
	target := index(dst.Row, dst.Col)

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	dist[index(src.Row, src.Col)] = 0
	dq.PushFront(index(src.Row, src.Col))

	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			found = true
			break
		}
		ur, uc := u/cols, u%cols
		for _, d := range neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !grid.InBounds(vr, vc) {
				continue
			}
			v := index(vr, vc)
			step := 0
			if grid.IsWall(vr, vc) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return Breach{}, ErrNoPath
	}

	var b Breach
	for at := target; at >= 0; at = prev[at] {
		b.Cells = append(b.Cells, core.Position{Row: at / cols, Col: at % cols})
	}
	for i, j := 0, len(b.Cells)-1; i < j; i, j = i+1, j-1 {
		b.Cells[i], b.Cells[j] = b.Cells[j], b.Cells[i]
	}
	for _, p := range b.Cells {
		if grid.IsWall(p.Row, p.Col) {
			b.Walls = append(b.Walls, p)
		}
	}

	return b, nil
}
