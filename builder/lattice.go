// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// lattice is the carving canvas. Logical cell (r, c) of a rows×cols maze
// lives at text position (2r+1, 2c+1); everything else starts as wall.
type lattice struct {
	rows, cols int
	open       [][]bool
}

// wall is the text position separating two adjacent logical cells.
type wall struct {
	a, b     int // logical cell indices r*cols+c
	row, col int
}

func newLattice(rows, cols int) (*lattice, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, rows, cols)
	}
	l := &lattice{rows: rows, cols: cols, open: make([][]bool, 2*rows+1)}
	for i := range l.open {
		l.open[i] = make([]bool, 2*cols+1)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.open[2*r+1][2*c+1] = true
		}
	}

	return l, nil
}

func (l *lattice) cells() int { return l.rows * l.cols }

// walls lists every inner wall in row-major order: for each cell, the wall to
// its right, then the wall below it.
func (l *lattice) walls() []wall {
	out := make([]wall, 0, 2*l.cells())
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			id := r*l.cols + c
			if c+1 < l.cols {
				out = append(out, wall{a: id, b: id + 1, row: 2*r + 1, col: 2*c + 2})
			}
			if r+1 < l.rows {
				out = append(out, wall{a: id, b: id + l.cols, row: 2*r + 2, col: 2*c + 1})
			}
		}
	}

	return out
}

// between returns the wall separating adjacent cells a and b.
func (l *lattice) between(a, b int) wall {
	ar, ac := a/l.cols, a%l.cols
	br, bc := b/l.cols, b%l.cols

	return wall{a: a, b: b, row: ar + br + 1, col: ac + bc + 1}
}

// neighbours returns the in-bounds logical neighbours of cell id in
// up, down, left, right order.
func (l *lattice) neighbours(id int) []int {
	r, c := id/l.cols, id%l.cols
	out := make([]int, 0, 4)
	if r > 0 {
		out = append(out, id-l.cols)
	}
	if r+1 < l.rows {
		out = append(out, id+l.cols)
	}
	if c > 0 {
		out = append(out, id-1)
	}
	if c+1 < l.cols {
		out = append(out, id+1)
	}

	return out
}

func (l *lattice) knock(w wall) { l.open[w.row][w.col] = true }

// addLoops opens up to k of the inner walls still standing.
func (l *lattice) addLoops(k int, rng *rand.Rand) {
	if k == 0 {
		return
	}
	standing := make([]wall, 0)
	for _, w := range l.walls() {
		if !l.open[w.row][w.col] {
			standing = append(standing, w)
		}
	}
	rng.Shuffle(len(standing), func(i, j int) { standing[i], standing[j] = standing[j], standing[i] })
	if k > len(standing) {
		k = len(standing)
	}
	for _, w := range standing[:k] {
		l.knock(w)
	}
}

// render draws the lattice with start in the top-left cell and goal in the
// bottom-right one.
func (l *lattice) render(cfg config) []string {
	lines := make([]string, len(l.open))
	last := len(l.open) - 2
	for i, row := range l.open {
		buf := make([]byte, len(row))
		for j, open := range row {
			switch {
			case i == 1 && j == 1:
				buf[j] = cfg.markers.Start
			case i == last && j == len(row)-2:
				buf[j] = cfg.markers.Goal
			case open:
				buf[j] = cfg.markers.Open
			default:
				buf[j] = cfg.markers.Wall
			}
		}
		lines[i] = string(buf)
	}

	return lines
}
