// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Adjacency is a dense V×V boolean matrix. Entry [i][j] is true when the
// nodes at rows i and j share an edge. Rows follow Projector.IDs.
type Adjacency [][]bool

// Size returns V.
func (a Adjacency) Size() int { return len(a) }

// Ints returns the 0/1 view of the matrix.
func (a Adjacency) Ints() [][]int {
	out := make([][]int, len(a))
	for i, row := range a {
		out[i] = boolsToInts(row)
	}

	return out
}

// Degree returns the number of true entries in row i.
func (a Adjacency) Degree(i int) int {
	d := 0
	for _, v := range a[i] {
		if v {
			d++
		}
	}

	return d
}

// Validate checks that a is square, symmetric and has an all-false diagonal.
// Complexity: O(V²), upper triangle only for symmetry.
func (a Adjacency) Validate() error {
	n := len(a)
	for i, row := range a {
		if len(row) != n {
			return fmt.Errorf("Validate: row %d has %d cols, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}
	for i := 0; i < n; i++ {
		if a[i][i] {
			return fmt.Errorf("Validate: [%d][%d]: %w", i, i, ErrNonZeroDiagonal)
		}
		for j := i + 1; j < n; j++ {
			if a[i][j] != a[j][i] {
				return fmt.Errorf("Validate: [%d][%d] != [%d][%d]: %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	return nil
}

// clone returns a deep copy.
func (a Adjacency) clone() Adjacency {
	out := make(Adjacency, len(a))
	for i, row := range a {
		out[i] = append([]bool(nil), row...)
	}

	return out
}

func boolsToInts(row []bool) []int {
	out := make([]int, len(row))
	for j, v := range row {
		if v {
			out[j] = 1
		}
	}

	return out
}
