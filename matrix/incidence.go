// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Incidence is a dense V×E boolean matrix. Column k belongs to Edges[k] and
// has exactly two true entries: the rows of the edge's endpoints.
type Incidence struct {
	Mat   [][]bool       // V rows, E columns
	Edges []core.EdgeKey // column → canonical (Lo, Hi) pair
}

// VertexCount returns the number of rows.
func (im *Incidence) VertexCount() int { return len(im.Mat) }

// EdgeCount returns the number of columns.
func (im *Incidence) EdgeCount() int { return len(im.Edges) }

// Ints returns the 0/1 view of the matrix.
func (im *Incidence) Ints() [][]int {
	out := make([][]int, len(im.Mat))
	for i, row := range im.Mat {
		out[i] = boolsToInts(row)
	}

	return out
}

// Degrees returns the row sums, which equal each node's degree.
func (im *Incidence) Degrees() []int {
	out := make([]int, len(im.Mat))
	for i, row := range im.Mat {
		for _, v := range row {
			if v {
				out[i]++
			}
		}
	}

	return out
}

// Validate checks that every column has exactly two true entries.
// Complexity: O(V×E).
func (im *Incidence) Validate() error {
	for k := range im.Edges {
		count := 0
		for _, row := range im.Mat {
			if row[k] {
				count++
			}
		}
		if count != 2 {
			return fmt.Errorf("Validate: column %d has %d endpoints: %w", k, count, ErrBadIncidence)
		}
	}

	return nil
}

// clone returns a deep copy.
func (im *Incidence) clone() *Incidence {
	out := &Incidence{
		Mat:   make([][]bool, len(im.Mat)),
		Edges: append([]core.EdgeKey(nil), im.Edges...),
	}
	for i, row := range im.Mat {
		out.Mat[i] = append([]bool(nil), row...)
	}

	return out
}
