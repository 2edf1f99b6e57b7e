// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Callers match with errors.Is.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to NewProjector.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownNode indicates that a node ID is not present in the index.
	ErrUnknownNode = errors.New("matrix: unknown node id")

	// ErrNonSquare signals that an adjacency matrix is not V×V.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that an adjacency matrix is not symmetric.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop on the adjacency diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrBadIncidence signals an incidence column without exactly two endpoints.
	ErrBadIncidence = errors.New("matrix: incidence column must have two endpoints")
)
