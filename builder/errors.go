// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrTooSmall indicates a lattice with fewer than two cells or a
	// non-positive dimension.
	ErrTooSmall = errors.New("builder: maze too small")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Generate for a
	// name or value outside the supported set.
	ErrUnknownAlgorithm = errors.New("builder: unknown algorithm")
)
