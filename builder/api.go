// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"
)

// Algorithm selects a carving strategy.
type Algorithm int

const (
	AlgKruskal Algorithm = iota
	AlgBacktracker
)

var algorithmNames = [...]string{
	AlgKruskal:     "kruskal",
	AlgBacktracker: "backtracker",
}

// String returns the lower-case name used on the command line.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists the supported names in declaration order.
func Algorithms() []string {
	out := make([]string, len(algorithmNames))
	copy(out, algorithmNames[:])

	return out
}

// ParseAlgorithm resolves a case-insensitive name. "dfs" is accepted for
// the backtracker.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kruskal":
		return AlgKruskal, nil
	case "backtracker", "dfs":
		return AlgBacktracker, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Generate dispatches to the generator selected by alg.
func Generate(alg Algorithm, rows, cols int, opts ...Option) ([]string, error) {
	switch alg {
	case AlgKruskal:
		return Kruskal(rows, cols, opts...)
	case AlgBacktracker:
		return Backtracker(rows, cols, opts...)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
