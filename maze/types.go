// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors. Every parse failure is a *FormatError whose Reason is one
// of the specific sentinels below; all of them match ErrFormat via errors.Is.
var (
	// ErrFormat is the umbrella error for malformed mazes.
	ErrFormat = errors.New("maze: format error")

	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = errors.New("maze: start marker not found")

	// ErrMissingGoal indicates no goal marker was found.
	ErrMissingGoal = errors.New("maze: goal marker not found")

	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("maze: more than one start marker")

	// ErrDuplicateGoal indicates more than one goal marker.
	ErrDuplicateGoal = errors.New("maze: more than one goal marker")

	// ErrBadMarkers indicates an unusable marker alphabet (zero or repeated bytes).
	ErrBadMarkers = errors.New("maze: invalid marker set")
)

// FormatError reports a malformed maze. Pos is the offending cell for
// duplicate markers and the zero Position otherwise.
type FormatError struct {
	Reason error
	Pos    core.Position
}

func (e *FormatError) Error() string {
	if errors.Is(e.Reason, ErrDuplicateStart) || errors.Is(e.Reason, ErrDuplicateGoal) {
		return fmt.Sprintf("%v at %s", e.Reason, e.Pos)
	}

	return e.Reason.Error()
}

// Unwrap exposes the specific reason.
func (e *FormatError) Unwrap() error { return e.Reason }

// Is makes every FormatError match ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Marker classifies a grid cell. Grids always store the canonical markers
// below, whatever alphabet the input used.
type Marker = byte

// Canonical markers.
const (
	Wall  Marker = '*'
	Open  Marker = ' '
	Start Marker = core.MarkerStart
	Goal  Marker = core.MarkerGoal
)

// Markers is the input alphabet: which byte stands for which cell kind.
type Markers struct {
	Wall  byte
	Open  byte
	Start byte
	Goal  byte
}

// DefaultMarkers returns the canonical alphabet: '*', ' ', 'A', 'B'.
func DefaultMarkers() Markers {
	return Markers{Wall: Wall, Open: Open, Start: Start, Goal: Goal}
}

// Validate checks that all four markers are set and pairwise distinct.
func (m Markers) Validate() error {
	set := []byte{m.Wall, m.Open, m.Start, m.Goal}
	seen := make(map[byte]struct{}, len(set))
	for _, b := range set {
		if b == 0 {
			return fmt.Errorf("%w: zero marker", ErrBadMarkers)
		}
		if _, dup := seen[b]; dup {
			return fmt.Errorf("%w: %q used twice", ErrBadMarkers, b)
		}
		seen[b] = struct{}{}
	}

	return nil
}

// canonical maps an input character to its canonical marker. Anything that
// is not wall, start or goal is traversable open space.
func (m Markers) canonical(ch rune) Marker {
	switch ch {
	case rune(m.Wall):
		return Wall
	case rune(m.Start):
		return Start
	case rune(m.Goal):
		return Goal
	default:
		return Open
	}
}

// Grid is a rectangular, immutable matrix of canonical markers.
type Grid struct {
	cells [][]byte
	rows  int
	cols  int
	start core.Position
	goal  core.Position
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (the longest input line).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the marker at (row, col). Out-of-bounds cells read as Wall.
func (g *Grid) At(row, col int) Marker {
	if !g.InBounds(row, col) {
		return Wall
	}

	return g.cells[row][col]
}

// IsWall reports whether (row, col) is a wall or outside the grid.
func (g *Grid) IsWall(row, col int) bool {
	return g.At(row, col) == Wall
}

// Start returns the position of the start marker.
func (g *Grid) Start() core.Position { return g.start }

// Goal returns the position of the goal marker.
func (g *Grid) Goal() core.Position { return g.goal }

// Lines returns the grid as strings of canonical markers, one per row.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for r, row := range g.cells {
		out[r] = string(row)
	}

	return out
}
