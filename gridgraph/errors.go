// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrGridNil indicates a nil *maze.Grid was supplied.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrGraphNil indicates a nil *core.Graph was supplied.
	ErrGraphNil = errors.New("gridgraph: graph is nil")
	// ErrNoPath indicates no breach path exists between start and goal.
	ErrNoPath = errors.New("gridgraph: no path between start and goal")
)
