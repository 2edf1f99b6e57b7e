// SPDX-License-Identifier: MIT

// Package maze parses textual mazes into an immutable rectangular Grid.
//
// Input alphabet (default, see Markers and WithMarkers):
//
//	'*'  wall   never becomes a graph node
//	' '  open   traversable
//	'A'  start  exactly one
//	'B'  goal   exactly one
//
// Any other byte is treated as open space. Lines may have different lengths;
// shorter rows are padded with open space to the longest line.
//
// Errors:
//
//   - *FormatError wrapping ErrMissingStart, ErrMissingGoal, ErrDuplicateStart
//     or ErrDuplicateGoal; errors.Is(err, ErrFormat) holds for all of them.
//   - ErrBadMarkers for an unusable alphabet passed through WithMarkers.
//   - I/O errors from ParseReader / ParseFile, wrapped with context.
package maze
