// SPDX-License-Identifier: MIT

// Package matrix projects a maze core.Graph onto dense boolean matrices.
//
//   - Projector.Adjacency: V×V, symmetric, all-false diagonal.
//   - Projector.Incidence: V×E, two true entries per column, columns in
//     edge discovery order.
//   - Projector.Index / IDs / RowOf: the id → row mapping (creation order).
//
// Both matrices are built lazily under sync.Once and cached; the graph is
// sealed, so the cache is never invalidated. Callers receive deep copies and
// may mutate them freely. Projectors are safe for concurrent use.
//
// Matrices are best for small mazes where O(V²) and O(V×E) memory is acceptable.
package matrix
