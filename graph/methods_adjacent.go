// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree).
// Determinism:
//   - Neighbors() returns indices sorted asc, repeated once per parallel edge.

package graph

import "sort"

// Neighbors returns the vertices adjacent to v.
//
// Behavior highlights:
//   - A parallel edge contributes its neighbour once per edge.
//   - A self-loop contributes v once.
//   - The result is an independent slice sorted ascending.
//
// Errors:
//   - ErrVertexOutOfRange: if v is not in [0, Size()).
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to v; a self-loop counts once.
//
// Errors:
//   - ErrVertexOutOfRange: if v is not in [0, Size()).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return len(g.adjacency[v]), nil
}
