// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & counts.
//
// Determinism:
//   - AddVertex always returns the prior Size().
//   - RemoveVertex shifts every higher index down by exactly one.

package graph

import "fmt"

// AddVertex appends a new isolated vertex and returns its index.
//
// Returns:
//   - int: the new vertex index, equal to Size() before the call.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() int {
	g.adjacency = append(g.adjacency, nil)

	return len(g.adjacency) - 1
}

// RemoveVertex deletes vertex v together with every incident edge, then
// re-densifies the index space.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexOutOfRange).
//   - Stage 2: Drop v's adjacency row; each entry is one incident edge.
//   - Stage 3: Rewrite every other row: drop references to v and decrement
//     references to vertices above v.
//
// Behavior highlights:
//   - After the call, the vertex formerly at index k > v lives at k-1, and
//     edges between surviving vertices are preserved under the new indices.
//
// Errors:
//   - ErrVertexOutOfRange: if v is not in [0, Size()).
//
// Complexity:
//   - Time O(V+E), Space O(1) extra.
//
// Notes:
//   - This is a topology rewrite; callers that keep parallel per-vertex data
//     must shift it the same way.
func (g *Graph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}

	// Every entry in v's row is one incident edge (loops are listed once).
	g.edgeCount -= len(g.adjacency[v])

	copy(g.adjacency[v:], g.adjacency[v+1:])
	g.adjacency[len(g.adjacency)-1] = nil
	g.adjacency = g.adjacency[:len(g.adjacency)-1]

	var (
		row  []int
		i, u int
	)
	for i, row = range g.adjacency {
		kept := row[:0]
		for _, u = range row {
			switch {
			case u == v:
				continue
			case u > v:
				u--
			}
			kept = append(kept, u)
		}
		g.adjacency[i] = kept
	}

	return nil
}

// Size returns the number of vertices. O(1).
func (g *Graph) Size() int { return len(g.adjacency) }

// IsEmpty reports whether the graph has no vertices. O(1).
func (g *Graph) IsEmpty() bool { return len(g.adjacency) == 0 }

// checkVertex validates that v addresses an existing vertex.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adjacency) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(g.adjacency))
	}

	return nil
}
