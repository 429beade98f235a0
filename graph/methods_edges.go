// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (A, B) asc with A <= B.

package graph

import (
	"fmt"
	"sort"
)

// AddEdge creates an undirected edge between a and b.
//
// Steps:
//  1. Validate both indices (ErrVertexOutOfRange).
//  2. Reject a == b unless WithLoops (ErrLoopNotAllowed).
//  3. Reject an existing a–b edge unless WithMultiEdges (ErrMultiEdgeNotAllowed).
//  4. Append b to a's row and, for non-loops, a to b's row.
//
// Complexity: O(1) amortized; O(deg(a)) when the multi-edge check runs.
func (g *Graph) AddEdge(a, b int) error {
	if err := g.checkVertex(a); err != nil {
		return err
	}
	if err := g.checkVertex(b); err != nil {
		return err
	}
	if a == b && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && indexOf(g.adjacency[a], b) >= 0 {
		return ErrMultiEdgeNotAllowed
	}

	g.adjacency[a] = append(g.adjacency[a], b)
	if a != b {
		g.adjacency[b] = append(g.adjacency[b], a)
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes one edge between a and b. Orientation is ignored.
//
// Errors:
//   - ErrVertexOutOfRange: if either index is invalid.
//   - ErrEdgeNotFound: if a and b are not adjacent.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) RemoveEdge(a, b int) error {
	if err := g.checkVertex(a); err != nil {
		return err
	}
	if err := g.checkVertex(b); err != nil {
		return err
	}

	pos := indexOf(g.adjacency[a], b)
	if pos < 0 {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, a, b)
	}
	g.adjacency[a] = removeAt(g.adjacency[a], pos)
	if a != b {
		// Mirror entry exists by construction.
		g.adjacency[b] = removeAt(g.adjacency[b], indexOf(g.adjacency[b], a))
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether at least one edge joins a and b.
// Out-of-range indices yield false.
func (g *Graph) HasEdge(a, b int) bool {
	if g.checkVertex(a) != nil || g.checkVertex(b) != nil {
		return false
	}

	return indexOf(g.adjacency[a], b) >= 0
}

// EdgeCount returns the number of edges, counting parallel edges separately. O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every edge once, normalized to A <= B and sorted by (A, B).
// Parallel edges are repeated.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	var (
		row  []int
		a, b int
	)
	for a, row = range g.adjacency {
		for _, b = range row {
			if b >= a {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// indexOf returns the first position of x in s, or -1.
func indexOf(s []int, x int) int {
	var (
		i, v int
	)
	for i, v = range s {
		if v == x {
			return i
		}
	}

	return -1
}

// removeAt deletes s[pos] preserving order.
func removeAt(s []int, pos int) []int {
	return append(s[:pos], s[pos+1:]...)
}
