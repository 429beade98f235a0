// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package graph

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		adjacency:  make([][]int, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	var (
		v   int
		row []int
	)
	for v, row = range g.adjacency {
		if len(row) == 0 {
			continue
		}
		clone.adjacency[v] = append([]int(nil), row...)
	}

	return clone
}

// Clear removes all vertices and edges but preserves configuration flags.
func (g *Graph) Clear() {
	g.adjacency = nil
	g.edgeCount = 0
}
