// SPDX-License-Identifier: MIT
// Package graph provides a compact, index-addressed, undirected Graph used as
// the topology store underneath a molecule.
//
// Vertices are dense integers in [0, Size()). They are never named: AddVertex
// returns the next index, and RemoveVertex re-densifies by shifting every
// higher index down by one. Edge endpoints that referenced a shifted vertex
// are rewritten in the same call, so the graph never holds a dangling index.
//
// Configuration Options (Option):
//
//	– WithMultiEdges()
//	    Allows several parallel edges between the same two vertices.
//	    Otherwise a second AddEdge(a,b) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (a == b); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                  // O(1) amortized
//	RemoveVertex(v int) error        // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(a, b int) error          // O(1) amortized, O(deg) without multi-edges
//	RemoveEdge(a, b int) error       // O(deg(a)+deg(b))
//	HasEdge(a, b int) bool           // O(deg(a))
//
//	// Query
//	Neighbors(v int) ([]int, error)  // O(d·log d), sorted, with multiplicity
//	Degree(v int) (int, error)       // O(1)
//	Edges() []Edge                   // O(E·log E)
//	Size(), IsEmpty(), EdgeCount()   // O(1)
//
//	// Maintenance
//	Clear(), Clone()
//
// Edge orientation is not stored: AddEdge(a,b) and AddEdge(b,a) create the
// same kind of edge, and RemoveEdge(b,a) removes an edge added as (a,b).
// When parallel edges exist, which one RemoveEdge drops is unspecified.
//
// Errors:
//
//	ErrVertexOutOfRange    – index outside [0, Size())
//	ErrEdgeNotFound        – no edge between the given endpoints
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
//
// Concurrency: Graph has no internal locking. Callers must serialize
// mutations; concurrent reads are safe only while no mutation is in flight.
package graph
