// SPDX-License-Identifier: MIT
// Package graph defines the index-addressed Graph, its Edge value, options and
// sentinel errors.
//
// Errors:
//
//	ErrVertexOutOfRange    - vertex index outside [0, Size()).
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, Size()).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Edge is an undirected connection between two vertex indices.
// Edges() always reports A <= B.
type Edge struct {
	A int
	B int
}

// Option configures behavior of a Graph before creation.
type Option func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected graph over dense vertex indices.
//
// adjacency[v] lists the neighbours of v with multiplicity: a parallel edge
// appears once per edge, a self-loop appears once in its own vertex's list.
// Invariant: len(adjacency) == Size() and every stored neighbour is < Size().
type Graph struct {
	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	adjacency [][]int
	edgeCount int
}

// New creates an empty Graph with the given options.
// By default, Graph allows neither loops nor multi-edges.
// Complexity: O(len(opts))
func New(opts ...Option) *Graph {
	g := &Graph{}
	var opt Option
	for _, opt = range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
