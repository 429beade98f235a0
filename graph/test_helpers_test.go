// SPDX-License-Identifier: MIT
// Package graph_test contains test helpers for graph.Graph.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghutchis/MolCore/graph"
)

// Common sizes used across graph tests (avoid magic numbers in test bodies).
const (
	NVertices = 16
	NBench    = 1024
)

// NewPath RETURNS a default graph holding the path 0-1-...-(n-1).
func NewPath(tb testing.TB, n int) *graph.Graph {
	tb.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 1; i < n; i++ {
		require.NoError(tb, g.AddEdge(i-1, i), "AddEdge(%d,%d)", i-1, i)
	}

	return g
}
