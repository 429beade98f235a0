// Package graph_test provides benchmarks for graph.Graph operations.
package graph_test

import (
	"testing"

	"github.com/ghutchis/MolCore/graph"
)

// BenchmarkAddEdge_Path measures appending a vertex and linking it to its predecessor.
func BenchmarkAddEdge_Path(b *testing.B) {
	g := graph.New()
	g.AddVertex()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := g.AddVertex()
		_ = g.AddEdge(v-1, v)
	}
}

// BenchmarkRemoveVertex_Head measures the renumbering cost of removing vertex 0.
func BenchmarkRemoveVertex_Head(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := NewPath(b, NBench)
		b.StartTimer()
		_ = g.RemoveVertex(0)
	}
}
