// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/wayfinder/core"
)

// BenchmarkAddNode measures node insertion including node-index growth.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewStringGraph[float64]()
	ids := make([]string, b.N)
	for i := range ids {
		ids[i] = "N" + strconv.Itoa(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddNode(ids[i])
	}
}

// BenchmarkAddEdge_Star measures edge insertion from one hub to many leaves;
// duplicate detection makes each insert O(out-degree of the hub).
func BenchmarkAddEdge_Star(b *testing.B) {
	const leaves = 256
	g := core.NewStringGraph[float64]()
	_ = g.AddNode("Root")
	for i := 0; i < leaves; i++ {
		_ = g.AddNode("N" + strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", "N"+strconv.Itoa(i%leaves), float64(i))
	}
}

// BenchmarkNodes measures insertion-ordered enumeration.
func BenchmarkNodes(b *testing.B) {
	g := core.NewStringGraph[float64]()
	for i := 0; i < 1000; i++ {
		_ = g.AddNode("N" + strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Nodes()
	}
}
