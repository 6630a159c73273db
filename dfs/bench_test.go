package dfs_test

import (
	"testing"

	"github.com/katalvlaran/pathfuzz/builder"
	"github.com/katalvlaran/pathfuzz/dfs"
)

// BenchmarkSearch_Grid crosses a bidirectional 32×32 grid corner to corner.
func BenchmarkSearch_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(32, 32))
	if err != nil {
		b.Fatal(err)
	}
	goal := builder.GridID(31, 31)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(g, "0,0", goal); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Sparse explores a seeded random digraph.
func BenchmarkSearch_Sparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(500, 0.01))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(g, "0", "499"); err != nil {
			b.Fatal(err)
		}
	}
}
