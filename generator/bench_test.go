package generator_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
)

// benchmarkMethod measures one algorithm on a fresh 128×128 grid per iteration.
func benchmarkMethod(b *testing.B, m generator.Method) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := newGrid(b, 128, 128)
		b.StartTimer()
		_ = generator.Generate(g, m, generator.WithSeed(int64(i+1)))
	}
}

// BenchmarkDFS measures the backtracker.
func BenchmarkDFS(b *testing.B) { benchmarkMethod(b, generator.MethodDFS) }

// BenchmarkPrim measures randomized Prim.
func BenchmarkPrim(b *testing.B) { benchmarkMethod(b, generator.MethodPrim) }

// BenchmarkKruskal measures randomized Kruskal.
func BenchmarkKruskal(b *testing.B) { benchmarkMethod(b, generator.MethodKruskal) }
