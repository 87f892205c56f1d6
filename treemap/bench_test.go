package treemap_test

import (
	"testing"

	"github.com/katalvlaran/minkowski/treemap"
)

// BenchmarkApply_GeneratorB measures one evaluation of B.
func BenchmarkApply_GeneratorB(b *testing.B) {
	m := treemap.MustBuild(treemap.GeneratorB())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Apply(0.3); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkBuild_GeneratorB measures validation plus compilation.
func BenchmarkBuild_GeneratorB(b *testing.B) {
	d := treemap.GeneratorB()
	for i := 0; i < b.N; i++ {
		if _, err := treemap.Build(d); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
