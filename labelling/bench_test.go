package labelling_test

import (
	"math/rand"
	"testing"
)

// BenchmarkState measures one classification.
func BenchmarkState(b *testing.B) {
	p := randomPerfect(rand.New(rand.NewSource(1))).partial
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.State()
	}
}

// BenchmarkComplete measures a full completion, including canonicalisation.
func BenchmarkComplete(b *testing.B) {
	p := randomPerfect(rand.New(rand.NewSource(2))).partial
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Complete()
	}
}

// BenchmarkAllowedLabels measures the 96-probe scan.
func BenchmarkAllowedLabels(b *testing.B) {
	p := randomPerfect(rand.New(rand.NewSource(3))).partial
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.AllowedLabels()
	}
}
