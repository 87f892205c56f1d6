package bincode_test

import (
	"testing"

	"github.com/katalvlaran/minkowski/bincode"
)

// BenchmarkEncode measures encoding at the default sampling depth.
func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = bincode.Encode(0.7071067811865476, 10)
	}
}

// BenchmarkDecode measures decoding a 52-digit expansion.
func BenchmarkDecode(b *testing.B) {
	s := bincode.Encode(0.7071067811865476, 52)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bincode.Decode(s)
	}
}
