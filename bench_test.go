package binwire

import (
	"testing"
)

func BenchmarkWriteScalars(b *testing.B) {
	w := NewWriter()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Reset()
		_ = w.WriteU64(uint64(i))
		_ = w.WriteF64(1.5)
		_ = w.WriteBool(true)
	}
}

func BenchmarkReadU32ListAligned(b *testing.B) {
	xs := make([]uint32, 1024)
	for i := range xs {
		xs[i] = uint32(i)
	}
	w := NewWriter()
	_ = w.WriteU32List(xs)
	buf := w.Bytes()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewReader(buf, Options{})
		_, _ = r.ReadU32List()
	}
}

func BenchmarkReadU32ListUnaligned(b *testing.B) {
	xs := make([]uint32, 1024)
	w := NewWriter()
	_ = w.WriteU8(0) // shift the payload off alignment
	_ = w.WriteU32List(xs)
	buf := w.Bytes()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewReader(buf, Options{})
		_ = r.Skip(1)
		_, _ = r.ReadU32List()
	}
}

func BenchmarkReadStringUnchecked(b *testing.B) {
	w := NewWriter()
	_ = w.WriteString("a moderately sized payload string")
	buf := w.Bytes()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewReader(buf, Options{Unchecked: true, UnsafeStrings: true})
		_, _ = r.ReadString()
	}
}

func BenchmarkFixedRecordDecode(b *testing.B) {
	w := NewWriter()
	_ = w.WriteFixedRecord(&point{X: 1, Y: 2})
	buf := w.Bytes()
	cache := NewSizeCache()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewReader(buf, Options{Sizes: cache})
		var p point
		_ = r.ReadFixedRecord(&p)
	}
}
