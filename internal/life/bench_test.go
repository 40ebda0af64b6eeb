package life

import "testing"

func benchmarkStep(b *testing.B, w, h int) {
	e, err := New(w, h)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	if err := e.Randomize(42); err != nil {
		b.Fatalf("randomize failed: %v", err)
	}
	e.Start()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step()
	}
}

func BenchmarkStep64(b *testing.B)  { benchmarkStep(b, 64, 64) }
func BenchmarkStep200(b *testing.B) { benchmarkStep(b, 200, 200) }
