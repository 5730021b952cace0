package synth

import (
	"context"
	"testing"
)

func BenchmarkSimulateSinus(b *testing.B) {
	s := New(WithSeed(42))
	req := testRequest(MethodSinus, 10, 70, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Simulate(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimulateVF(b *testing.B) {
	s := New(WithSeed(42))
	req := testRequest(MethodVF, 10, 70, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Simulate(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStreamNext(b *testing.B) {
	st, err := NewStream(testRequest(MethodAFib, 30, 90, 0.2), 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Next(256)
	}
}
