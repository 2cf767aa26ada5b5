package pool

import (
	"sync/atomic"
	"testing"
)

// BenchmarkExecute measures the overhead of job submission and execution
func BenchmarkExecute(b *testing.B) {
	p := New(4)
	defer p.Shutdown()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = p.Execute(func() {})
		}
	})
}

// BenchmarkExecuteWithWork measures performance with a small amount of work
func BenchmarkExecuteWithWork(b *testing.B) {
	p := New(4)
	defer p.Shutdown()

	var counter int64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Execute(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
}
