package benchmark

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vnykmshr/gopool/pkg/pool"
	"github.com/vnykmshr/gopool/pkg/queue"
)

// BenchmarkPoolExecute measures job submission performance at several pool sizes.
func BenchmarkPoolExecute(b *testing.B) {
	workerCounts := []int{2, 4, 8}

	for _, workers := range workerCounts {
		b.Run(workerLabel(workers), func(b *testing.B) {
			p, err := pool.Build(workers)
			if err != nil {
				b.Fatalf("failed to create pool: %v", err)
			}
			defer p.Shutdown()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = p.Execute(func() {})
			}
		})
	}
}

// BenchmarkPoolThroughput measures end-to-end job execution.
func BenchmarkPoolThroughput(b *testing.B) {
	p, err := pool.Build(4)
	if err != nil {
		b.Fatalf("failed to create pool: %v", err)
	}

	var completed int64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Execute(func() {
			atomic.AddInt64(&completed, 1)
		})
	}
	p.Shutdown()
	b.StopTimer()

	if got := atomic.LoadInt64(&completed); got != int64(b.N) {
		b.Fatalf("completed %d of %d jobs", got, b.N)
	}
}

// BenchmarkQueueVsChannel compares the unbounded queue against a
// buffered native channel for the single-producer/single-consumer case.
func BenchmarkQueueVsChannel(b *testing.B) {
	b.Run("queue", func(b *testing.B) {
		q := queue.New[int]()
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if _, ok := q.Receive(); !ok {
					return
				}
			}
		}()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = q.Send(i)
		}
		q.Close()
		wg.Wait()
	})

	b.Run("channel", func(b *testing.B) {
		ch := make(chan int, 1024)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range ch {
				_ = struct{}{}
			}
		}()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ch <- i
		}
		close(ch)
		wg.Wait()
	})
}

func workerLabel(workers int) string {
	return fmt.Sprintf("workers-%d", workers)
}
