package pool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gopool/internal/testutil"
	"github.com/vnykmshr/gopool/pkg/common/errors"
	"github.com/vnykmshr/gopool/pkg/metrics"
)

func buildMetricsPool(t *testing.T, workers int) (*MetricsPool, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	mp, err := BuildWithMetrics(Config{WorkerCount: workers}, "test", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	testutil.AssertNoError(t, err)
	return mp, reg
}

func gatherCounter(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	testutil.AssertNoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			total := 0.0
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			return total
		}
	}
	return 0
}

func TestMetricsPoolCountsJobs(t *testing.T) {
	mp, reg := buildMetricsPool(t, 2)

	const numJobs = 10
	var ran int32
	for i := 0; i < numJobs; i++ {
		testutil.AssertNoError(t, mp.Execute(func() {
			atomic.AddInt32(&ran, 1)
		}))
	}
	mp.Shutdown()

	testutil.AssertEqual(t, atomic.LoadInt32(&ran), int32(numJobs))
	testutil.AssertEqual(t, gatherCounter(t, reg, "gopool_pool_jobs_submitted_total"), float64(numJobs))
	testutil.AssertEqual(t, gatherCounter(t, reg, "gopool_pool_jobs_executed_total"), float64(numJobs))
}

func TestMetricsPoolCountsPanics(t *testing.T) {
	mp, reg := buildMetricsPool(t, 1)

	testutil.AssertNoError(t, mp.Execute(func() { panic("job fault") }))

	// The worker must survive the instrumented panic as well.
	done := make(chan struct{})
	testutil.AssertNoError(t, mp.Execute(func() { close(done) }))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive the panicking job")
	}
	mp.Shutdown()

	testutil.AssertEqual(t, gatherCounter(t, reg, "gopool_pool_jobs_panicked_total"), 1.0)
}

func TestMetricsPoolRejectsAfterShutdown(t *testing.T) {
	mp, reg := buildMetricsPool(t, 1)
	mp.Shutdown()

	err := mp.Execute(func() {})
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, errors.IsClosed(err), true)
	testutil.AssertEqual(t, gatherCounter(t, reg, "gopool_pool_jobs_submitted_total"), 0.0)
}

func TestBuildWithMetricsZeroSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := BuildWithMetrics(Config{WorkerCount: 0}, "test", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, err, errors.ErrZeroSize)
	if mp != nil {
		t.Fatal("no pool should be constructed on zero size")
	}
}

func TestNewWithMetricsPanicsOnZeroSize(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	NewWithMetrics(0, "test")
}
