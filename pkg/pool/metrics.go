package pool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gopool/pkg/metrics"
)

// MetricsPool wraps a Pool with Prometheus metrics collection.
type MetricsPool struct {
	*Pool
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a pool with metrics enabled on its own
// registry. Panics on a non-positive worker count, like New.
func NewWithMetrics(workerCount int, name string) *MetricsPool {
	// Use a separate registry per metrics-enabled pool to avoid
	// duplicate-registration conflicts.
	registry := prometheus.NewRegistry()
	mp, err := BuildWithMetrics(Config{WorkerCount: workerCount}, name, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
	if err != nil {
		panic("pool: worker count must be positive")
	}
	return mp
}

// BuildWithMetrics creates a metrics-wrapped pool with custom config,
// reporting a non-positive worker count as an error.
func BuildWithMetrics(config Config, name string, metricsConfig metrics.Config) (*MetricsPool, error) {
	base, err := BuildWithConfig(config)
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	mp := &MetricsPool{
		Pool:     base,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
	mp.updateGauges()

	return mp, nil
}

// Execute enqueues a job wrapped with metrics collection.
func (mp *MetricsPool) Execute(job Job) error {
	if !mp.enabled {
		return mp.Pool.Execute(job)
	}

	submitted := time.Now()
	wrapped := func() {
		start := time.Now()
		mp.registry.JobQueueWaitTime.WithLabelValues(mp.name).Observe(start.Sub(submitted).Seconds())

		defer func() {
			mp.registry.JobDuration.WithLabelValues(mp.name).Observe(time.Since(start).Seconds())
			mp.registry.JobsExecuted.WithLabelValues(mp.name).Inc()
			mp.updateGauges()

			if r := recover(); r != nil {
				mp.registry.JobsPanicked.WithLabelValues(mp.name).Inc()
				panic(r) // contained by the worker's job boundary
			}
		}()

		job()
	}

	err := mp.Pool.Execute(wrapped)
	if err == nil {
		mp.registry.JobsSubmitted.WithLabelValues(mp.name).Inc()
	}
	mp.updateGauges()

	return err
}

// updateGauges refreshes the current state gauges.
func (mp *MetricsPool) updateGauges() {
	if !mp.enabled {
		return
	}

	mp.registry.PoolSize.WithLabelValues(mp.name).Set(float64(mp.Size()))
	mp.registry.PoolQueued.WithLabelValues(mp.name).Set(float64(mp.QueueLen()))
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mp *MetricsPool) MetricsEnabled() bool {
	return mp.enabled
}
