// Package metrics provides Prometheus instrumentation for gopool components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopool components.
type Registry struct {
	// Pool Metrics
	JobsSubmitted    *prometheus.CounterVec
	JobsExecuted     *prometheus.CounterVec
	JobsPanicked     *prometheus.CounterVec
	JobDuration      *prometheus.HistogramVec
	JobQueueWaitTime *prometheus.HistogramVec
	PoolSize         *prometheus.GaugeVec
	PoolQueued       *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by gopool components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		JobsSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "jobs_submitted_total",
				Help:      "Total number of jobs submitted to the pool",
			},
			[]string{"pool_name"},
		),

		JobsExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "jobs_executed_total",
				Help:      "Total number of jobs executed by workers",
			},
			[]string{"pool_name"},
		),

		JobsPanicked: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "jobs_panicked_total",
				Help:      "Total number of jobs that panicked during execution",
			},
			[]string{"pool_name"},
		),

		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "job_duration_seconds",
				Help:      "Time spent executing jobs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		JobQueueWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "queue_wait_seconds",
				Help:      "Time jobs spent queued before a worker claimed them",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		PoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "size",
				Help:      "Current worker pool size",
			},
			[]string{"pool_name"},
		),

		PoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopool",
				Subsystem: "pool",
				Name:      "queued_jobs",
				Help:      "Number of jobs waiting for a worker",
			},
			[]string{"pool_name"},
		),
	}
}
