package pool

import (
	"fmt"
	"sync"

	"github.com/vnykmshr/gopool/pkg/common/errors"
	"github.com/vnykmshr/gopool/pkg/queue"
)

// Job is a one-shot unit of deferred work. It captures whatever state
// it needs, runs at most once on some worker, and is not retained
// after execution.
type Job func()

// Config holds configuration options for creating a pool.
type Config struct {
	// WorkerCount is the number of workers in the pool.
	// Must be greater than 0.
	WorkerCount int

	// PanicHandler is called when a job panics during execution.
	// If nil, the panic is recovered and logged with a stack trace.
	// The worker survives either way.
	PanicHandler func(workerID int, recovered interface{})

	// OnJobStart is called by a worker after it claims a job and just
	// before running it. Observability only; it runs on the worker
	// goroutine, so it should not block.
	OnJobStart func(workerID int)

	// OnWorkerStop is called as a worker exits its loop during shutdown.
	OnWorkerStop func(workerID int)
}

// Pool owns a fixed set of worker goroutines draining a shared job
// queue. All methods are safe for concurrent use.
type Pool struct {
	config Config

	jobs    *queue.Queue[Job]
	workers []worker

	workerWg     sync.WaitGroup
	shutdownOnce sync.Once
}

// New creates a pool with the given number of workers.
//
// A non-positive size is a programming error and panics; callers that
// cannot statically guarantee a positive size should use Build.
func New(size int) *Pool {
	return NewWithConfig(Config{WorkerCount: size})
}

// NewWithConfig creates a pool with the specified configuration,
// panicking on a non-positive worker count.
func NewWithConfig(config Config) *Pool {
	p, err := BuildWithConfig(config)
	if err != nil {
		panic("pool: worker count must be positive")
	}
	return p
}

// Build creates a pool with the given number of workers, returning
// ErrZeroSize for a non-positive size instead of panicking. No queue
// or workers are allocated on failure.
func Build(size int) (*Pool, error) {
	return BuildWithConfig(Config{WorkerCount: size})
}

// BuildWithConfig creates a pool with the specified configuration.
func BuildWithConfig(config Config) (*Pool, error) {
	if config.WorkerCount < 1 {
		return nil, errors.ErrZeroSize
	}

	p := &Pool{
		config: config,
		jobs:   queue.New[Job](),
	}

	p.workers = make([]worker, config.WorkerCount)
	for i := 0; i < config.WorkerCount; i++ {
		p.workers[i] = worker{id: i, pool: p}
		p.workerWg.Add(1)
		go p.workers[i].run()
	}

	return p, nil
}

// Execute enqueues a job and returns immediately, without waiting for
// the job to start or finish. Exactly one idle worker will claim it,
// in submission order relative to other jobs.
//
// Returns a non-nil error only for a nil job or when the pool has
// already begun shutdown.
func (p *Pool) Execute(job Job) error {
	if job == nil {
		return fmt.Errorf("job cannot be nil")
	}

	if err := p.jobs.Send(job); err != nil {
		return fmt.Errorf("cannot submit job: %w", err)
	}

	return nil
}

// Shutdown closes the job queue and joins every worker. It blocks
// until all jobs enqueued before the call have finished executing and
// all workers have exited; no enqueued job is abandoned.
//
// Shutdown is idempotent: the queue is closed once, and every caller
// blocks until the drain completes.
func (p *Pool) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.jobs.Close()
	})
	p.workerWg.Wait()
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return p.config.WorkerCount
}

// QueueLen returns the current number of jobs waiting for a worker.
func (p *Pool) QueueLen() int {
	return p.jobs.Len()
}
