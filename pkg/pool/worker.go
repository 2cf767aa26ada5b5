package pool

import (
	"log"
	"runtime/debug"
)

// worker represents a single worker in the pool, identified by a
// small integer index.
type worker struct {
	id   int
	pool *Pool
}

// run is the main loop for a worker. Workers compete for the next
// queued job; the queue serializes the claim itself, but its lock is
// released before the job runs, so jobs on different workers execute
// concurrently. The loop exits cleanly once the queue is closed and
// drained.
func (w *worker) run() {
	defer w.pool.workerWg.Done()

	for {
		job, ok := w.pool.jobs.Receive()
		if !ok {
			if w.pool.config.OnWorkerStop != nil {
				w.pool.config.OnWorkerStop(w.id)
			}
			return
		}
		w.runJob(job)
	}
}

// runJob executes a single job, containing any panic at the job
// boundary so the worker stays alive for future jobs.
func (w *worker) runJob(job Job) {
	defer func() {
		if r := recover(); r != nil {
			if w.pool.config.PanicHandler != nil {
				w.pool.config.PanicHandler(w.id, r)
				return
			}
			log.Printf("pool: worker %d: job panicked: %v\nStack trace:\n%s", w.id, r, debug.Stack())
		}
	}()

	if w.pool.config.OnJobStart != nil {
		w.pool.config.OnJobStart(w.id)
	}

	job()
}
