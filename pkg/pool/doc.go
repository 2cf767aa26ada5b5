/*
Package pool provides a fixed-size worker pool for fire-and-forget jobs.

A pool owns a set of long-lived worker goroutines that compete for jobs
on a shared unbounded FIFO queue. Submission never blocks; a slow job
occupies exactly one worker and leaves the rest free.

Basic usage:

	workers, err := pool.Build(4)
	if err != nil {
		log.Fatal(err)
	}

	workers.Execute(func() {
		// do work
	})

	// Blocks until every queued job has run and all workers exited.
	workers.Shutdown()

Two constructors cover two failure policies for a non-positive size:
New treats it as a programming defect and panics, Build reports it as
errors.ErrZeroSize and lets the caller react.

Jobs are plain func() values. A panic inside a job is contained at the
job boundary: the worker recovers, reports it through the configured
PanicHandler (or a log line with the stack), and keeps serving jobs.

Ordering: jobs are claimed by workers in submission order across the
whole pool. Completion order is not guaranteed; a later short job may
finish before an earlier long one.
*/
package pool
