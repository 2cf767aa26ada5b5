/*
Package gopool provides a fixed-size worker pool for fire-and-forget
background jobs.

Job Execution (pkg/pool):
  - pool: fixed set of workers draining a shared FIFO job queue
  - dual constructors: New panics on a zero size, Build reports it

Plumbing (pkg/queue):
  - queue: unbounded multiple-producer/multiple-consumer FIFO conduit

Scheduling (pkg/schedule):
  - schedule: cron and interval-based job submission into a pool

Example usage:

	import "github.com/vnykmshr/gopool/pkg/pool"

	workers, err := pool.Build(4)
	if err != nil {
		log.Fatal(err)
	}
	defer workers.Shutdown()

	workers.Execute(func() {
		// runs on one of the 4 workers
	})
*/
package gopool
