/*
Package schedule provides time-based job submission into a worker pool.

A Scheduler tracks one-time, repeating, and cron-triggered jobs and
hands each due job to its pool, where a worker runs it. Submission
follows the pool's fire-and-forget semantics.

Basic usage:

	workers := pool.New(4)
	sched := schedule.New(workers)
	sched.Start()

	sched.ScheduleRepeating("cache-sweep", func() {
		sweepCache()
	}, time.Minute)
	sched.ScheduleCron("nightly-report", "0 0 3 * * *", buildReport)

	// ...

	sched.Stop()
	workers.Shutdown()
*/
package schedule
