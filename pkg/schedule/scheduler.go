package schedule

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/gopool/pkg/pool"
)

// Submitter is the part of a worker pool the scheduler needs.
// Both *pool.Pool and *pool.MetricsPool satisfy it.
type Submitter interface {
	Execute(job pool.Job) error
}

// Entry describes a scheduled job.
type Entry struct {
	ID       string
	RunAt    time.Time
	Interval time.Duration // Zero for one-time and cron jobs
	Created  time.Time
}

// Config holds scheduler configuration.
type Config struct {
	Location     *time.Location // For cron scheduling
	TickInterval time.Duration  // How often to check for due jobs (default: 50ms)
	MaxEntries   int            // Maximum number of scheduled jobs (default: 10000)
}

type scheduledJob struct {
	id           string
	job          pool.Job
	runAt        time.Time
	interval     time.Duration
	cronSchedule cron.Schedule
	created      time.Time
}

// Scheduler submits jobs to a pool on time-based triggers.
type Scheduler struct {
	pool         Submitter
	location     *time.Location
	tickInterval time.Duration
	maxEntries   int
	cronParser   cron.Parser

	mu      sync.RWMutex
	entries map[string]*scheduledJob
	ticker  *time.Ticker
	done    chan struct{}
	loopWg  sync.WaitGroup
	running bool
}

// New creates a scheduler submitting to the given pool with default
// configuration.
func New(p Submitter) *Scheduler {
	return NewWithConfig(p, Config{})
}

// NewWithConfig creates a scheduler with custom configuration.
func NewWithConfig(p Submitter, cfg Config) *Scheduler {
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = 50 * time.Millisecond
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 10000
	}

	return &Scheduler{
		pool:         p,
		location:     location,
		tickInterval: tickInterval,
		maxEntries:   maxEntries,
		cronParser:   cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		entries:      make(map[string]*scheduledJob),
	}
}

// Schedule registers a one-time job to run at the given time.
func (s *Scheduler) Schedule(id string, job pool.Job, runAt time.Time) error {
	if err := validate(id, job); err != nil {
		return err
	}
	if runAt.IsZero() {
		return fmt.Errorf("run time cannot be zero")
	}

	return s.add(&scheduledJob{
		id:      id,
		job:     job,
		runAt:   runAt,
		created: time.Now(),
	})
}

// ScheduleAfter registers a one-time job to run after the given delay.
func (s *Scheduler) ScheduleAfter(id string, job pool.Job, delay time.Duration) error {
	return s.Schedule(id, job, time.Now().Add(delay))
}

// ScheduleRepeating registers a job to run now and then at every interval.
func (s *Scheduler) ScheduleRepeating(id string, job pool.Job, interval time.Duration) error {
	if err := validate(id, job); err != nil {
		return err
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}

	return s.add(&scheduledJob{
		id:       id,
		job:      job,
		runAt:    time.Now(),
		interval: interval,
		created:  time.Now(),
	})
}

// ScheduleCron registers a job on a cron expression (with seconds field).
func (s *Scheduler) ScheduleCron(id string, cronExpr string, job pool.Job) error {
	if err := validate(id, job); err != nil {
		return err
	}
	if cronExpr == "" {
		return fmt.Errorf("cron expression cannot be empty")
	}

	schedule, err := s.cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	return s.add(&scheduledJob{
		id:           id,
		job:          job,
		runAt:        schedule.Next(time.Now().In(s.location)),
		cronSchedule: schedule,
		created:      time.Now(),
	})
}

// Cancel removes a scheduled job. Returns true if the job existed.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		delete(s.entries, id)
		return true
	}
	return false
}

// CancelAll removes every scheduled job.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*scheduledJob)
}

// List returns the scheduled jobs sorted by next run time.
func (s *Scheduler) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, Entry{
			ID:       e.id,
			RunAt:    e.runAt,
			Interval: e.interval,
			Created:  e.created,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RunAt.Before(entries[j].RunAt)
	})

	return entries
}

// Start begins the tick loop that submits due jobs to the pool.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running, call Stop() first")
	}

	s.running = true
	s.ticker = time.NewTicker(s.tickInterval)
	s.done = make(chan struct{})
	s.loopWg.Add(1)
	go s.run()

	return nil
}

// Stop halts the tick loop and blocks until it has exited. Jobs already
// handed to the pool keep running; the pool itself is not shut down.
// Stop is safe to call when the scheduler was never started.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.running {
		s.running = false
		close(s.done)
		s.ticker.Stop()
	}
	s.mu.Unlock()

	s.loopWg.Wait()
}

func (s *Scheduler) run() {
	defer s.loopWg.Done()

	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			s.submitDueJobs()
		}
	}
}

// submitDueJobs collects jobs whose run time has arrived, reschedules
// the recurring ones, and hands them to the pool outside the lock.
func (s *Scheduler) submitDueJobs() {
	now := time.Now()

	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return
	}

	due := make([]*scheduledJob, 0, len(s.entries))
	for id, e := range s.entries {
		if now.Before(e.runAt) {
			continue
		}
		due = append(due, e)

		switch {
		case e.interval > 0:
			e.runAt = now.Add(e.interval)
		case e.cronSchedule != nil:
			e.runAt = e.cronSchedule.Next(now.In(s.location))
		default:
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, e := range due {
		// A failed submission (pool shutting down) does not stop the
		// other due jobs from being handed over.
		_ = s.pool.Execute(e.job)
	}
}

func (s *Scheduler) add(e *scheduledJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[e.id]; exists {
		return fmt.Errorf("job with ID %q already exists, cancel it first", e.id)
	}
	if len(s.entries) >= s.maxEntries {
		return fmt.Errorf("cannot schedule job: maximum number of entries (%d) reached", s.maxEntries)
	}

	s.entries[e.id] = e
	return nil
}

func validate(id string, job pool.Job) error {
	if id == "" {
		return fmt.Errorf("job ID cannot be empty")
	}
	if len(id) > 255 {
		return fmt.Errorf("job ID too long (max 255 characters)")
	}
	if job == nil {
		return fmt.Errorf("job cannot be nil")
	}
	return nil
}
