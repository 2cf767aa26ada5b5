package queue

import (
	"sync"

	"github.com/vnykmshr/gopool/pkg/common/errors"
)

// initialCapacity is the ring buffer size a new queue starts with.
// The buffer doubles whenever it fills, so sends stay non-blocking.
const initialCapacity = 16

// Queue is an unbounded multiple-producer/multiple-consumer FIFO.
//
// All operations are safe for concurrent use. The mutex guards only
// the enqueue/dequeue steps; it is never held while caller code runs,
// so consumers that process dequeued values do so concurrently.
type Queue[T any] struct {
	mu       sync.Mutex
	recvCond *sync.Cond

	buffer []T
	head   int
	count  int
	closed bool
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{
		buffer: make([]T, initialCapacity),
	}
	q.recvCond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues a value. It never blocks the caller; the backing
// buffer grows on demand. Returns ErrClosed if the queue has been
// closed.
func (q *Queue[T]) Send(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return errors.ErrClosed
	}

	if q.count == len(q.buffer) {
		q.growLocked()
	}

	tail := (q.head + q.count) % len(q.buffer)
	q.buffer[tail] = v
	q.count++
	q.recvCond.Signal()

	return nil
}

// Receive blocks until a value is available and returns it in FIFO
// order, or returns the zero value and false once the queue has been
// closed and every queued value has been delivered.
//
// Exactly one receiver observes each value. Receivers waiting on an
// empty open queue block rather than erroring.
func (q *Queue[T]) Receive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.closed {
		q.recvCond.Wait()
	}

	if q.count == 0 {
		var zero T
		return zero, false
	}

	return q.removeLocked(), true
}

// TryReceive returns the next value without blocking. The second
// return is false when the queue is currently empty or closed and
// drained.
func (q *Queue[T]) TryReceive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		var zero T
		return zero, false
	}

	return q.removeLocked(), true
}

// Close marks the queue closed for sending and wakes every blocked
// receiver. Already-queued values remain receivable until drained.
// Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	q.recvCond.Broadcast()
}

// IsClosed returns true if the queue has been closed.
func (q *Queue[T]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the current number of queued values.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// growLocked doubles the ring buffer, preserving FIFO order (must hold lock).
func (q *Queue[T]) growLocked() {
	grown := make([]T, 2*len(q.buffer))
	for i := 0; i < q.count; i++ {
		grown[i] = q.buffer[(q.head+i)%len(q.buffer)]
	}
	q.buffer = grown
	q.head = 0
}

// removeLocked removes the oldest value from the buffer (must hold lock).
func (q *Queue[T]) removeLocked() T {
	v := q.buffer[q.head]
	var zero T
	q.buffer[q.head] = zero // Clear reference
	q.head = (q.head + 1) % len(q.buffer)
	q.count--
	return v
}
