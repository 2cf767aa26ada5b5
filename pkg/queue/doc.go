/*
Package queue provides an unbounded, ordered conduit for handing values
from producers to competing consumers.

Sends never block the producer. Receives block until a value is
available or the queue has been closed and drained. Values are
delivered in send order, each to exactly one receiver.

Basic usage:

	q := queue.New[int]()

	go func() {
		for {
			v, ok := q.Receive()
			if !ok {
				return // closed and drained
			}
			process(v)
		}
	}()

	q.Send(42)
	q.Close()
*/
package queue
