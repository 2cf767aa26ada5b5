package errors

import "errors"

// Common error types used across the gopool library

var (
	// ErrClosed indicates that an operation was attempted on a closed
	// queue or a pool that has begun shutdown
	ErrClosed = errors.New("resource is closed")

	// ErrZeroSize indicates that a pool was requested with no workers
	ErrZeroSize = errors.New("pool size must be at least one")
)

// IsClosed returns true if the error indicates a closed queue or pool
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
