package mediatest

import "errors"

var (
	// ErrBufferTooSmall is returned when a sample does not fit into a
	// buffer whose owner has disallowed growth.
	ErrBufferTooSmall = errors.New("Buffer too small")

	// ErrSinkFailure is the injected error returned by a FailingSink.
	ErrSinkFailure = errors.New("Simulated sink failure")
)
