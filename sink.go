//////////////////////////////////////////////////////////////////////////////
//
// Data sink contract and test doubles.
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package mediatest

import (
	"sync"
)

// Sink receives a stream of muxed or raw media bytes. Implementations
// must tolerate Close without a prior Open.
type Sink interface {
	// Open prepares the sink for writing to the named destination.
	Open(name string) error

	// Write appends bytes to the sink.
	Write(p []byte) (n int, err error)

	// Close flushes and releases the sink.
	Close() error
}

// CaptureSink records everything written to it, for assertions.
type CaptureSink struct {
	mu     sync.Mutex
	name   string
	data   []byte
	opened bool
	closed bool
}

func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

func (s *CaptureSink) Open(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.opened = true
	return nil
}

func (s *CaptureSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p...)
	return len(p), nil
}

func (s *CaptureSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Name returns the destination passed to Open.
func (s *CaptureSink) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Bytes returns a copy of everything written so far.
func (s *CaptureSink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return data
}

// Closed reports whether Close has been called.
func (s *CaptureSink) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// FailingSink decorates another sink, passing writes through and
// failing Close with ErrSinkFailure while the Fail toggle is set. It
// exercises a pipeline's handling of teardown errors without touching
// the happy path.
type FailingSink struct {
	// Inner is the decorated sink.
	Inner Sink

	// Fail makes Close return ErrSinkFailure. The inner sink is still
	// closed either way.
	Fail bool
}

// NewFailingSink returns a decorator around inner with the failure
// toggle already set.
func NewFailingSink(inner Sink) *FailingSink {
	return &FailingSink{Inner: inner, Fail: true}
}

func (s *FailingSink) Open(name string) error {
	return s.Inner.Open(name)
}

func (s *FailingSink) Write(p []byte) (int, error) {
	return s.Inner.Write(p)
}

func (s *FailingSink) Close() error {
	err := s.Inner.Close()
	if s.Fail {
		return ErrSinkFailure
	}
	return err
}
