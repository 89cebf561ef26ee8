//////////////////////////////////////////////////////////////////////////////
//
// Buffer holds a single media sample handed out by a Stream.
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package mediatest

// Flags carried alongside a sample.
type Flags uint32

const (
	// FlagEndOfStream marks the buffer as the end-of-stream signal. The
	// buffer carries no payload in that case.
	FlagEndOfStream Flags = 1 << iota

	// FlagKeyFrame marks the sample as independently decodable.
	FlagKeyFrame
)

// Buffer is a caller-owned sample buffer filled in by Stream.Read. The
// buffer follows a grow-before-write contract: a stream first requests
// capacity for the sample it is about to deliver, then copies the
// payload in. Growth may be vetoed by the buffer's owner, in which case
// the write fails with ErrBufferTooSmall.
type Buffer struct {
	// Sample payload. Valid only until the next Read call that fills
	// this buffer.
	Data []byte

	// Presentation time of the sample, in microseconds.
	TimeUs int64

	// Sample flags.
	Flags Flags

	// DisallowGrowth makes EnsureSpace fail rather than reallocate.
	// Tests use this to exercise a consumer's handling of undersized
	// buffers.
	DisallowGrowth bool
}

// Clear resets the buffer for reuse. The backing array is retained.
func (b *Buffer) Clear() {
	b.Data = b.Data[:0]
	b.TimeUs = 0
	b.Flags = 0
}

// EnsureSpace guarantees capacity for at least n payload bytes, growing
// the backing array if permitted. Existing payload is preserved.
func (b *Buffer) EnsureSpace(n int) error {
	if cap(b.Data) >= n {
		return nil
	}
	if b.DisallowGrowth {
		return ErrBufferTooSmall
	}
	data := make([]byte, len(b.Data), n)
	copy(data, b.Data)
	b.Data = data
	return nil
}

// WriteSample replaces the buffer payload with p, growing first per the
// grow-before-write contract.
func (b *Buffer) WriteSample(p []byte) error {
	if err := b.EnsureSpace(len(p)); err != nil {
		return err
	}
	b.Data = b.Data[:len(p)]
	copy(b.Data, p)
	return nil
}

// SetFlag sets the given flag bits.
func (b *Buffer) SetFlag(f Flags) {
	b.Flags |= f
}

// HasFlag reports whether all of the given flag bits are set.
func (b *Buffer) HasFlag(f Flags) bool {
	return b.Flags&f == f
}

// EndOfStream reports whether the buffer carries the end-of-stream
// signal.
func (b *Buffer) EndOfStream() bool {
	return b.HasFlag(FlagEndOfStream)
}
