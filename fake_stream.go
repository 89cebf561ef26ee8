package mediatest

// readState is the cursor of a FakeStream. Transitions are driven
// solely by the call sequence; done is terminal.
type readState int

const (
	awaitingFormat readState = iota
	awaitingSample
	done
)

// FakeStream is a deterministic Stream producing a fixed sequence of
// events: one format announcement, zero or one sample, then
// end-of-stream forever. It never blocks, never errors, and never skips
// samples, which makes a consumer's handling of each outcome trivially
// scriptable in a test.
//
// If an EventListener is attached, its DownstreamFormatChanged
// notification fires exactly once, on the first Read call, before the
// result of that call is visible to the caller.
type FakeStream struct {
	format   *Format
	payload  []byte
	listener EventListener

	state    readState
	notified bool
}

// NewFakeStream returns a stream that delivers format, then one sample
// with the given payload at time 0, then end-of-stream. The payload is
// copied; it is fixed for the life of the stream. listener may be nil.
func NewFakeStream(format *Format, payload []byte, listener EventListener) *FakeStream {
	p := make([]byte, len(payload))
	copy(p, payload)
	return &FakeStream{
		format:   format,
		payload:  p,
		listener: listener,
	}
}

// NewFakeStreamWithoutSample returns a stream that delivers format and
// then end-of-stream immediately; the sample step is skipped entirely.
func NewFakeStreamWithoutSample(format *Format, listener EventListener) *FakeStream {
	return &FakeStream{
		format:   format,
		listener: listener,
		payload:  nil,
	}
}

// afterFormat is the single transition out of awaitingFormat.
func (s *FakeStream) afterFormat() readState {
	if s.payload != nil {
		return awaitingSample
	}
	return done
}

// IsReady always reports true; the stream never signals backpressure.
func (s *FakeStream) IsReady() bool {
	return true
}

// Read produces the next event in the fixed sequence. A forced format
// read (formatRequired) redelivers the format without advancing the
// cursor, so a stream that has already delivered its sample proceeds
// straight to end-of-stream on the next default read.
func (s *FakeStream) Read(holder *FormatHolder, buf *Buffer, formatRequired bool) ReadResult {
	if s.listener != nil && !s.notified {
		s.notified = true
		s.listener.DownstreamFormatChanged(TrackTypeUnknown, s.format, SelectionReasonUnknown, nil, 0)
	}

	if formatRequired || s.state == awaitingFormat {
		holder.Format = s.format
		if s.state == awaitingFormat {
			s.state = s.afterFormat()
		}
		return FormatRead
	}

	if s.state == awaitingSample {
		s.state = done
		buf.TimeUs = 0
		// The fake never disallows growth on its own; if the caller
		// did, the payload is withheld but the read still succeeds.
		buf.WriteSample(s.payload)
		return BufferRead
	}

	buf.SetFlag(FlagEndOfStream)
	return BufferRead
}

// MaybeSurfaceError never reports an error.
func (s *FakeStream) MaybeSurfaceError() error {
	return nil
}

// Skip never skips any samples.
func (s *FakeStream) Skip(positionUs int64) int {
	return 0
}
