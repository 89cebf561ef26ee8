package mediatest

// scriptEvent is one step of a ScriptedStream. Exactly one of format,
// payload, or eos is meaningful.
type scriptEvent struct {
	format  *Format
	payload []byte
	timeUs  int64
	flags   Flags
	eos     bool
}

// ScriptedStream replays an explicit event script through the Stream
// contract. Unlike FakeStream it supports several samples, mid-stream
// format switches and keyframe flags, so richer consumer behavior can
// be exercised with a still fully predictable source.
//
// Build the script with AddFormat/AddSample/AddEndOfStream before
// handing the stream to a consumer; the builder methods are not safe to
// call once reading has begun.
type ScriptedStream struct {
	events   []scriptEvent
	listener EventListener

	pos      int
	current  *Format
	notified bool
}

// NewScriptedStream returns an empty scripted stream. listener may be
// nil. A stream with an empty script delivers end-of-stream forever.
func NewScriptedStream(listener EventListener) *ScriptedStream {
	return &ScriptedStream{listener: listener}
}

// AddFormat appends a format announcement to the script.
func (s *ScriptedStream) AddFormat(f *Format) *ScriptedStream {
	s.events = append(s.events, scriptEvent{format: f})
	return s
}

// AddSample appends a sample to the script. The payload is copied.
func (s *ScriptedStream) AddSample(timeUs int64, flags Flags, payload []byte) *ScriptedStream {
	p := make([]byte, len(payload))
	copy(p, payload)
	s.events = append(s.events, scriptEvent{payload: p, timeUs: timeUs, flags: flags})
	return s
}

// AddEndOfStream appends the terminal end-of-stream event. Events after
// it are never delivered.
func (s *ScriptedStream) AddEndOfStream() *ScriptedStream {
	s.events = append(s.events, scriptEvent{eos: true})
	return s
}

// firstFormat returns the first format in the script, or nil.
func (s *ScriptedStream) firstFormat() *Format {
	for _, ev := range s.events {
		if ev.format != nil {
			return ev.format
		}
	}
	return nil
}

func (s *ScriptedStream) IsReady() bool {
	return true
}

func (s *ScriptedStream) Read(holder *FormatHolder, buf *Buffer, formatRequired bool) ReadResult {
	if s.listener != nil && !s.notified {
		s.notified = true
		if f := s.firstFormat(); f != nil {
			s.listener.DownstreamFormatChanged(TrackTypeUnknown, f, SelectionReasonUnknown, nil, 0)
		}
	}

	if formatRequired && s.current != nil {
		holder.Format = s.current
		return FormatRead
	}

	for s.pos < len(s.events) {
		ev := s.events[s.pos]
		if ev.eos {
			// Terminal; stay parked on this event forever.
			break
		}
		s.pos++
		if ev.format != nil {
			s.current = ev.format
			holder.Format = ev.format
			return FormatRead
		}
		buf.TimeUs = ev.timeUs
		buf.Flags |= ev.flags
		buf.WriteSample(ev.payload)
		return BufferRead
	}

	buf.SetFlag(FlagEndOfStream)
	return BufferRead
}

func (s *ScriptedStream) MaybeSurfaceError() error {
	return nil
}

// Skip advances past pending samples presented before positionUs,
// stopping at the next format announcement or end-of-stream.
func (s *ScriptedStream) Skip(positionUs int64) int {
	skipped := 0
	for s.pos < len(s.events) {
		ev := s.events[s.pos]
		if ev.format != nil || ev.eos || ev.timeUs >= positionUs {
			break
		}
		s.pos++
		skipped++
	}
	return skipped
}
