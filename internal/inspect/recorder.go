//////////////////////////////////////////////////////////////////////////////
//
// Record stream events and broadcast them to inspection subscribers.
//
// Each subscriber has its own channel (i.e. queue). When an event line
// is recorded, it is added to each subscriber's channel. Once a
// subscriber's capacity is reached, the oldest line is dropped for each
// new one.
//
// Copyright 2019 Lanikai Labs LLC. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package inspect

import (
	"fmt"
	"sync"

	"github.com/lanikai/mediatest"
)

// Recorder observes a stream under test: it implements EventListener
// for side-channel notifications, and Wrap returns a Stream decorator
// that dumps every read outcome. Event lines fan out to any number of
// subscribers.
type Recorder struct {
	mutex       sync.RWMutex
	subscribers []chan []byte
	reads       int
}

func NewRecorder() *Recorder {
	return &Recorder{
		subscribers: []chan []byte{},
	}
}

// Subscribe to event lines, buffering up to n lines for the subscriber.
func (r *Recorder) Subscribe(n int) <-chan []byte {
	if n < 1 {
		panic("malformed buffer size")
	}

	channel := make(chan []byte, n)
	r.mutex.Lock()
	r.subscribers = append(r.subscribers, channel)
	r.mutex.Unlock()
	return channel
}

// Unsubscribe from the recorder by providing the read-only channel
// returned by Subscribe().
func (r *Recorder) Unsubscribe(s <-chan []byte) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, subscriber := range r.subscribers {
		if s == subscriber {
			// Remove subscriber from slice (order not preserved)
			subs := r.subscribers
			close(subs[i])
			subs[len(subs)-1], subs[i] = subs[i], subs[len(subs)-1]
			r.subscribers = subs[:len(subs)-1]
			return nil
		}
	}

	return errNotSubscribed
}

// Close the recorder. All subscriber channels are closed and drained.
func (r *Recorder) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, subscriber := range r.subscribers {
		close(subscriber)
		for len(subscriber) > 0 {
			<-subscriber // Drain
		}
	}
	r.subscribers = []chan []byte{}

	return nil
}

func (r *Recorder) broadcast(p []byte) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, subscriber := range r.subscribers {
		select {
		case subscriber <- p:
			// Added line to subscriber
		default:
			// Subscriber backlogged. Drop oldest line, add newest.
			<-subscriber
			subscriber <- p
		}
	}
}

// DownstreamFormatChanged implements mediatest.EventListener.
func (r *Recorder) DownstreamFormatChanged(trackType mediatest.TrackType,
	format *mediatest.Format, reason mediatest.SelectionReason,
	selectionData interface{}, mediaTimeUs int64) {

	d := mediatest.NewDumper()
	d.StartBlock("downstreamFormatChanged")
	d.Add("trackType", int(trackType))
	d.Add("format", format)
	d.Add("reason", int(reason))
	d.AddTime("mediaTimeUs", mediaTimeUs)
	d.EndBlock()
	r.broadcast([]byte(d.String()))
}

// Wrap returns a Stream that forwards to s and records every outcome.
func (r *Recorder) Wrap(s mediatest.Stream) mediatest.Stream {
	return &recordedStream{rec: r, stream: s}
}

type recordedStream struct {
	rec    *Recorder
	stream mediatest.Stream
}

func (s *recordedStream) IsReady() bool {
	return s.stream.IsReady()
}

func (s *recordedStream) Read(holder *mediatest.FormatHolder,
	buf *mediatest.Buffer, formatRequired bool) mediatest.ReadResult {

	result := s.stream.Read(holder, buf, formatRequired)
	s.rec.reads++

	d := mediatest.NewDumper()
	d.StartBlock(fmt.Sprintf("read %d", s.rec.reads))
	d.Add("result", result)
	switch result {
	case mediatest.FormatRead:
		d.Add("format", holder.Format)
	case mediatest.BufferRead:
		if buf.EndOfStream() {
			d.Add("endOfStream", true)
		} else {
			d.AddTime("timeUs", buf.TimeUs)
			d.Add("keyframe", buf.HasFlag(mediatest.FlagKeyFrame))
			d.AddBytes("data", buf.Data)
		}
	}
	d.EndBlock()
	s.rec.broadcast([]byte(d.String()))

	return result
}

func (s *recordedStream) MaybeSurfaceError() error {
	return s.stream.MaybeSurfaceError()
}

func (s *recordedStream) Skip(positionUs int64) int {
	return s.stream.Skip(positionUs)
}
