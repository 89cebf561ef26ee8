package mediatest

import (
	"github.com/pkg/errors"
)

// Muxer writes samples from one or more tracks into a container. The
// real implementations live elsewhere; tests wire a FakeMuxer into the
// pipeline under test through a MuxerFactory.
type Muxer interface {
	// AddTrack registers a track with the given format and returns its
	// index. Tracks must be added before the first WriteSample.
	AddTrack(format *Format) (int, error)

	// WriteSample writes one sample for the given track.
	WriteSample(track int, data []byte, timeUs int64, keyframe bool) error

	// Release finalizes the container and releases resources. No
	// writes may follow.
	Release() error
}

// MuxerFactory creates a muxer writing to the given sink. A pipeline
// builder under test accepts one of these, so a test can substitute
// FakeMuxerFactory and later inspect what would have been muxed.
type MuxerFactory func(sink Sink) (Muxer, error)

// MuxedSample is one sample recorded by a FakeMuxer.
type MuxedSample struct {
	Track    int
	Data     []byte
	TimeUs   int64
	KeyFrame bool
}

// FakeMuxer records added tracks and written samples instead of
// producing a container.
type FakeMuxer struct {
	tracks   []*Format
	samples  []MuxedSample
	released bool
}

func NewFakeMuxer() *FakeMuxer {
	return &FakeMuxer{}
}

func (m *FakeMuxer) AddTrack(format *Format) (int, error) {
	if m.released {
		return 0, errors.New("FakeMuxer: AddTrack after Release")
	}
	m.tracks = append(m.tracks, format)
	return len(m.tracks) - 1, nil
}

func (m *FakeMuxer) WriteSample(track int, data []byte, timeUs int64, keyframe bool) error {
	if m.released {
		return errors.New("FakeMuxer: WriteSample after Release")
	}
	if track < 0 || track >= len(m.tracks) {
		return errors.Errorf("FakeMuxer: unknown track %d", track)
	}
	p := make([]byte, len(data))
	copy(p, data)
	m.samples = append(m.samples, MuxedSample{
		Track:    track,
		Data:     p,
		TimeUs:   timeUs,
		KeyFrame: keyframe,
	})
	return nil
}

func (m *FakeMuxer) Release() error {
	m.released = true
	return nil
}

// TrackFormat returns the format registered for the given track.
func (m *FakeMuxer) TrackFormat(track int) *Format {
	return m.tracks[track]
}

// TrackCount returns the number of registered tracks.
func (m *FakeMuxer) TrackCount() int {
	return len(m.tracks)
}

// Samples returns the samples recorded for the given track, in write
// order.
func (m *FakeMuxer) Samples(track int) []MuxedSample {
	var out []MuxedSample
	for _, s := range m.samples {
		if s.Track == track {
			out = append(out, s)
		}
	}
	return out
}

// Released reports whether Release has been called.
func (m *FakeMuxer) Released() bool {
	return m.released
}

// DumpTo writes the muxer's recorded state into d, one block per track.
func (m *FakeMuxer) DumpTo(d *Dumper) {
	d.Add("released", m.released)
	for i, f := range m.tracks {
		d.StartBlock("track " + f.String())
		d.Add("index", i)
		for _, s := range m.Samples(i) {
			d.StartBlock("sample")
			d.AddTime("timeUs", s.TimeUs)
			d.Add("keyframe", s.KeyFrame)
			d.AddBytes("data", s.Data)
			d.EndBlock()
		}
		d.EndBlock()
	}
}

// FakeMuxerFactory returns a factory producing a single FakeMuxer and a
// pointer through which the test can reach it after the pipeline under
// test has built its muxer.
func FakeMuxerFactory() (MuxerFactory, *FakeMuxer) {
	m := NewFakeMuxer()
	factory := func(sink Sink) (Muxer, error) {
		return m, nil
	}
	return factory, m
}
