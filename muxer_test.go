package mediatest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFakeMuxerRecordsSamples(t *testing.T) {
	m := NewFakeMuxer()

	video := NewVideoFormat(MimeTypeH264, 1280, 720)
	audio := NewAudioFormat(MimeTypeAAC, 44100, 2)

	v, err := m.AddTrack(video)
	assert.NoError(t, err)
	a, err := m.AddTrack(audio)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, m.TrackCount())
	assert.Equal(t, video, m.TrackFormat(v))

	assert.NoError(t, m.WriteSample(v, []byte{0x01}, 0, true))
	assert.NoError(t, m.WriteSample(a, []byte{0x02}, 0, false))
	assert.NoError(t, m.WriteSample(v, []byte{0x03}, 40000, false))

	samples := m.Samples(v)
	assert.Len(t, samples, 2)
	assert.Equal(t, []byte{0x01}, samples[0].Data)
	assert.True(t, samples[0].KeyFrame)
	assert.EqualValues(t, 40000, samples[1].TimeUs)

	assert.Len(t, m.Samples(a), 1)
}

func TestFakeMuxerRelease(t *testing.T) {
	m := NewFakeMuxer()
	track, _ := m.AddTrack(NewVideoFormat(MimeTypeH264, 0, 0))

	assert.False(t, m.Released())
	assert.NoError(t, m.Release())
	assert.True(t, m.Released())

	if err := m.WriteSample(track, []byte{0x01}, 0, false); err == nil {
		t.Error("Expected an error writing after Release")
	}
	if _, err := m.AddTrack(NewAudioFormat(MimeTypeAAC, 44100, 2)); err == nil {
		t.Error("Expected an error adding a track after Release")
	}
}

func TestFakeMuxerUnknownTrack(t *testing.T) {
	m := NewFakeMuxer()
	err := m.WriteSample(0, []byte{0x01}, 0, false)
	assert.Error(t, err)
}

func TestFakeMuxerFactory(t *testing.T) {
	factory, recorded := FakeMuxerFactory()

	// The pipeline under test builds its muxer through the factory.
	m, err := factory(NewCaptureSink())
	assert.NoError(t, err)

	track, _ := m.AddTrack(NewVideoFormat(MimeTypeH264, 0, 0))
	m.WriteSample(track, []byte{0x01}, 0, true)
	m.Release()

	// The test reaches the same muxer through the returned pointer.
	assert.True(t, recorded.Released())
	assert.Len(t, recorded.Samples(track), 1)
}

func TestFakeMuxerDump(t *testing.T) {
	m := NewFakeMuxer()
	track, _ := m.AddTrack(NewVideoFormat(MimeTypeH264, 1280, 720))
	m.WriteSample(track, []byte{0x01}, 0, true)
	m.Release()

	d := NewDumper()
	m.DumpTo(d)

	out := d.String()
	if !strings.Contains(out, "released = true") {
		t.Errorf("Dump missing release state:\n%s", out)
	}
	if !strings.Contains(out, "track video/avc:") {
		t.Errorf("Dump missing track block:\n%s", out)
	}
}
