package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanikai/mediatest"
)

func TestRecorderBroadcastsReads(t *testing.T) {
	rec := NewRecorder()
	defer rec.Close()

	format := mediatest.NewVideoFormat(mediatest.MimeTypeH264, 1280, 720)
	stream := rec.Wrap(mediatest.NewFakeStream(format, []byte{0x00}, rec))

	events := rec.Subscribe(8)

	var holder mediatest.FormatHolder
	var buf mediatest.Buffer

	assert.Equal(t, mediatest.FormatRead, stream.Read(&holder, &buf, false))

	// First the listener notification, then the read outcome.
	line := string(<-events)
	if !strings.Contains(line, "downstreamFormatChanged") {
		t.Fatalf("Expected notification line first:\n%s", line)
	}
	line = string(<-events)
	assert.Contains(t, line, "read 1")
	assert.Contains(t, line, "result = FormatRead")

	buf.Clear()
	stream.Read(&holder, &buf, false)
	line = string(<-events)
	assert.Contains(t, line, "read 2")
	assert.Contains(t, line, "timeUs = 0")

	buf.Clear()
	stream.Read(&holder, &buf, false)
	line = string(<-events)
	assert.Contains(t, line, "endOfStream = true")
}

func TestRecorderDropsOldest(t *testing.T) {
	rec := NewRecorder()
	defer rec.Close()

	stream := rec.Wrap(mediatest.NewFakeStream(
		mediatest.NewVideoFormat(mediatest.MimeTypeH264, 0, 0), []byte{0x00}, nil))

	// Capacity of one: only the most recent line survives.
	events := rec.Subscribe(1)

	var holder mediatest.FormatHolder
	var buf mediatest.Buffer
	stream.Read(&holder, &buf, false)
	buf.Clear()
	stream.Read(&holder, &buf, false)

	line := string(<-events)
	assert.Contains(t, line, "read 2")
}

func TestRecorderUnsubscribe(t *testing.T) {
	rec := NewRecorder()
	defer rec.Close()

	events := rec.Subscribe(1)
	assert.NoError(t, rec.Unsubscribe(events))

	// The channel is closed on unsubscribe.
	_, open := <-events
	assert.False(t, open)

	// Unsubscribing twice reports an error.
	assert.Error(t, rec.Unsubscribe(events))
}

func TestRecorderPassesThrough(t *testing.T) {
	rec := NewRecorder()
	defer rec.Close()

	stream := rec.Wrap(mediatest.NewFakeStream(
		mediatest.NewVideoFormat(mediatest.MimeTypeH264, 0, 0), []byte{0x00}, nil))

	assert.True(t, stream.IsReady())
	assert.Equal(t, 0, stream.Skip(1e6))
	assert.NoError(t, stream.MaybeSurfaceError())
}
