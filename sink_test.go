package mediatest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureSink(t *testing.T) {
	sink := NewCaptureSink()
	assert.NoError(t, sink.Open("output.mp4"))

	n, err := sink.Write([]byte{0x01, 0x02})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	sink.Write([]byte{0x03})

	assert.Equal(t, "output.mp4", sink.Name())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, sink.Bytes())
	assert.False(t, sink.Closed())

	assert.NoError(t, sink.Close())
	assert.True(t, sink.Closed())
}

func TestFailingSinkClose(t *testing.T) {
	inner := NewCaptureSink()
	sink := NewFailingSink(inner)

	assert.NoError(t, sink.Open("output.mp4"))
	_, err := sink.Write([]byte{0x01})
	assert.NoError(t, err)

	// Close fails, but the inner sink is still closed.
	assert.Equal(t, ErrSinkFailure, sink.Close())
	assert.True(t, inner.Closed())

	// Writes were untouched by the decorator.
	assert.Equal(t, []byte{0x01}, inner.Bytes())
}

func TestFailingSinkToggledOff(t *testing.T) {
	inner := NewCaptureSink()
	sink := NewFailingSink(inner)
	sink.Fail = false

	sink.Open("output.mp4")
	if err := sink.Close(); err != nil {
		t.Errorf("Expected clean close with toggle off: %v", err)
	}
}
