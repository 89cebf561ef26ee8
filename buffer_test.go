package mediatest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferEnsureSpace(t *testing.T) {
	var buf Buffer
	if err := buf.EnsureSpace(16); err != nil {
		t.Fatal(err)
	}
	if cap(buf.Data) < 16 {
		t.Errorf("Expected capacity >= 16: %d", cap(buf.Data))
	}
	assert.Len(t, buf.Data, 0)
}

func TestBufferEnsureSpacePreservesPayload(t *testing.T) {
	var buf Buffer
	buf.WriteSample([]byte{0x01, 0x02})
	if err := buf.EnsureSpace(1024); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []byte{0x01, 0x02}, buf.Data)
}

func TestBufferDisallowGrowth(t *testing.T) {
	buf := Buffer{DisallowGrowth: true}
	err := buf.EnsureSpace(1)
	assert.Equal(t, ErrBufferTooSmall, err)

	// Growth within existing capacity is still fine.
	buf.Data = make([]byte, 0, 8)
	assert.NoError(t, buf.EnsureSpace(8))
	assert.Equal(t, ErrBufferTooSmall, buf.EnsureSpace(9))
}

func TestBufferWriteSample(t *testing.T) {
	var buf Buffer
	assert.NoError(t, buf.WriteSample([]byte{0x0A, 0x0B, 0x0C}))
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C}, buf.Data)

	// A second write replaces the payload.
	assert.NoError(t, buf.WriteSample([]byte{0x0D}))
	assert.Equal(t, []byte{0x0D}, buf.Data)
}

func TestBufferClear(t *testing.T) {
	var buf Buffer
	buf.WriteSample([]byte{0x01})
	buf.TimeUs = 42
	buf.SetFlag(FlagEndOfStream | FlagKeyFrame)

	buf.Clear()

	assert.Len(t, buf.Data, 0)
	assert.EqualValues(t, 0, buf.TimeUs)
	assert.False(t, buf.EndOfStream())
	if cap(buf.Data) == 0 {
		t.Error("Clear must retain the backing array")
	}
}

func TestBufferFlags(t *testing.T) {
	var buf Buffer
	buf.SetFlag(FlagKeyFrame)
	assert.True(t, buf.HasFlag(FlagKeyFrame))
	assert.False(t, buf.HasFlag(FlagEndOfStream))
	assert.False(t, buf.EndOfStream())

	buf.SetFlag(FlagEndOfStream)
	assert.True(t, buf.EndOfStream())
	assert.True(t, buf.HasFlag(FlagEndOfStream|FlagKeyFrame))
}
