package mediatest

import (
	"fmt"
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumperFields(t *testing.T) {
	d := NewDumper()
	d.Add("result", FormatRead)
	d.Add("format", NewVideoFormat(MimeTypeH264, 1280, 720))
	d.AddTime("timeUs", 40000)

	expected := "result = FormatRead\n" +
		"format = video/avc\n" +
		"timeUs = 40000\n"
	assert.Equal(t, expected, d.String())
}

func TestDumperBlocks(t *testing.T) {
	d := NewDumper()
	d.StartBlock("outer")
	d.Add("a", 1)
	d.StartBlock("inner")
	d.Add("b", 2)
	d.EndBlock()
	d.Add("c", 3)
	d.EndBlock()
	d.Add("d", 4)

	expected := "outer:\n" +
		"  a = 1\n" +
		"  inner:\n" +
		"    b = 2\n" +
		"  c = 3\n" +
		"d = 4\n"
	assert.Equal(t, expected, d.String())
}

func TestDumperBytes(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02}

	d := NewDumper()
	d.AddBytes("data", payload)

	h := fnv.New32a()
	h.Write(payload)
	expected := fmt.Sprintf("data = length 3, hash %08X\n", h.Sum32())
	assert.Equal(t, expected, d.String())
}

func TestDumperUnbalancedEndBlock(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic from unbalanced EndBlock")
		}
	}()
	NewDumper().EndBlock()
}
