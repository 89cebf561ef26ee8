// Package mp4 scripts the opening of an MP4 file into a replayable
// sample stream. Only the first group of pictures of the first H.264
// track is captured, which is plenty for driving a consumer under test
// with realistic bytes and costs no real-time demuxing during the test
// itself.
package mp4

import (
	"io"
	"os"
	"time"

	"github.com/nareix/joy4/av"
	"github.com/nareix/joy4/codec/h264parser"
	fmp4 "github.com/nareix/joy4/format/mp4"
	"github.com/pkg/errors"

	"github.com/lanikai/mediatest"
	"github.com/lanikai/mediatest/internal/logging"
)

var log = logging.DefaultLogger.WithTag("mp4")

// Samples captured per script. One GOP is normally much shorter.
const maxScriptSamples = 64

func init() {
	mediatest.RegisterStreamType("mp4", Open)
}

// Open reads the leading samples of the first H.264 track in the named
// file and returns them as a scripted stream: format announcement,
// first GOP's samples, end-of-stream.
func Open(filename string) (mediatest.Stream, error) {
	log.Info("Scripting stream from %s", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	demuxer := fmp4.NewDemuxer(file)

	codecs, err := demuxer.Streams()
	if err != nil {
		return nil, errors.Wrapf(err, "Reading streams from %s", filename)
	}

	videoIdx := -1
	var info h264parser.CodecData
	for i, codec := range codecs {
		if codec.Type() == av.H264 {
			info = codec.(h264parser.CodecData)
			videoIdx = i
			break
		}
		log.Debug("Skipping %v stream", codec.Type())
	}
	if videoIdx < 0 {
		return nil, errors.Errorf("No H.264 stream found in %s", filename)
	}

	format := internFormat(&mediatest.Format{
		MimeType: mediatest.MimeTypeH264,
		Width:    info.Width(),
		Height:   info.Height(),
		InitData: [][]byte{info.SPS(), info.PPS()},
	})

	script := mediatest.NewScriptedStream(nil)
	script.AddFormat(format)

	keyframes := 0
	for n := 0; n < maxScriptSamples; n++ {
		pkt, err := demuxer.ReadPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "Reading packet from %s", filename)
		}
		if int(pkt.Idx) != videoIdx {
			continue
		}

		if pkt.IsKeyFrame {
			keyframes++
			if keyframes > 1 {
				// End of the first GOP.
				break
			}
		}

		// Strip the 4-byte AVCC length prefix.
		data := pkt.Data[4:]
		if pkt.IsKeyFrame {
			data = skipSEI(data)
		}

		var flags mediatest.Flags
		if pkt.IsKeyFrame {
			flags = mediatest.FlagKeyFrame
		}
		script.AddSample(int64(pkt.Time/time.Microsecond), flags, data)
	}

	script.AddEndOfStream()
	return script, nil
}

// Skip past the SEI (if present) in a H.264 data packet.
// See ITU-T H.264 section 7.3.2.3.
func skipSEI(data []byte) []byte {
	if len(data) == 0 || data[0] != 0x06 {
		// No SEI in this packet.
		return data
	}

	// First parse and discard payload type.
	i := 1
	payloadType := 0
	for data[i] == 0xff {
		payloadType += 255
		i++
	}
	payloadType += int(data[i])
	i++

	// Now parse the payload size.
	size := 0
	for data[i] == 0xff {
		size += 255
		i++
	}
	size += int(data[i])
	i++

	if i+size > len(data) {
		return data
	}
	log.Debug("Skipped SEI: type %d, %d bytes", payloadType, size)
	return data[i+size:]
}
