package mediatest

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/lanikai/mediatest/internal/logging"
)

var log = logging.DefaultLogger.WithTag("mediatest")

// Open a stream based on its "stream spec". A stream spec is a
// colon-separated string consisting of a stream tag and a stream path:
//    streamSpec = streamTag + ":" + streamPath
// The format of the stream path is defined by the registered OpenFunc.
func OpenStream(spec string) (Stream, error) {
	// Log known stream types, for debug purposes.
	var tags []string
	for t := range registry {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	log.Debug("Registered stream types: %v", tags)

	// Split the spec string into tag and path
	parts := strings.SplitN(spec, ":", 2)
	var tag, path string
	tag = parts[0]
	if len(parts) == 2 {
		path = parts[1]
	}

	if open, found := registry[tag]; found {
		return open(path)
	}
	return nil, errors.Errorf("Stream type '%s' not registered", tag)
}

// A function used to open a specific stream type.
type OpenFunc func(path string) (Stream, error)

var registry = map[string]OpenFunc{}

// Register a stream type, identified by its "stream tag". Streams of
// this type will be opened with the given function.
func RegisterStreamType(tag string, open OpenFunc) {
	registry[tag] = open
}

func init() {
	RegisterStreamType("fake", openFake)
}

// openFake builds a FakeStream from a compact path of the form
//    mimeType[,nosample]
// e.g. "fake:video/avc" or "fake:audio/opus,nosample". The sample
// payload is a single zero byte.
func openFake(path string) (Stream, error) {
	parts := strings.Split(path, ",")
	mimeType := parts[0]
	if mimeType == "" {
		return nil, errors.New("Fake stream spec is missing a MIME type")
	}

	format := &Format{MimeType: mimeType}
	if len(parts) == 1 {
		return NewFakeStream(format, []byte{0x00}, nil), nil
	}

	switch parts[1] {
	case "nosample":
		return NewFakeStreamWithoutSample(format, nil), nil
	default:
		return nil, errors.Errorf("Unknown fake stream option '%s'", parts[1])
	}
}
