package mediatest

// Well-known MIME types for formats produced by the built-in sources.
const (
	MimeTypeH264 = "video/avc"
	MimeTypeH265 = "video/hevc"
	MimeTypeAAC  = "audio/mp4a-latm"
	MimeTypeOpus = "audio/opus"
)

// Format is an immutable descriptor of the media content carried by a
// stream. Streams hold and report a Format but never interpret it.
// Treat a constructed Format as read-only; streams hand out the same
// pointer to every caller.
type Format struct {
	// Identifier for the track this format belongs to. May be empty.
	ID string

	// MIME type, e.g. "video/avc".
	MimeType string

	// Video dimensions, in pixels. Zero for audio formats.
	Width  int
	Height int

	// Audio parameters. Zero for video formats.
	SampleRate int
	Channels   int

	// Codec initialization data (e.g. SPS/PPS for H.264). May be nil.
	InitData [][]byte
}

// NewVideoFormat returns a video format descriptor.
func NewVideoFormat(mimeType string, width, height int) *Format {
	return &Format{
		MimeType: mimeType,
		Width:    width,
		Height:   height,
	}
}

// NewAudioFormat returns an audio format descriptor.
func NewAudioFormat(mimeType string, sampleRate, channels int) *Format {
	return &Format{
		MimeType:   mimeType,
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

func (f *Format) String() string {
	if f == nil {
		return "<nil>"
	}
	return f.MimeType
}
