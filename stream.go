package mediatest

// ReadResult indicates what a call to Stream.Read produced.
type ReadResult int

const (
	// BufferRead means the sample buffer was populated, either with a
	// payload or with the end-of-stream flag.
	BufferRead ReadResult = iota

	// FormatRead means the format holder was populated.
	FormatRead
)

func (r ReadResult) String() string {
	switch r {
	case BufferRead:
		return "BufferRead"
	case FormatRead:
		return "FormatRead"
	default:
		return "ReadResult(?)"
	}
}

// FormatHolder receives the format announced by a Stream.
type FormatHolder struct {
	Format *Format
}

// Stream is a pull-based source of media samples. A consumer repeatedly
// calls Read to obtain the next unit of data: a format announcement, a
// sample payload, or the end-of-stream signal.
//
// Streams are not safe for concurrent use; a single goroutine drives
// the read loop.
type Stream interface {
	// IsReady reports whether a call to Read will make progress.
	IsReady() bool

	// Read populates either holder or buf and returns which one.
	// When formatRequired is true the current format is (re)delivered
	// regardless of stream position.
	Read(holder *FormatHolder, buf *Buffer, formatRequired bool) ReadResult

	// MaybeSurfaceError returns a pending sustained error, if any.
	MaybeSurfaceError() error

	// Skip advances past samples presented before positionUs and
	// returns the number of samples skipped.
	Skip(positionUs int64) int
}

// TrackType classifies the track an event relates to.
type TrackType int

const (
	TrackTypeUnknown TrackType = -1
	TrackTypeDefault TrackType = 0
	TrackTypeAudio   TrackType = 1
	TrackTypeVideo   TrackType = 2
)

// SelectionReason records why a track was selected.
type SelectionReason int

const (
	SelectionReasonUnknown SelectionReason = iota
	SelectionReasonInitial
	SelectionReasonManual
	SelectionReasonAdaptive
)

// EventListener observes side-channel events emitted by a stream. A nil
// listener means no observer is attached and notifications are skipped.
type EventListener interface {
	// DownstreamFormatChanged is invoked when data of the given format
	// is about to be handed to the consumer for the first time.
	DownstreamFormatChanged(trackType TrackType, format *Format,
		reason SelectionReason, selectionData interface{}, mediaTimeUs int64)
}
