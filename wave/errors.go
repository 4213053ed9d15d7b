package wave

import "errors"

var (
	// ErrTruncatedHeader reports a stream that ended before the declared
	// header fields were fully read.
	ErrTruncatedHeader = errors.New("wave: truncated header")

	// ErrNotRIFF reports a stream whose outer container is not RIFF/WAVE.
	ErrNotRIFF = errors.New("wave: not a RIFF/WAVE stream")

	// ErrTruncatedData reports a data chunk shorter than its declared size.
	ErrTruncatedData = errors.New("wave: truncated sample data")

	// ErrNoDataChunk reports a stream with no data chunk after the format
	// chunk.
	ErrNoDataChunk = errors.New("wave: no data chunk")

	// ErrUnsupportedFormat reports an audio format tag other than integer
	// PCM or IEEE float.
	ErrUnsupportedFormat = errors.New("wave: unsupported audio format")

	// ErrUnsupportedBitDepth reports a bit depth outside the decodable set.
	ErrUnsupportedBitDepth = errors.New("wave: unsupported bit depth")
)
