package wavefile

import "errors"

// Audio format codes carried by the fmt chunk. Only PCM data is decoded;
// the float and extensible codes are recognized so callers can report what
// kind of file was rejected.
const (
	FormatPCM        uint16 = 1
	FormatIEEEFloat  uint16 = 3
	FormatExtensible uint16 = 0xFFFE
)

var (
	// ErrNotWaveFile is returned when the RIFF/WAVE envelope is missing.
	ErrNotWaveFile = errors.New("not a wave file")
	// ErrFmtChunkNotFound is returned when the data chunk appears before
	// any fmt chunk.
	ErrFmtChunkNotFound = errors.New("fmt chunk not found")
	// ErrUnexpectedChunkID is returned when the chunk walk hits a chunk it
	// does not recognize.
	ErrUnexpectedChunkID = errors.New("unexpected chunk id")
	// ErrUnsupportedFormat is returned for structurally valid files whose
	// audio format code is anything but PCM.
	ErrUnsupportedFormat = errors.New("non-PCM audio format")
	// ErrInvalidFmtChunk is returned when the fmt chunk declares a zero
	// channel count or a sub-byte sample width.
	ErrInvalidFmtChunk = errors.New("invalid channel count or bits per sample")
)

// bytesPerSample truncates bit depths that are not byte multiples.
func bytesPerSample(bitDepth int) int {
	return bitDepth / 8
}
