// Package wavtest builds synthetic RIFF/WAVE byte streams for tests.
package wavtest

import (
	"bytes"
	"encoding/binary"
)

// Builder assembles a RIFF/WAVE stream chunk by chunk. The zero value is
// an empty WAVE envelope; chunk methods append in call order and return
// the builder for chaining.
type Builder struct {
	chunks   []byte
	riffSize *uint32
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Fmt appends a canonical 16-byte PCM fmt chunk.
func (b *Builder) Fmt(audioFormat, channels uint16, sampleRate, byteRate uint32, blockAlign, bits uint16) *Builder {
	return b.FmtExtended(audioFormat, channels, sampleRate, byteRate, blockAlign, bits, nil)
}

// FmtExtended appends a fmt chunk carrying extra bytes beyond the sixteen
// canonical ones; the declared size includes them.
func (b *Builder) FmtExtended(audioFormat, channels uint16, sampleRate, byteRate uint32, blockAlign, bits uint16, extra []byte) *Builder {
	payload := new(bytes.Buffer)
	binary.Write(payload, binary.LittleEndian, audioFormat)
	binary.Write(payload, binary.LittleEndian, channels)
	binary.Write(payload, binary.LittleEndian, sampleRate)
	binary.Write(payload, binary.LittleEndian, byteRate)
	binary.Write(payload, binary.LittleEndian, blockAlign)
	binary.Write(payload, binary.LittleEndian, bits)
	payload.Write(extra)

	return b.Chunk("fmt ", payload.Bytes())
}

// Data appends a data chunk holding payload.
func (b *Builder) Data(payload []byte) *Builder {
	return b.Chunk("data", payload)
}

// DataSized appends a data chunk whose declared size differs from the
// bytes actually present, for truncated or oversized files.
func (b *Builder) DataSized(declared uint32, payload []byte) *Builder {
	return b.ChunkSized("data", declared, payload)
}

// Chunk appends an arbitrary chunk; the declared size matches the payload.
func (b *Builder) Chunk(id string, payload []byte) *Builder {
	return b.ChunkSized(id, uint32(len(payload)), payload)
}

// ChunkSized appends a chunk header with the given declared size followed
// by the payload bytes as-is.
func (b *Builder) ChunkSized(id string, declared uint32, payload []byte) *Builder {
	b.chunks = append(b.chunks, id[:4]...)
	b.chunks = binary.LittleEndian.AppendUint32(b.chunks, declared)
	b.chunks = append(b.chunks, payload...)

	return b
}

// RiffSize overrides the envelope size field, which is otherwise computed
// from the appended chunks.
func (b *Builder) RiffSize(n uint32) *Builder {
	b.riffSize = &n

	return b
}

// Bytes assembles the stream.
func (b *Builder) Bytes() []byte {
	size := uint32(4 + len(b.chunks))
	if b.riffSize != nil {
		size = *b.riffSize
	}

	out := make([]byte, 0, 12+len(b.chunks))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, size)
	out = append(out, "WAVE"...)
	out = append(out, b.chunks...)

	return out
}

// Reader assembles the stream and wraps it in a ReadSeeker.
func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}

// Samples encodes values as unsigned little-endian samples of width bytes
// each, concatenated in order. Values wider than the sample width are
// truncated to it.
func Samples(width int, values ...uint32) []byte {
	out := make([]byte, 0, width*len(values))
	for _, v := range values {
		for i := range width {
			out = append(out, byte(v>>(8*i)))
		}
	}

	return out
}
