package wavefile

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

// Reader decodes the PCM frames of a wave file.
//
// A Reader exclusively owns its byte source and read cursor: frames come
// out strictly in file order and the sequence is not restartable. To
// decode the same data again, reopen the source.
type Reader struct {
	r    io.ReadSeeker
	info Info

	frame    uint32
	frameBuf []byte
	err      error
}

// Open opens the wave file at path and parses its header. The file is
// closed again when the header does not parse.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	r, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return r, nil
}

// NewReader parses the wave header from rs and returns a Reader positioned
// at the first frame. rs must be positioned at the start of the RIFF
// envelope; the Reader takes ownership of it on success.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	info, err := readInfo(rs)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:        rs,
		info:     info,
		frameBuf: make([]byte, info.frameSize()),
	}, nil
}

// Info returns the stream descriptor parsed from the header.
func (r *Reader) Info() Info {
	return r.info
}

// Next produces the next frame, or io.EOF once the sequence is exhausted.
// Exhaustion is final: after the declared frame count is reached, or after
// any read failure, every further call returns io.EOF without touching the
// source again. Read trouble mid-stream is swallowed on purpose so that a
// truncated file decodes to fewer frames instead of failing; Err reports
// the cause when the caller needs the distinction.
func (r *Reader) Next() (Frame, error) {
	if r.err != nil || r.frame >= r.info.TotalFrames {
		return nil, io.EOF
	}

	if _, err := io.ReadFull(r.r, r.frameBuf); err != nil {
		r.err = err
		return nil, io.EOF
	}

	r.frame++

	return r.decodeFrame(), nil
}

// Frames returns an iterator over the remaining frames, for use with a
// range statement or the iter/slices helpers. The sequence is single use:
// frames consumed here advance the Reader like Next calls do.
func (r *Reader) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			frame, err := r.Next()
			if err != nil {
				return
			}

			if !yield(frame) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error that stopped frame production, or
// nil when decoding ended at the declared frame count or on a clean end of
// the source. A file cut mid-frame surfaces here as io.ErrUnexpectedEOF.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}

	return r.err
}

// Close releases the underlying source when it is closable.
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

func (r *Reader) decodeFrame() Frame {
	step := r.info.bytesPerSample()

	switch r.info.NumChannels {
	case 1:
		return MonoFrame(decodeSample(r.frameBuf[:step]))
	case 2:
		return StereoFrame{
			L: decodeSample(r.frameBuf[:step]),
			R: decodeSample(r.frameBuf[step : 2*step]),
		}
	default:
		samples := make([]uint32, r.info.NumChannels)
		for ch := range samples {
			samples[ch] = decodeSample(r.frameBuf[ch*step : (ch+1)*step])
		}

		return MultiFrame(samples)
	}
}

// decodeSample reads one unsigned little-endian sample and zero-extends it
// to 32 bits. Widths past four bytes keep their low 32 bits.
func decodeSample(buf []byte) uint32 {
	var sample uint32

	for i, b := range buf {
		if i == 4 {
			break
		}

		sample |= uint32(b) << (8 * i)
	}

	return sample
}
