package wavefile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// CIDList is the chunk ID for a LIST chunk.
var CIDList = [4]byte{'L', 'I', 'S', 'T'}

// fmtChunkSize is the payload size of a canonical PCM fmt chunk. Declared
// sizes beyond it are extension bytes and get skipped.
const fmtChunkSize = 16

// readInfo walks the RIFF envelope and its sub-chunks until the data chunk
// and returns the populated stream descriptor. On success the reader is
// positioned at the first byte of PCM data; on failure its position is
// unspecified.
//
// The walk is strict: only fmt, data and LIST chunks are tolerated, LIST
// payloads are skipped without interpretation, and any other chunk ID
// fails the parse.
func readInfo(r io.ReadSeeker) (Info, error) {
	var info Info

	parser := riff.New(r)

	// The envelope size after the RIFF tag is read and discarded; it is
	// not validated against the actual stream length.
	id, _, err := parser.IDnSize()
	if err != nil {
		return info, fmt.Errorf("failed to read riff header: %w", headerErr(err))
	}

	if id != riff.RiffID {
		return info, fmt.Errorf("%q: %w", id, ErrNotWaveFile)
	}

	var form [4]byte
	if err := binary.Read(r, binary.BigEndian, &form); err != nil {
		return info, fmt.Errorf("failed to read form type: %w", headerErr(err))
	}

	if form != riff.WavFormatID {
		return info, fmt.Errorf("%q: %w", form, ErrNotWaveFile)
	}

	var haveFmt bool

	for {
		id, size, err := chunkHeader(r)
		if err != nil {
			return info, fmt.Errorf("failed to read chunk header: %w", headerErr(err))
		}

		switch id {
		case riff.FmtID:
			chunk := &riff.Chunk{
				ID:   id,
				Size: int(size),
				R:    io.LimitReader(r, int64(size)),
			}

			if err := decodeFmtChunk(&info, chunk); err != nil {
				return info, err
			}

			// Extended fmt chunks declare more than the sixteen bytes
			// decoded above; skip the remainder to keep the walk aligned.
			if size > fmtChunkSize {
				if _, err := r.Seek(int64(size-fmtChunkSize), io.SeekCurrent); err != nil {
					return info, fmt.Errorf("failed to skip fmt extension: %w", err)
				}
			}

			haveFmt = true
		case riff.DataFormatID:
			if !haveFmt {
				return info, ErrFmtChunkNotFound
			}

			if info.AudioFormat != FormatPCM {
				return info, fmt.Errorf("format code %d: %w", info.AudioFormat, ErrUnsupportedFormat)
			}

			if info.NumChannels == 0 || info.BitsPerSample < 8 {
				return info, fmt.Errorf("%d channels / %d bits: %w",
					info.NumChannels, info.BitsPerSample, ErrInvalidFmtChunk)
			}

			info.TotalFrames = size / (uint32(info.NumChannels) * uint32(info.BitsPerSample) / 8)

			return info, nil
		case CIDList:
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return info, fmt.Errorf("failed to skip LIST chunk: %w", err)
			}
		default:
			return info, fmt.Errorf("%q: %w", id, ErrUnexpectedChunkID)
		}
	}
}

// chunkHeader reads the ID and size preamble of the next sub-chunk. The
// riff parser's IDnSize drops read errors on the size field, turning a
// stream truncated inside it into an empty chunk, so the eight bytes are
// read here instead.
func chunkHeader(r io.Reader) ([4]byte, uint32, error) {
	var id [4]byte
	if err := binary.Read(r, binary.BigEndian, &id); err != nil {
		return id, 0, err
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return id, size, err
	}

	return id, size, nil
}

func decodeFmtChunk(info *Info, chunk *riff.Chunk) error {
	if err := chunk.ReadLE(&info.AudioFormat); err != nil {
		return fmt.Errorf("failed to read audio format: %w", headerErr(err))
	}

	if err := chunk.ReadLE(&info.NumChannels); err != nil {
		return fmt.Errorf("failed to read channels: %w", headerErr(err))
	}

	if err := chunk.ReadLE(&info.SampleRate); err != nil {
		return fmt.Errorf("failed to read sample rate: %w", headerErr(err))
	}

	if err := chunk.ReadLE(&info.AvgBytesPerSec); err != nil {
		return fmt.Errorf("failed to read avg bytes/sec: %w", headerErr(err))
	}

	if err := chunk.ReadLE(&info.BlockAlign); err != nil {
		return fmt.Errorf("failed to read block align: %w", headerErr(err))
	}

	if err := chunk.ReadLE(&info.BitsPerSample); err != nil {
		return fmt.Errorf("failed to read bit depth: %w", headerErr(err))
	}

	return nil
}

// headerErr normalizes read errors seen during the header parse. A clean
// EOF in the middle of the header means the file is truncated, which is a
// structural problem, not a normal end of stream.
func headerErr(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}
