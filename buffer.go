package wavefile

import (
	"github.com/go-audio/audio"
)

// FullPCMBuffer collects every remaining frame into a single interleaved
// go-audio buffer. The entire remaining PCM data is held in memory;
// consider PCMBuffer for large files. Sample values keep this package's
// unsigned convention.
//
// The returned error is Err()'s value once the sequence ends, so callers
// of the buffered API do see what cut a truncated file short.
func (r *Reader) FullPCMBuffer() (*audio.IntBuffer, error) {
	buf := &audio.IntBuffer{
		Format:         r.info.Format(),
		SourceBitDepth: int(r.info.BitsPerSample),
	}

	for {
		frame, err := r.Next()
		if err != nil {
			break
		}

		buf.Data = appendFrame(buf.Data, frame)
	}

	return buf, r.Err()
}

// PCMBuffer fills buf.Data with interleaved samples from the next frames
// and reports how many slots were populated. Only whole frames are
// written; a zero count means the sequence is exhausted. Format and
// SourceBitDepth are set from the stream descriptor.
func (r *Reader) PCMBuffer(buf *audio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	buf.Format = r.info.Format()
	buf.SourceBitDepth = int(r.info.BitsPerSample)

	channels := int(r.info.NumChannels)

	var n int
	for n+channels <= len(buf.Data) {
		frame, err := r.Next()
		if err != nil {
			break
		}

		for ch, sample := range frame.Samples() {
			buf.Data[n+ch] = int(sample)
		}

		n += channels
	}

	return n, r.Err()
}

func appendFrame(data []int, frame Frame) []int {
	switch f := frame.(type) {
	case MonoFrame:
		return append(data, int(f))
	case StereoFrame:
		return append(data, int(f.L), int(f.R))
	default:
		for _, sample := range f.Samples() {
			data = append(data, int(sample))
		}

		return data
	}
}
