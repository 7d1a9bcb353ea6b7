package wavefile

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// Info describes the PCM stream found in a wave file. It is populated once
// by the header parse and never mutated afterwards.
type Info struct {
	// AudioFormat is the format code from the fmt chunk. Files that make
	// it past Open always carry FormatPCM.
	AudioFormat uint16
	// NumChannels is the number of interleaved channels, at least 1.
	NumChannels uint16
	// SampleRate is the number of frames per second, per channel.
	SampleRate uint32
	// AvgBytesPerSec is the byte rate declared by the file. Informational,
	// not validated against the other fields.
	AvgBytesPerSec uint32
	// BlockAlign is the frame stride declared by the file, trusted as-is.
	BlockAlign uint16
	// BitsPerSample is the stored sample width, at least 8.
	BitsPerSample uint16
	// TotalFrames is derived from the data chunk size. A trailing partial
	// frame is not counted.
	TotalFrames uint32
}

// Format returns the stream parameters in go-audio form.
func (info Info) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(info.NumChannels),
		SampleRate:  int(info.SampleRate),
	}
}

// Duration returns the play time of the PCM data. The frame count is
// scaled before dividing by the rate, so the result is exact to the
// nanosecond rather than a multiple of a rounded per-frame duration.
func (info Info) Duration() time.Duration {
	if info.SampleRate == 0 {
		return 0
	}

	return time.Duration(info.TotalFrames) * time.Second / time.Duration(info.SampleRate)
}

// String implements the Stringer interface.
func (info Info) String() string {
	return fmt.Sprintf("Format: PCM - %d channels @ %d / %d bits - Duration: %f seconds",
		info.NumChannels, info.SampleRate, info.BitsPerSample, info.Duration().Seconds())
}

func (info Info) bytesPerSample() int {
	return bytesPerSample(int(info.BitsPerSample))
}

// frameSize is the number of bytes one frame occupies in the data chunk.
func (info Info) frameSize() int {
	return int(info.NumChannels) * info.bytesPerSample()
}
