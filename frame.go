package wavefile

// Frame holds the samples of every channel at a single time step. Samples
// are the stored unsigned little-endian values widened to 32 bits, ordered
// as interleaved in the file (channel 0 first).
//
// The concrete type is picked by channel count so mono and stereo
// consumers can type-switch on the common shapes directly; MultiFrame
// covers everything above two channels.
type Frame interface {
	// Channels returns the number of samples in the frame.
	Channels() int
	// Samples returns the per-channel samples in interleave order.
	Samples() []uint32
}

// MonoFrame is the frame of a single-channel stream.
type MonoFrame uint32

// Channels returns 1.
func (f MonoFrame) Channels() int { return 1 }

// Samples returns the single sample.
func (f MonoFrame) Samples() []uint32 { return []uint32{uint32(f)} }

// StereoFrame is the frame of a two-channel stream, left then right.
type StereoFrame struct {
	L uint32
	R uint32
}

// Channels returns 2.
func (f StereoFrame) Channels() int { return 2 }

// Samples returns the left and right samples.
func (f StereoFrame) Samples() []uint32 { return []uint32{f.L, f.R} }

// MultiFrame is the frame of a stream with three or more channels.
type MultiFrame []uint32

// Channels returns the channel count.
func (f MultiFrame) Channels() int { return len(f) }

// Samples returns the underlying sample slice.
func (f MultiFrame) Samples() []uint32 { return f }
