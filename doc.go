// Package wavefile reads uncompressed PCM audio from RIFF/WAVE files and
// exposes it as a lazy sequence of per-channel sample frames.
//
// The header parse is strict: a broken envelope, an unknown chunk, a
// missing fmt chunk or a non-PCM format code fails Open with a typed
// error. Frame decoding is deliberately lenient instead: read trouble in
// the sample data ends the sequence early rather than failing, so a
// truncated file decodes to fewer frames. Reader.Err reports what stopped
// decoding when the caller wants to tell the two apart.
//
// Samples are returned as stored in the container: unsigned little-endian
// values widened to 32 bits, one per channel per frame. No resampling,
// mixing, or sign reinterpretation is performed.
//
// Typical use:
//
//	r, err := wavefile.Open("take1.wav")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	for frame := range r.Frames() {
//		process(frame)
//	}
package wavefile
