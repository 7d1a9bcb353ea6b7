package wavefile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cwbudde/wavefile/internal/wavtest"
)

// scenarioStream builds the reference fixture: stereo, 48 kHz, 24-bit PCM
// with 501888 frames, the first two holding identical left/right samples
// 19581 and 24337.
func scenarioStream(t *testing.T) *bytes.Reader {
	t.Helper()

	payload := make([]byte, 3011328)
	copy(payload, wavtest.Samples(3, 19581, 19581, 24337, 24337))

	return wavtest.New().
		Fmt(FormatPCM, 2, 48000, 288000, 6, 24).
		Data(payload).
		Reader()
}

func TestReaderScenarioFrames(t *testing.T) {
	r, err := NewReader(scenarioStream(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []StereoFrame{
		{L: 19581, R: 19581},
		{L: 24337, R: 24337},
	}

	for i, wantFrame := range want {
		frame, err := r.Next()
		if err != nil {
			t.Fatalf("failed to read frame %d: %v", i, err)
		}

		got, ok := frame.(StereoFrame)
		if !ok {
			t.Fatalf("frame %d is %T, want StereoFrame", i, frame)
		}

		if got != wantFrame {
			t.Fatalf("frame %d = %+v, want %+v", i, got, wantFrame)
		}
	}
}

func TestReaderScenarioFrameCount(t *testing.T) {
	r, err := NewReader(scenarioStream(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count uint32
	for range r.Frames() {
		count++
	}

	if count != 501888 {
		t.Fatalf("decoded %d frames, want 501888", count)
	}

	if err := r.Err(); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	// Exhaustion is final.
	for range 3 {
		if _, err := r.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("expected io.EOF after exhaustion, got %v", err)
		}
	}
}

func TestReaderFrameShapes(t *testing.T) {
	tests := []struct {
		name     string
		channels uint16
		bits     uint16
		payload  []byte
		want     []Frame
	}{
		{
			name:     "mono 8 bit",
			channels: 1,
			bits:     8,
			payload:  []byte{0, 128, 255},
			want:     []Frame{MonoFrame(0), MonoFrame(128), MonoFrame(255)},
		},
		{
			name:     "stereo 16 bit",
			channels: 2,
			bits:     16,
			payload:  wavtest.Samples(2, 1000, 2000, 65535, 0),
			want: []Frame{
				StereoFrame{L: 1000, R: 2000},
				StereoFrame{L: 65535, R: 0},
			},
		},
		{
			name:     "three channels 16 bit",
			channels: 3,
			bits:     16,
			payload:  wavtest.Samples(2, 1, 2, 3, 4, 5, 6),
			want: []Frame{
				MultiFrame{1, 2, 3},
				MultiFrame{4, 5, 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := wavtest.New().
				Fmt(FormatPCM, tt.channels, 44100, 0, 0, tt.bits).
				Data(tt.payload).
				Reader()

			r, err := NewReader(stream)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for i, wantFrame := range tt.want {
				frame, err := r.Next()
				if err != nil {
					t.Fatalf("failed to read frame %d: %v", i, err)
				}

				if frame.Channels() != int(tt.channels) {
					t.Fatalf("frame %d has %d channels, want %d", i, frame.Channels(), tt.channels)
				}

				if !slices.Equal(frame.Samples(), wantFrame.Samples()) {
					t.Fatalf("frame %d = %v, want %v", i, frame.Samples(), wantFrame.Samples())
				}
			}

			if _, err := r.Next(); !errors.Is(err, io.EOF) {
				t.Fatalf("expected io.EOF after last frame, got %v", err)
			}
		})
	}
}

func TestReaderSampleWidening(t *testing.T) {
	tests := []struct {
		name    string
		bits    uint16
		payload []byte
		want    []uint32
	}{
		{name: "8 bit", bits: 8, payload: []byte{0, 1, 255}, want: []uint32{0, 1, 255}},
		{name: "16 bit", bits: 16, payload: wavtest.Samples(2, 0, 0x1234, 0xFFFF), want: []uint32{0, 0x1234, 0xFFFF}},
		{name: "24 bit", bits: 24, payload: wavtest.Samples(3, 0x7D4C00, 0xFFFFFF, 5), want: []uint32{0x7D4C00, 0xFFFFFF, 5}},
		{name: "32 bit", bits: 32, payload: wavtest.Samples(4, 0xFFFFFFFF, 0x80000000, 7), want: []uint32{0xFFFFFFFF, 0x80000000, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := wavtest.New().
				Fmt(FormatPCM, 1, 44100, 0, 0, tt.bits).
				Data(tt.payload).
				Reader()

			r, err := NewReader(stream)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got []uint32
			for frame := range r.Frames() {
				got = append(got, frame.Samples()...)
			}

			if !slices.Equal(got, tt.want) {
				t.Fatalf("samples %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReaderTruncatedMidFrame(t *testing.T) {
	// Declared: three 16-bit stereo frames. Present: two frames plus one
	// lone byte of the third.
	stream := wavtest.New().
		Fmt(FormatPCM, 2, 44100, 0, 0, 16).
		DataSized(12, append(wavtest.Samples(2, 1, 2, 3, 4), 0xAA)).
		Reader()

	r, err := NewReader(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var frames int
	for range r.Frames() {
		frames++
	}

	if frames != 2 {
		t.Fatalf("decoded %d frames, want 2", frames)
	}

	if err := r.Err(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Err()=%v, want io.ErrUnexpectedEOF", err)
	}

	// The sticky error keeps the sequence exhausted and stable.
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after truncation, got %v", err)
	}

	if err := r.Err(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Err() changed after exhaustion: %v", err)
	}
}

func TestReaderTruncatedAtFrameBoundary(t *testing.T) {
	// Declared: three mono 16-bit frames. Present: two whole frames.
	stream := wavtest.New().
		Fmt(FormatPCM, 1, 44100, 0, 0, 16).
		DataSized(6, wavtest.Samples(2, 21, 22)).
		Reader()

	r, err := NewReader(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var frames int
	for range r.Frames() {
		frames++
	}

	if frames != 2 {
		t.Fatalf("decoded %d frames, want 2", frames)
	}

	if err := r.Err(); err != nil {
		t.Fatalf("boundary truncation should stay silent, got %v", err)
	}
}

func TestReaderStopsAtDeclaredFrameCount(t *testing.T) {
	// Declared: one mono 16-bit frame. Present: three frames of bytes.
	stream := wavtest.New().
		Fmt(FormatPCM, 1, 44100, 0, 0, 16).
		DataSized(2, wavtest.Samples(2, 11, 12, 13)).
		Reader()

	r, err := NewReader(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame, err := r.Next()
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}

	if got := frame.Samples(); !slices.Equal(got, []uint32{11}) {
		t.Fatalf("frame %v, want [11]", got)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF past the declared count, got %v", err)
	}

	if err := r.Err(); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
}

func TestReaderFramesSingleUse(t *testing.T) {
	stream := wavtest.New().
		Fmt(FormatPCM, 1, 8000, 8000, 1, 8).
		Data([]byte{1, 2, 3, 4, 5}).
		Reader()

	r, err := NewReader(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var first []uint32
	for frame := range r.Frames() {
		first = append(first, frame.Samples()...)
		if len(first) == 2 {
			break
		}
	}

	// A later Next picks up right where the range left off.
	frame, err := r.Next()
	if err != nil {
		t.Fatalf("failed to resume after break: %v", err)
	}

	if got := frame.Samples(); !slices.Equal(got, []uint32{3}) {
		t.Fatalf("resumed frame %v, want [3]", got)
	}

	var rest []uint32
	for frame := range r.Frames() {
		rest = append(rest, frame.Samples()...)
	}

	if !slices.Equal(rest, []uint32{4, 5}) {
		t.Fatalf("remaining frames %v, want [4 5]", rest)
	}
}

func TestOpen(t *testing.T) {
	data := wavtest.New().
		Fmt(FormatPCM, 2, 48000, 288000, 6, 24).
		Data(wavtest.Samples(3, 19581, 19581)).
		Bytes()

	path := filepath.Join(t.TempDir(), "take.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.Info().TotalFrames; got != 1 {
		t.Fatalf("TotalFrames=%d, want 1", got)
	}

	frame, err := r.Next()
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}

	if got := frame.Samples(); !slices.Equal(got, []uint32{19581, 19581}) {
		t.Fatalf("frame %v, want [19581 19581]", got)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenInvalidHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("RIFFxxxxJUNK"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Open(path); !errors.Is(err, ErrNotWaveFile) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReaderCloseWithoutCloser(t *testing.T) {
	stream := wavtest.New().
		Fmt(FormatPCM, 1, 8000, 8000, 1, 8).
		Data([]byte{1}).
		Reader()

	r, err := NewReader(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close on a plain reader should be a no-op, got %v", err)
	}
}
