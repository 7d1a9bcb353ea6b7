// This tool converts a wav file into an equivalent aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavefile"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

const missingPathMessage = "You must pass the path of the wav file to convert"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	sourcePath := flagSet.Arg(0)

	r, err := wavefile.Open(sourcePath)
	if err != nil {
		return err
	}
	defer r.Close()

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	if err := convert(r, outFile); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func convert(r *wavefile.Reader, w io.WriteSeeker) error {
	info := r.Info()
	encoder := aiff.NewEncoder(w, int(info.SampleRate), int(info.BitsPerSample), int(info.NumChannels))

	bufferSize := 4096 * int(info.NumChannels)
	buf := &audio.IntBuffer{Data: make([]int, bufferSize)}

	for {
		num, err := r.PCMBuffer(buf)
		if err != nil {
			return fmt.Errorf("failed to read PCM data: %w", err)
		}

		if num == 0 {
			break
		}

		chunk := &audio.IntBuffer{
			Format:         buf.Format,
			SourceBitDepth: buf.SourceBitDepth,
			Data:           buf.Data[:num],
		}

		for i, sample := range chunk.Data {
			chunk.Data[i] = signedSample(uint32(sample), int(info.BitsPerSample))
		}

		if err := encoder.Write(chunk); err != nil {
			return fmt.Errorf("failed to write aiff data: %w", err)
		}
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close aiff encoder: %w", err)
	}

	return nil
}

// signedSample reinterprets a stored unsigned wav sample as the signed PCM
// value aiff expects. 8-bit wav samples are unsigned and get centered;
// wider samples are two's complement and get sign-extended.
func signedSample(sample uint32, bitDepth int) int {
	if bitDepth == 8 {
		return int(sample) - 128
	}

	shift := 32 - min(bitDepth, 32)

	return int(int32(sample<<shift) >> shift)
}
