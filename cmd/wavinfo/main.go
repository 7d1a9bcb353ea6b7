// This tool prints the stream parameters of the passed wav file and
// optionally the leading frames of its PCM data.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavefile"
)

const missingPathMessage = "You must pass the path of the file to inspect"

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
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	frames := flagSet.Int("frames", 0, "number of leading frames to print")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	r, err := wavefile.Open(flagSet.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	info := r.Info()
	fmt.Fprintf(out, "AudioFormat: %d\n", info.AudioFormat)
	fmt.Fprintf(out, "NumChannels: %d\n", info.NumChannels)
	fmt.Fprintf(out, "SampleRate: %d\n", info.SampleRate)
	fmt.Fprintf(out, "AvgBytesPerSec: %d\n", info.AvgBytesPerSec)
	fmt.Fprintf(out, "BlockAlign: %d\n", info.BlockAlign)
	fmt.Fprintf(out, "BitsPerSample: %d\n", info.BitsPerSample)
	fmt.Fprintf(out, "TotalFrames: %d\n", info.TotalFrames)
	fmt.Fprintf(out, "Duration: %s\n", info.Duration())

	for i := range *frames {
		frame, err := r.Next()
		if err != nil {
			break
		}

		fmt.Fprintf(out, "frame[%d]: %v\n", i, frame.Samples())
	}

	if err := r.Err(); err != nil {
		return fmt.Errorf("failed to read frames: %w", err)
	}

	return nil
}
