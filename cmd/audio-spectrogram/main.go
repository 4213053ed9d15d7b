package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tngsk/audiotools/export"
	"github.com/tngsk/audiotools/internal/batch"
	"github.com/tngsk/audiotools/spectrogram"
	"github.com/tngsk/audiotools/wave"
)

func main() {
	input := flag.String("input", "", "Input WAV file or directory")
	format := flag.String("format", "csv", "Output format: csv or json")
	fftSize := flag.Int("window-size", 1024, "FFT window size in samples")
	overlap := flag.Float64("overlap", 0.5, "Window overlap fraction in [0,1)")
	minFreq := flag.Float64("min-freq", 10, "Lower frequency display bound in Hz")
	maxFreq := flag.Float64("max-freq", 20000, "Upper frequency display bound in Hz")
	resampleTo := flag.Int("resample", 0, "Resample to this rate before analysis (0 keeps the source rate)")
	recursive := flag.Bool("recursive", false, "Process directories recursively")
	workers := flag.String("workers", "1", "Parallel per-file workers (number or 'auto')")
	flag.Parse()

	if *input == "" {
		die("-input is required")
	}

	renderer, err := export.ForFormat(*format)
	if err != nil {
		die("invalid -format: %v", err)
	}
	workerCount, err := batch.ParseWorkers(*workers)
	if err != nil {
		die("invalid -workers: %v", err)
	}

	params := spectrogram.Params{
		FFTSize: *fftSize,
		Overlap: *overlap,
		MinFreq: *minFreq,
		MaxFreq: *maxFreq,
	}

	paths, err := batch.Collect(*input, *recursive, []string{"wav"})
	if err != nil {
		die("failed to collect input files: %v", err)
	}
	if len(paths) == 0 {
		die("no WAV files found under %s", *input)
	}

	extension := export.Extension(*format)
	errs := batch.Run(paths, workerCount, func(path string) error {
		buf, err := wave.ReadMono(path)
		if err != nil {
			return err
		}
		if *resampleTo > 0 {
			if buf, err = buf.Resampled(*resampleTo); err != nil {
				return err
			}
		}

		sp, err := spectrogram.Compute(buf.Data, buf.SampleRate, params)
		if err != nil {
			return err
		}

		outPath := strings.TrimSuffix(path, filepath.Ext(path)) + "." + extension
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := renderer.RenderSpectrogram(f, sp); err != nil {
			return err
		}
		fmt.Printf("Created spectrogram: %s -> %s\n", path, outPath)
		return nil
	})
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "error processing %v\n", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
