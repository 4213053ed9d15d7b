package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tngsk/audiotools/export"
	"github.com/tngsk/audiotools/internal/batch"
	"github.com/tngsk/audiotools/onset"
	"github.com/tngsk/audiotools/timerange"
	"github.com/tngsk/audiotools/wave"
	"github.com/tngsk/audiotools/waveform"
)

type options struct {
	scale       waveform.Scale
	timeRange   *timerange.Range
	autoStart   bool
	onsetConfig onset.Config
	annotations []timerange.Annotation
	includeRMS  bool
	resampleTo  int
	renderer    export.Renderer
	extension   string
}

func main() {
	input := flag.String("input", "", "Input WAV file or directory")
	format := flag.String("format", "csv", "Output format: csv or json")
	scaleName := flag.String("scale", "amplitude", "Vertical scale: amplitude or decibel")
	startSpec := flag.String("start", "", "Start time (seconds, MM:SS, or percent like 25%)")
	endSpec := flag.String("end", "", "End time (seconds, MM:SS, or percent like 75%)")
	autoStart := flag.Bool("auto-start", false, "Detect the signal onset and start there")
	threshold := flag.Float64("threshold", 0.01, "Onset RMS threshold")
	windowSize := flag.Int("window-size", 512, "Onset RMS window size in samples")
	minDuration := flag.Float64("min-duration", 0.01, "Onset minimum duration in seconds")
	annotate := flag.String("annotate", "", "Comma-separated time:label annotations")
	showRMS := flag.Bool("rms", true, "Include the RMS track")
	resampleTo := flag.Int("resample", 0, "Resample to this rate before analysis (0 keeps the source rate)")
	recursive := flag.Bool("recursive", false, "Process directories recursively")
	workers := flag.String("workers", "1", "Parallel per-file workers (number or 'auto')")
	flag.Parse()

	if *input == "" {
		die("-input is required")
	}

	// Configuration mistakes abort before any file is touched.
	opts := options{
		autoStart:  *autoStart,
		includeRMS: *showRMS,
		resampleTo: *resampleTo,
		extension:  export.Extension(*format),
		onsetConfig: onset.Config{
			Threshold:   *threshold,
			WindowSize:  *windowSize,
			MinDuration: *minDuration,
		},
	}

	var err error
	if opts.renderer, err = export.ForFormat(*format); err != nil {
		die("invalid -format: %v", err)
	}
	if opts.scale, err = waveform.ParseScale(*scaleName); err != nil {
		die("invalid -scale: %v", err)
	}
	if opts.timeRange, err = parseRange(*startSpec, *endSpec); err != nil {
		die("invalid time range: %v", err)
	}
	if opts.annotations, err = parseAnnotations(*annotate); err != nil {
		die("invalid -annotate: %v", err)
	}

	workerCount, err := batch.ParseWorkers(*workers)
	if err != nil {
		die("invalid -workers: %v", err)
	}

	paths, err := batch.Collect(*input, *recursive, []string{"wav"})
	if err != nil {
		die("failed to collect input files: %v", err)
	}
	if len(paths) == 0 {
		die("no WAV files found under %s", *input)
	}

	errs := batch.Run(paths, workerCount, func(path string) error {
		outPath, err := processFile(path, opts)
		if err != nil {
			return err
		}
		fmt.Printf("Created waveform: %s -> %s\n", path, outPath)
		return nil
	})
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "error processing %v\n", err)
	}
}

func processFile(path string, opts options) (string, error) {
	buf, err := wave.ReadMono(path)
	if err != nil {
		return "", err
	}
	if opts.resampleTo > 0 {
		if buf, err = buf.Resampled(opts.resampleTo); err != nil {
			return "", err
		}
	}

	start, end, err := resolveWindow(buf, opts)
	if err != nil {
		return "", err
	}

	window := buf.Slice(start, end)
	series := waveform.Compute(window.Data, window.SampleRate)

	outPath := replaceExtension(path, opts.extension)
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	err = opts.renderer.RenderWaveform(f, series, export.WaveformOptions{
		StartTime:    start,
		Scale:        opts.scale,
		IncludeRMS:   opts.includeRMS,
		GridInterval: waveform.GridInterval(end - start),
		Annotations:  opts.annotations,
	})
	if err != nil {
		return "", err
	}
	return outPath, nil
}

// resolveWindow applies onset detection and/or the requested time range to
// the full buffer duration. A missing onset falls back to the start of the
// file rather than failing the whole analysis.
func resolveWindow(buf *wave.Buffer, opts options) (float64, float64, error) {
	total := buf.Duration()

	if opts.autoStart {
		start, found := onset.DetectStartTime(buf.Data, buf.SampleRate, opts.onsetConfig)
		if !found {
			fmt.Fprintf(os.Stderr, "no onset found, using full duration\n")
			start = 0
		}
		end := total
		if opts.timeRange != nil {
			r := &timerange.Range{Start: timerange.Seconds(start), End: opts.timeRange.End}
			if _, e, err := r.Resolve(total); err == nil {
				end = e
			}
		}
		return start, end, nil
	}

	if opts.timeRange != nil {
		return opts.timeRange.Resolve(total)
	}
	return 0, total, nil
}

func parseRange(startSpec, endSpec string) (*timerange.Range, error) {
	var start, end *timerange.Spec
	if startSpec != "" {
		s, err := timerange.ParseSpec(startSpec)
		if err != nil {
			return nil, err
		}
		start = &s
	}
	if endSpec != "" {
		e, err := timerange.ParseSpec(endSpec)
		if err != nil {
			return nil, err
		}
		end = &e
	}
	return timerange.NewRange(start, end), nil
}

func parseAnnotations(raw string) ([]timerange.Annotation, error) {
	if raw == "" {
		return nil, nil
	}
	var out []timerange.Annotation
	for _, part := range strings.Split(raw, ",") {
		a, err := timerange.ParseAnnotation(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func replaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
