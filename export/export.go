// Package export turns analysis results into plain numeric artifacts.
//
// Pixel rendering lives outside this repository; a renderer consumes the
// same series the CSV and JSON writers here do, with no presentation
// concerns attached.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tngsk/audiotools/spectrogram"
	"github.com/tngsk/audiotools/timerange"
	"github.com/tngsk/audiotools/waveform"
)

// WaveformOptions carries the window placement and display hints that
// travel with a waveform series.
type WaveformOptions struct {
	// StartTime is the absolute time of the first sample in seconds.
	StartTime float64
	// Scale selects amplitude or decibel values.
	Scale waveform.Scale
	// IncludeRMS keeps the RMS track in the output.
	IncludeRMS bool
	// GridInterval is the chosen time-axis step in seconds.
	GridInterval float64
	// Annotations are labelled time points inside the window.
	Annotations []timerange.Annotation
}

// Renderer materializes analysis series. Implementations must not read
// anything beyond the numeric data they are handed.
type Renderer interface {
	RenderWaveform(w io.Writer, s waveform.Series, o WaveformOptions) error
	RenderSpectrogram(w io.Writer, sp *spectrogram.Spectrogram) error
}

// ForFormat returns the renderer for a format name ("csv" or "json").
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return csvRenderer{}, nil
	case "json":
		return jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("export: unknown format %q (use csv or json)", name)
	}
}

// Extension returns the file extension for a format name.
func Extension(name string) string {
	if strings.EqualFold(strings.TrimSpace(name), "json") {
		return "json"
	}
	return "csv"
}
