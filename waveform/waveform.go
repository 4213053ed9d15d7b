// Package waveform computes peak and RMS envelope tracks over a mono
// sample sequence, plus axis helpers for time-grid selection.
package waveform

import (
	"fmt"
	"math"
	"strings"
)

// DBFloor is the lowest level amplitude-to-decibel conversion reports.
const DBFloor = -60.0

// rmsWindowSeconds is the width of the centered RMS window.
const rmsWindowSeconds = 0.02

// Series holds parallel peak and RMS tracks, one value per sample of the
// analyzed window.
type Series struct {
	Peak       []float64
	RMS        []float64
	SampleRate int
}

// Len returns the number of sample positions in the series.
func (s Series) Len() int { return len(s.Peak) }

// Compute builds the peak track (the samples themselves) and a centered
// sliding-window RMS track of identical length. The 20 ms RMS window
// narrows near the buffer edges instead of wrapping or padding.
func Compute(samples []float64, sampleRate int) Series {
	windowSize := int(math.Round(float64(sampleRate) * rmsWindowSeconds))

	peak := make([]float64, len(samples))
	copy(peak, samples)

	rms := make([]float64, len(samples))
	for i := range samples {
		start := 0
		if i >= windowSize/2 {
			start = i - windowSize/2
		}
		end := i + windowSize/2
		if end > len(samples) {
			end = len(samples)
		}

		var sumSquares float64
		for _, x := range samples[start:end] {
			sumSquares += x * x
		}
		rms[i] = math.Sqrt(sumSquares / float64(end-start))
	}

	return Series{Peak: peak, RMS: rms, SampleRate: sampleRate}
}

// AmplitudeToDB converts an amplitude to decibels relative to full scale,
// clamped at [DBFloor]. Values already at or below the floor return
// exactly the floor, so the conversion is idempotent under it.
func AmplitudeToDB(a float64) float64 {
	a = math.Abs(a)
	if a < 1e-6 {
		return DBFloor
	}
	return math.Max(20*math.Log10(a), DBFloor)
}

// gridIntervals is the ladder of usable axis intervals, milliseconds
// through minutes.
var gridIntervals = []float64{
	0.001, 0.002, 0.005,
	0.01, 0.02, 0.05,
	0.1, 0.2, 0.5,
	1, 2, 5,
	10, 20, 30,
	60, 120, 300,
}

// GridInterval picks the ladder value closest to duration/10, targeting
// about ten gridlines across the visible span.
func GridInterval(duration float64) float64 {
	const targetGridCount = 10.0
	ideal := duration / targetGridCount

	best := gridIntervals[0]
	for _, iv := range gridIntervals[1:] {
		if math.Abs(iv-ideal) < math.Abs(best-ideal) {
			best = iv
		}
	}
	return best
}

// Scale selects the vertical unit of an exported series.
type Scale int

const (
	ScaleAmplitude Scale = iota
	ScaleDecibel
)

// ParseScale parses "amplitude" or "decibel".
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "amplitude":
		return ScaleAmplitude, nil
	case "decibel":
		return ScaleDecibel, nil
	default:
		return 0, fmt.Errorf("waveform: unknown scale %q (use amplitude or decibel)", s)
	}
}

// Convert maps an amplitude value onto the scale.
func (sc Scale) Convert(a float64) float64 {
	if sc == ScaleDecibel {
		return AmplitudeToDB(a)
	}
	return a
}

// String returns the flag spelling of the scale.
func (sc Scale) String() string {
	if sc == ScaleDecibel {
		return "decibel"
	}
	return "amplitude"
}
