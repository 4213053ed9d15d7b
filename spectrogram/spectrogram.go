// Package spectrogram computes time-frequency magnitude matrices via
// windowed, overlapping Fourier transforms.
package spectrogram

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

// MinDB is the magnitude floor in dBFS. Bins with zero magnitude clamp
// here instead of reaching log10(0).
const MinDB = -128.0

// Params configures a spectrogram computation.
type Params struct {
	// FFTSize is the analysis window length in samples.
	FFTSize int
	// Overlap is the fraction of each window shared with the next, in
	// [0, 1).
	Overlap float64
	// MinFreq and MaxFreq are display bounds in Hz. They drive the tick
	// ladder only; every bin stays in the frame output and consumers
	// filter by frequency themselves.
	MinFreq float64
	MaxFreq float64
}

// DefaultParams returns the stock analysis settings.
func DefaultParams() Params {
	return Params{
		FFTSize: 1024,
		Overlap: 0.5,
		MinFreq: 10,
		MaxFreq: 20000,
	}
}

// Spectrogram is an ordered sequence of per-frame magnitude-in-dB bins.
// Frame f starts at sample f*HopSize; bin k is centered on
// k*SampleRate/FFTSize Hz.
type Spectrogram struct {
	Frames     [][]float64
	FFTSize    int
	HopSize    int
	SampleRate int
	Ticks      []float64
}

// Bins returns the per-frame bin count.
func (s *Spectrogram) Bins() int { return s.FFTSize / 2 }

// BinFrequency returns the center frequency of bin k in Hz.
func (s *Spectrogram) BinFrequency(k int) float64 {
	return float64(k) * float64(s.SampleRate) / float64(s.FFTSize)
}

// FrameTime returns the start time of frame f in seconds.
func (s *Spectrogram) FrameTime(f int) float64 {
	return float64(f) * float64(s.HopSize) / float64(s.SampleRate)
}

// Compute runs a short-time Fourier transform over samples. Each frame is
// multiplied by a Hann window, transformed, and reduced to FFTSize/2
// magnitude bins as 20*log10(|X[k]|/N), clamped at [MinDB].
func Compute(samples []float64, sampleRate int, p Params) (*Spectrogram, error) {
	if p.FFTSize <= 0 {
		return nil, fmt.Errorf("spectrogram: fft size must be > 0: %d", p.FFTSize)
	}
	if p.Overlap < 0 || p.Overlap >= 1 {
		return nil, fmt.Errorf("spectrogram: overlap must be in [0,1): %v", p.Overlap)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrogram: sample rate must be > 0: %d", sampleRate)
	}
	hop := int(float64(p.FFTSize) * (1 - p.Overlap))
	if hop < 1 {
		return nil, fmt.Errorf("spectrogram: overlap %v leaves hop size zero", p.Overlap)
	}

	plan, err := algofft.NewPlan64(p.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("spectrogram: fft plan: %w", err)
	}
	win := window.Generate(window.TypeHann, p.FFTSize, window.WithPeriodic())

	out := &Spectrogram{
		FFTSize:    p.FFTSize,
		HopSize:    hop,
		SampleRate: sampleRate,
		Ticks:      LogFrequencyTicks(p.MinFreq, p.MaxFreq),
	}

	input := make([]complex128, p.FFTSize)
	output := make([]complex128, p.FFTSize)
	norm := float64(p.FFTSize)

	for i := 0; i+p.FFTSize <= len(samples); i += hop {
		for j := 0; j < p.FFTSize; j++ {
			input[j] = complex(samples[i+j]*win[j], 0)
		}
		if err := plan.Forward(output, input); err != nil {
			return nil, fmt.Errorf("spectrogram: fft: %w", err)
		}

		mags := spectrum.Magnitude(output[:p.FFTSize/2])
		frame := make([]float64, p.FFTSize/2)
		for k, m := range mags {
			db := 20 * math.Log10(m/norm)
			if db < MinDB || math.IsNaN(db) {
				db = MinDB
			}
			frame[k] = db
		}
		out.Frames = append(out.Frames, frame)
	}
	return out, nil
}

// LogFrequencyTicks builds the logarithmic axis tick set: decades from
// 10 Hz up to maxFreq with x2 and x5 intermediates, restricted to
// [minFreq, maxFreq], ascending.
func LogFrequencyTicks(minFreq, maxFreq float64) []float64 {
	var ticks []float64
	for freq := 10.0; freq <= maxFreq; freq *= 10 {
		if freq >= minFreq {
			ticks = append(ticks, freq)
		}
		if freq*2 >= minFreq && freq*2 <= maxFreq {
			ticks = append(ticks, freq*2)
		}
		if freq*5 >= minFreq && freq*5 <= maxFreq {
			ticks = append(ticks, freq*5)
		}
	}
	sort.Float64s(ticks)
	return ticks
}
