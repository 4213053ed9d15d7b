package wave

import (
	dspresample "github.com/cwbudde/algo-dsp/dsp/resample"
)

// Resampled returns the buffer converted to targetRate. The receiver is
// returned unchanged when the rates already match.
func (b *Buffer) Resampled(targetRate int) (*Buffer, error) {
	if b.SampleRate == targetRate {
		return b, nil
	}
	r, err := dspresample.NewForRates(
		float64(b.SampleRate),
		float64(targetRate),
		dspresample.WithQuality(dspresample.QualityBest),
	)
	if err != nil {
		return nil, err
	}
	return &Buffer{Data: r.Process(b.Data), SampleRate: targetRate}, nil
}
