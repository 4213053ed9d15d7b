package wave

import (
	"math"
	"testing"
)

func TestResampledSameRateIsIdentity(t *testing.T) {
	b := &Buffer{Data: []float64{0, 0.25, 0.5}, SampleRate: 44100}
	out, err := b.Resampled(44100)
	if err != nil {
		t.Fatal(err)
	}
	if out != b {
		t.Fatal("same-rate resample should return the receiver")
	}
}

func TestResampledHalvesRate(t *testing.T) {
	const (
		from = 44100
		to   = 22050
		freq = 440.0
	)
	data := make([]float64, from)
	for i := range data {
		data[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/from)
	}
	b := &Buffer{Data: data, SampleRate: from}

	out, err := b.Resampled(to)
	if err != nil {
		t.Fatal(err)
	}
	if out.SampleRate != to {
		t.Fatalf("sample rate = %d, want %d", out.SampleRate, to)
	}

	// Same one-second span at half the rate, within filter latency slack.
	if got, want := float64(len(out.Data)), float64(to); math.Abs(got-want)/want > 0.1 {
		t.Fatalf("resampled length = %d, want about %d", len(out.Data), to)
	}

	var peak float64
	for _, x := range out.Data {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}
	if peak < 0.4 || peak > 0.6 {
		t.Fatalf("peak after resample = %v, want near 0.5", peak)
	}
}
