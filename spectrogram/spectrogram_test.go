package spectrogram

import (
	"math"
	"testing"
)

func makeSine(freq float64, sampleRate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

func TestComputePlacesSinePeakInNearestBin(t *testing.T) {
	const (
		sr   = 8000
		freq = 1000.0
	)
	p := Params{FFTSize: 256, Overlap: 0.5, MinFreq: 10, MaxFreq: 4000}
	samples := makeSine(freq, sr, sr/2)

	sp, err := Compute(samples, sr, p)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(sp.Frames) == 0 {
		t.Fatal("expected at least one frame")
	}

	frame := sp.Frames[0]
	best := 0
	for k := range frame {
		if frame[k] > frame[best] {
			best = k
		}
	}

	binWidth := float64(sr) / float64(p.FFTSize)
	if math.Abs(sp.BinFrequency(best)-freq) > binWidth {
		t.Fatalf("peak bin at %v Hz, want within %v Hz of %v Hz",
			sp.BinFrequency(best), binWidth, freq)
	}
}

func TestComputeFrameCountAndTiming(t *testing.T) {
	const sr = 8000
	p := Params{FFTSize: 256, Overlap: 0.5, MinFreq: 10, MaxFreq: 4000}

	// One full window plus exactly one hop yields two frames.
	samples := make([]float64, 256+128)
	sp, err := Compute(samples, sr, p)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(sp.Frames) != 2 {
		t.Fatalf("frame count = %d, want 2", len(sp.Frames))
	}
	if sp.HopSize != 128 {
		t.Fatalf("hop size = %d, want 128", sp.HopSize)
	}
	if got := sp.FrameTime(1); math.Abs(got-128.0/sr) > 1e-12 {
		t.Fatalf("FrameTime(1) = %v, want %v", got, 128.0/sr)
	}
	if got := sp.BinFrequency(32); math.Abs(got-1000) > 1e-9 {
		t.Fatalf("BinFrequency(32) = %v, want 1000", got)
	}
	if bins := len(sp.Frames[0]); bins != 128 {
		t.Fatalf("bin count = %d, want 128", bins)
	}
}

func TestComputeClampsSilenceToFloor(t *testing.T) {
	samples := make([]float64, 1024)
	sp, err := Compute(samples, 8000, Params{FFTSize: 256, Overlap: 0, MinFreq: 10, MaxFreq: 4000})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	for f, frame := range sp.Frames {
		for k, db := range frame {
			if db != MinDB {
				t.Fatalf("frame %d bin %d = %v, want floor %v", f, k, db, MinDB)
			}
		}
	}
}

func TestComputeRejectsBadParams(t *testing.T) {
	samples := make([]float64, 4096)
	cases := []Params{
		{FFTSize: 0, Overlap: 0.5},
		{FFTSize: 1024, Overlap: 1.0},
		{FFTSize: 1024, Overlap: -0.1},
		{FFTSize: 1024, Overlap: 0.9999}, // hop collapses to zero
	}
	for _, p := range cases {
		if _, err := Compute(samples, 8000, p); err == nil {
			t.Fatalf("Compute(%+v) succeeded, want error", p)
		}
	}
}

func TestLogFrequencyTicks(t *testing.T) {
	got := LogFrequencyTicks(10, 20000)
	want := []float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}
	if len(got) != len(want) {
		t.Fatalf("ticks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLogFrequencyTicksRespectsBounds(t *testing.T) {
	got := LogFrequencyTicks(100, 5000)
	want := []float64{100, 200, 500, 1000, 2000, 5000}
	if len(got) != len(want) {
		t.Fatalf("ticks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}
}
