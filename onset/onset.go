// Package onset finds the first sustained energy rise in a sample
// sequence, refined to the nearest zero crossing.
package onset

import "math"

// Config controls onset detection.
type Config struct {
	// Threshold is the RMS level that arms the detector.
	Threshold float64
	// WindowSize is the sliding RMS window length in samples.
	WindowSize int
	// MinDuration is how long the rise must persist, in seconds.
	MinDuration float64
}

// DefaultConfig returns the stock detector settings: an RMS threshold of
// 0.01 (about -40 dBFS) over a 512-sample window, held for 10 ms.
func DefaultConfig() Config {
	return Config{
		Threshold:   0.01,
		WindowSize:  512,
		MinDuration: 0.01,
	}
}

// DetectStartTime scans samples for the first window whose RMS exceeds the
// threshold and stays armed for MinDuration. It returns the onset in
// seconds, refined to the nearest zero crossing, and false when no
// sustained onset exists.
//
// The scan is a single forward pass: once armed the detector never
// re-idles, even if the level drops again before the hold time elapses.
func DetectStartTime(samples []float64, sampleRate int, cfg Config) (float64, bool) {
	if cfg.WindowSize <= 0 || sampleRate <= 0 || len(samples) < cfg.WindowSize {
		return 0, false
	}

	minSamples := int(cfg.MinDuration * float64(sampleRate))
	triggered := false
	potentialStart := 0

	for i := 0; i+cfg.WindowSize <= len(samples); i++ {
		if !triggered {
			if rms(samples[i:i+cfg.WindowSize]) > cfg.Threshold {
				triggered = true
				potentialStart = i
			}
			continue
		}
		if i-potentialStart >= minSamples {
			// Refine through the confirming analysis window so a
			// silence-to-signal boundary lands on the first sample that
			// carries energy.
			limit := i + cfg.WindowSize
			if limit > len(samples) {
				limit = len(samples)
			}
			for j := potentialStart; j+1 < limit; j++ {
				if isZeroCrossing(samples[j], samples[j+1]) {
					return float64(j+1) / float64(sampleRate), true
				}
			}
			return float64(potentialStart) / float64(sampleRate), true
		}
	}
	return 0, false
}

func rms(window []float64) float64 {
	var sum float64
	for _, x := range window {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(window)))
}

// isZeroCrossing reports a sign change between adjacent samples. A
// transition out of exact zero counts, so silence followed by signal is a
// crossing.
func isZeroCrossing(a, b float64) bool {
	return (a <= 0 && b > 0) || (a >= 0 && b < 0)
}
