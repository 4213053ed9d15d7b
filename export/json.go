package export

import (
	"encoding/json"
	"io"

	"github.com/tngsk/audiotools/spectrogram"
	"github.com/tngsk/audiotools/waveform"
)

type jsonRenderer struct{}

type waveformDoc struct {
	SampleRate   int              `json:"sample_rate"`
	StartTime    float64          `json:"start_time"`
	Scale        string           `json:"scale"`
	GridInterval float64          `json:"grid_interval"`
	Time         []float64        `json:"time"`
	Peak         []float64        `json:"peak"`
	RMS          []float64        `json:"rms,omitempty"`
	Annotations  []annotationDoc  `json:"annotations,omitempty"`
}

type annotationDoc struct {
	Time  float64 `json:"time"`
	Label string  `json:"label"`
}

type spectrogramDoc struct {
	SampleRate  int         `json:"sample_rate"`
	FFTSize     int         `json:"fft_size"`
	HopSize     int         `json:"hop_size"`
	Ticks       []float64   `json:"frequency_ticks"`
	Frequencies []float64   `json:"frequencies"`
	Times       []float64   `json:"times"`
	MagnitudeDB [][]float64 `json:"magnitude_db"`
}

// RenderWaveform writes the series as one JSON document.
func (jsonRenderer) RenderWaveform(w io.Writer, s waveform.Series, o WaveformOptions) error {
	doc := waveformDoc{
		SampleRate:   s.SampleRate,
		StartTime:    o.StartTime,
		Scale:        o.Scale.String(),
		GridInterval: o.GridInterval,
		Time:         make([]float64, s.Len()),
		Peak:         make([]float64, s.Len()),
	}
	if o.IncludeRMS {
		doc.RMS = make([]float64, s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		doc.Time[i] = o.StartTime + float64(i)/float64(s.SampleRate)
		doc.Peak[i] = o.Scale.Convert(s.Peak[i])
		if o.IncludeRMS {
			doc.RMS[i] = o.Scale.Convert(s.RMS[i])
		}
	}
	for _, a := range o.Annotations {
		doc.Annotations = append(doc.Annotations, annotationDoc{Time: a.Time, Label: a.Label})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// RenderSpectrogram writes the frame matrix plus its axis data as one
// JSON document.
func (jsonRenderer) RenderSpectrogram(w io.Writer, sp *spectrogram.Spectrogram) error {
	doc := spectrogramDoc{
		SampleRate:  sp.SampleRate,
		FFTSize:     sp.FFTSize,
		HopSize:     sp.HopSize,
		Ticks:       sp.Ticks,
		Frequencies: make([]float64, sp.Bins()),
		Times:       make([]float64, len(sp.Frames)),
		MagnitudeDB: sp.Frames,
	}
	for k := range doc.Frequencies {
		doc.Frequencies[k] = sp.BinFrequency(k)
	}
	for f := range doc.Times {
		doc.Times[f] = sp.FrameTime(f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
