package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tngsk/audiotools/spectrogram"
	"github.com/tngsk/audiotools/waveform"
)

type csvRenderer struct{}

// RenderWaveform writes parallel (time, peak[, rms]) rows.
func (csvRenderer) RenderWaveform(w io.Writer, s waveform.Series, o WaveformOptions) error {
	cw := csv.NewWriter(w)

	header := []string{"time", "peak"}
	if o.IncludeRMS {
		header = append(header, "rms")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < s.Len(); i++ {
		t := o.StartTime + float64(i)/float64(s.SampleRate)
		row := []string{
			formatFloat(t),
			formatFloat(o.Scale.Convert(s.Peak[i])),
		}
		if o.IncludeRMS {
			row = append(row, formatFloat(o.Scale.Convert(s.RMS[i])))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderSpectrogram writes (time, frequency, magnitude_db) triples.
func (csvRenderer) RenderSpectrogram(w io.Writer, sp *spectrogram.Spectrogram) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "frequency", "magnitude_db"}); err != nil {
		return err
	}
	for f, frame := range sp.Frames {
		t := sp.FrameTime(f)
		for k, db := range frame {
			row := []string{
				formatFloat(t),
				formatFloat(sp.BinFrequency(k)),
				formatFloat(db),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
