package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tngsk/audiotools/spectrogram"
	"github.com/tngsk/audiotools/timerange"
	"github.com/tngsk/audiotools/waveform"
)

func testSeries() waveform.Series {
	return waveform.Series{
		Peak:       []float64{0, 0.5, -0.5},
		RMS:        []float64{0.1, 0.2, 0.3},
		SampleRate: 10,
	}
}

func TestForFormat(t *testing.T) {
	for _, name := range []string{"csv", "json", "CSV", " json "} {
		if _, err := ForFormat(name); err != nil {
			t.Fatalf("ForFormat(%q): %v", name, err)
		}
	}
	if _, err := ForFormat("xml"); err == nil {
		t.Fatal("ForFormat(xml) succeeded, want error")
	}
}

func TestExtension(t *testing.T) {
	if got := Extension("json"); got != "json" {
		t.Fatalf("Extension(json) = %q", got)
	}
	if got := Extension("csv"); got != "csv" {
		t.Fatalf("Extension(csv) = %q", got)
	}
}

func TestCSVWaveform(t *testing.T) {
	r, err := ForFormat("csv")
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	opts := WaveformOptions{StartTime: 1, IncludeRMS: true}
	if err := r.RenderWaveform(&buf, testSeries(), opts); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != "time,peak,rms" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1,0,0.1" {
		t.Fatalf("first row = %q", lines[1])
	}
	if lines[2] != "1.1,0.5,0.2" {
		t.Fatalf("second row = %q", lines[2])
	}
}

func TestCSVWaveformWithoutRMS(t *testing.T) {
	r, _ := ForFormat("csv")

	var buf strings.Builder
	if err := r.RenderWaveform(&buf, testSeries(), WaveformOptions{}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "time,peak" {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.Count(lines[1], ",") != 1 {
		t.Fatalf("row has extra columns: %q", lines[1])
	}
}

func TestJSONWaveformRoundTrip(t *testing.T) {
	r, err := ForFormat("json")
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	opts := WaveformOptions{
		StartTime:    2,
		Scale:        waveform.ScaleAmplitude,
		IncludeRMS:   true,
		GridInterval: 0.5,
		Annotations:  []timerange.Annotation{{Time: 2.1, Label: "hit"}},
	}
	if err := r.RenderWaveform(&buf, testSeries(), opts); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		SampleRate   int       `json:"sample_rate"`
		StartTime    float64   `json:"start_time"`
		Scale        string    `json:"scale"`
		GridInterval float64   `json:"grid_interval"`
		Time         []float64 `json:"time"`
		Peak         []float64 `json:"peak"`
		RMS          []float64 `json:"rms"`
		Annotations  []struct {
			Time  float64 `json:"time"`
			Label string  `json:"label"`
		} `json:"annotations"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.SampleRate != 10 || doc.StartTime != 2 || doc.Scale != "amplitude" {
		t.Fatalf("doc metadata = %+v", doc)
	}
	if len(doc.Time) != 3 || len(doc.Peak) != 3 || len(doc.RMS) != 3 {
		t.Fatalf("track lengths = %d/%d/%d", len(doc.Time), len(doc.Peak), len(doc.RMS))
	}
	if doc.Time[2] != 2.2 {
		t.Fatalf("time[2] = %v, want 2.2", doc.Time[2])
	}
	if len(doc.Annotations) != 1 || doc.Annotations[0].Label != "hit" {
		t.Fatalf("annotations = %+v", doc.Annotations)
	}
}

func TestJSONWaveformOmitsEmptyRMS(t *testing.T) {
	r, _ := ForFormat("json")

	var buf strings.Builder
	if err := r.RenderWaveform(&buf, testSeries(), WaveformOptions{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"rms"`) {
		t.Fatal("rms key present without IncludeRMS")
	}
	if strings.Contains(buf.String(), `"annotations"`) {
		t.Fatal("annotations key present without annotations")
	}
}

func TestSpectrogramRenderers(t *testing.T) {
	samples := make([]float64, 512)
	sp, err := spectrogram.Compute(samples, 8000, spectrogram.Params{
		FFTSize: 256,
		Overlap: 0.5,
		MinFreq: 10,
		MaxFreq: 4000,
	})
	if err != nil {
		t.Fatal(err)
	}

	var csvBuf strings.Builder
	cr, _ := ForFormat("csv")
	if err := cr.RenderSpectrogram(&csvBuf, sp); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	if lines[0] != "time,frequency,magnitude_db" {
		t.Fatalf("header = %q", lines[0])
	}
	wantRows := 1 + len(sp.Frames)*sp.Bins()
	if len(lines) != wantRows {
		t.Fatalf("got %d lines, want %d", len(lines), wantRows)
	}

	var jsonBuf strings.Builder
	jr, _ := ForFormat("json")
	if err := jr.RenderSpectrogram(&jsonBuf, sp); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		SampleRate  int         `json:"sample_rate"`
		FFTSize     int         `json:"fft_size"`
		HopSize     int         `json:"hop_size"`
		Frequencies []float64   `json:"frequencies"`
		Times       []float64   `json:"times"`
		MagnitudeDB [][]float64 `json:"magnitude_db"`
	}
	if err := json.Unmarshal([]byte(jsonBuf.String()), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.FFTSize != 256 || doc.HopSize != 128 || doc.SampleRate != 8000 {
		t.Fatalf("doc metadata = %+v", doc)
	}
	if len(doc.MagnitudeDB) != len(sp.Frames) || len(doc.Frequencies) != sp.Bins() {
		t.Fatalf("matrix shape = %dx%d", len(doc.MagnitudeDB), len(doc.Frequencies))
	}
}
