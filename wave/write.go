package wave

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

// WriteMono writes a mono sample sequence as a 16-bit PCM file.
func WriteMono(path string, data []float64, sampleRate int) error {
	return writePCM16(path, data, sampleRate, 1)
}

// WriteStereo writes left/right sample sequences as an interleaved 16-bit
// PCM file.
func WriteStereo(path string, left, right []float64, sampleRate int) error {
	if len(left) != len(right) {
		return fmt.Errorf("wave: left/right length mismatch: %d != %d", len(left), len(right))
	}
	data := make([]float64, len(left)*2)
	for i := range left {
		data[i*2] = left[i]
		data[i*2+1] = right[i]
	}
	return writePCM16(path, data, sampleRate, 2)
}

func writePCM16(path string, interleaved []float64, sampleRate, channels int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	defer enc.Close()

	data := make([]float32, len(interleaved))
	for i, v := range interleaved {
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		data[i] = float32(v)
	}
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	return enc.Write(buf)
}
