package wave

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

type format struct {
	audioFormat   uint16
	numChannels   int
	sampleRate    int
	bitsPerSample int
}

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// ReadMono decodes a linear-PCM file into a channel-averaged mono buffer.
//
// Integer PCM samples (8/16/24/32 bit) are normalized by 2^(bits-1);
// 32-bit IEEE float samples are taken as-is. All channels of a frame are
// averaged into one value.
func ReadMono(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := DecodeMono(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// DecodeMono decodes a linear-PCM stream positioned at the RIFF prefix.
func DecodeMono(r io.Reader) (*Buffer, error) {
	var riff struct {
		ChunkID   [4]byte
		ChunkSize uint32
		Format    [4]byte
	}
	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	if string(riff.ChunkID[:]) != "RIFF" || string(riff.Format[:]) != "WAVE" {
		return nil, ErrNotRIFF
	}

	var fm *format
	for {
		var chunk struct {
			ID   [4]byte
			Size uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrNoDataChunk
			}
			return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
		}

		switch string(chunk.ID[:]) {
		case "fmt ":
			parsed, err := readFormatChunk(r, chunk.Size)
			if err != nil {
				return nil, err
			}
			fm = parsed
		case "data":
			if fm == nil {
				return nil, fmt.Errorf("%w: data chunk before fmt", ErrNoDataChunk)
			}
			return decodeSamples(r, fm, int(chunk.Size))
		default:
			if err := skipChunk(r, chunk.Size); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
			}
		}
	}
}

func readFormatChunk(r io.Reader, size uint32) (*format, error) {
	if size < 16 {
		return nil, fmt.Errorf("%w: fmt chunk size %d", ErrTruncatedHeader, size)
	}
	var raw struct {
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	// Extensible fmt chunks carry extra bytes after the base fields.
	if err := skipChunk(r, size-16); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	if raw.NumChannels == 0 || raw.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz",
			ErrUnsupportedFormat, raw.NumChannels, raw.SampleRate)
	}
	return &format{
		audioFormat:   raw.AudioFormat,
		numChannels:   int(raw.NumChannels),
		sampleRate:    int(raw.SampleRate),
		bitsPerSample: int(raw.BitsPerSample),
	}, nil
}

func skipChunk(r io.Reader, size uint32) error {
	// Chunks are word-aligned; odd sizes are followed by a pad byte.
	n := int64(size)
	if size%2 == 1 {
		n++
	}
	_, err := io.CopyN(io.Discard, r, n)
	return err
}

func decodeSamples(r io.Reader, fm *format, size int) (*Buffer, error) {
	samples, err := readRawSamples(r, fm, size)
	if err != nil {
		return nil, err
	}

	ch := fm.numChannels
	frames := len(samples) / ch
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += samples[i*ch+c]
		}
		mono[i] = sum / float64(ch)
	}
	return &Buffer{Data: mono, SampleRate: fm.sampleRate}, nil
}

func readRawSamples(r io.Reader, fm *format, size int) ([]float64, error) {
	switch fm.audioFormat {
	case formatPCM:
	case formatIEEEFloat:
		if fm.bitsPerSample != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, fm.bitsPerSample)
		}
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, fm.audioFormat)
	}

	width := fm.bitsPerSample / 8
	switch fm.bitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, fm.bitsPerSample)
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedData, err)
	}

	count := len(raw) / width
	out := make([]float64, count)

	if fm.audioFormat == formatIEEEFloat {
		for i := 0; i < count; i++ {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			out[i] = float64(math.Float32frombits(bits))
		}
		return out, nil
	}

	norm := float64(int64(1) << (fm.bitsPerSample - 1))
	for i := 0; i < count; i++ {
		var v int64
		switch width {
		case 1:
			// 8-bit WAV stores unsigned samples centered on 128.
			v = int64(raw[i]) - 128
		case 2:
			v = int64(int16(binary.LittleEndian.Uint16(raw[i*2:])))
		case 3:
			u := uint32(raw[i*3]) | uint32(raw[i*3+1])<<8 | uint32(raw[i*3+2])<<16
			v = int64(int32(u<<8) >> 8)
		case 4:
			v = int64(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
		out[i] = float64(v) / norm
	}
	return out, nil
}
