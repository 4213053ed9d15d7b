package wave

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header is the fixed RIFF/WAVE prefix of a canonical linear-PCM file:
// every field little-endian, in declaration order, with no gaps.
//
// Chunk IDs are read as raw bytes and not validated against their expected
// ASCII tags; callers that need a trusted layout use [ReadMono], which
// walks the chunk list properly.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// ReadHeader reads the fixed header prefix from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	return h, nil
}

// String renders the header fields the way the info tool prints them.
func (h Header) String() string {
	return fmt.Sprintf(
		"WAV Header Information:\n"+
			"ChunkID: %s\n"+
			"ChunkSize: %d bytes\n"+
			"Format: %s\n"+
			"Subchunk1ID: %s\n"+
			"Subchunk1Size: %d bytes\n"+
			"Audio Format: %d (1 = PCM)\n"+
			"Number of Channels: %d\n"+
			"Sample Rate: %d Hz\n"+
			"Byte Rate: %d bytes/sec\n"+
			"Block Align: %d bytes\n"+
			"Bits per Sample: %d bits",
		h.ChunkID[:], h.ChunkSize, h.Format[:], h.Subchunk1ID[:], h.Subchunk1Size,
		h.AudioFormat, h.NumChannels, h.SampleRate, h.ByteRate,
		h.BlockAlign, h.BitsPerSample)
}
