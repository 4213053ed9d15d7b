package wave

// Buffer holds a channel-averaged mono sample sequence and its rate.
//
// A Buffer is read-only input to the analysis engines; slicing produces a
// new backing array, so several analyses can run over the same decode.
type Buffer struct {
	Data       []float64
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Data)) / float64(b.SampleRate)
}

// Slice copies the [start, end) second interval into a new buffer.
// Bounds are clamped to the available samples.
func (b *Buffer) Slice(start, end float64) *Buffer {
	lo := int(start * float64(b.SampleRate))
	hi := int(end * float64(b.SampleRate))
	if lo < 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if hi > len(b.Data) {
		hi = len(b.Data)
	}
	if lo > hi {
		lo = hi
	}
	out := make([]float64, hi-lo)
	copy(out, b.Data[lo:hi])
	return &Buffer{Data: out, SampleRate: b.SampleRate}
}
