package intcode

import (
	"io"

	"github.com/icza/bitio"
)

// StreamSink is a BitSink that packs bits into an io.Writer.  bitio
// places the first bit of each byte in its most significant position;
// WriteBits therefore reverses its argument so that the wire carries
// the value's bit 0 first, as the BitSink contract demands.
//
// I/O errors are sticky: the first error stops all further writing and
// is reported by Err.
type StreamSink struct {
	w *bitio.Writer
	n uint64
}

// NewStreamSink returns a StreamSink writing to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: bitio.NewWriter(w)}
}

// WriteBit emits a single bit.
func (s *StreamSink) WriteBit(bit bool) {
	s.w.TryWriteBool(bit)
	s.n++
}

// WriteBits emits the low count bits of bits, LSB-first.
func (s *StreamSink) WriteBits(bits uint64, count uint) {
	if count == 0 {
		return
	}
	s.w.TryWriteBits(reverseBits(count, bits), uint8(count))
	s.n += uint64(count)
}

// Flush pads the stream to the next byte boundary with zero bits and
// commits the pending byte to the underlying writer.
func (s *StreamSink) Flush() {
	s.w.TryAlign()
}

// BitsWritten reports the number of bits written so far, not counting
// padding added by Flush.
func (s *StreamSink) BitsWritten() uint64 {
	return s.n
}

// Err reports the first I/O error encountered, if any.
func (s *StreamSink) Err() error {
	return s.w.TryError
}

var _ BitSink = (*StreamSink)(nil)

// StreamSource is the BitSource counterpart of StreamSink, unpacking
// bits from an io.Reader in the same order StreamSink wrote them.
//
// I/O errors are sticky: after the first error every read reports zero
// bits, and Err reports the error.  Decoders relying on well-formed
// streams terminate on the zero bits; callers that cannot trust their
// input must check Err afterwards.
type StreamSource struct {
	r *bitio.Reader
}

// NewStreamSource returns a StreamSource reading from r.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: bitio.NewReader(r)}
}

// ReadBit returns the next bit.
func (s *StreamSource) ReadBit() bool {
	return s.r.TryReadBool()
}

// ReadBits reads count bits; the first bit read becomes bit 0 of the
// result.
func (s *StreamSource) ReadBits(count uint) uint64 {
	if count == 0 {
		return 0
	}
	return reverseBits(count, s.r.TryReadBits(uint8(count)))
}

// Align skips ahead to the next byte boundary, mirroring a Flush on the
// sink side.
func (s *StreamSource) Align() {
	s.r.Align()
}

// Err reports the first I/O error encountered, if any.
func (s *StreamSource) Err() error {
	return s.r.TryError
}

var _ BitSource = (*StreamSource)(nil)
