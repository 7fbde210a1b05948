package intcode

import (
	"math"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// WriteEliasDelta writes x as its bit width in Elias-gamma, followed by
// the bits of x below its leading 1-bit.  x must be positive.
func WriteEliasDelta(sink BitSink, x uint64) {
	assert.Assertf(x > 0, "cannot delta-code zero")
	m := uint(mathbits.Len64(x))
	WriteEliasGamma(sink, uint64(m))
	if m > 1 {
		WriteBinary(sink, x, m-1) // cut off the leading 1-bit
	}
}

// ReadEliasDelta reads an integer written by WriteEliasDelta.
func ReadEliasDelta(src BitSource) uint64 {
	m := ReadEliasGamma(src)
	if m == 1 {
		return 1
	}
	return setBit(uint(m-1)) | ReadBinary(src, uint(m-1))
}

// EncodeEliasDelta writes x relative to u.  The relative value is
// offset by one so that zero becomes encodable; a relative value of the
// maximum uint64 cannot be represented at all.
func EncodeEliasDelta(sink BitSink, x uint64, u Universe) {
	rel := u.Rel(x)
	assert.Assertf(rel < math.MaxUint64, "relative value %d cannot be delta-coded", rel)
	WriteEliasDelta(sink, rel+1)
}

// DecodeEliasDelta reads an integer encoded with EncodeEliasDelta.
func DecodeEliasDelta(src BitSource, u Universe) uint64 {
	return u.Abs(ReadEliasDelta(src)) - 1
}

// EliasDelta is the Elias-delta coder.
type EliasDelta struct{}

// Encode writes x relative to u in Elias-delta.
func (EliasDelta) Encode(sink BitSink, x uint64, u Universe) {
	EncodeEliasDelta(sink, x, u)
}

// Decode reads an integer encoded with Encode.
func (EliasDelta) Decode(src BitSource, u Universe) uint64 {
	return DecodeEliasDelta(src, u)
}

var _ IntegerEncoder = EliasDelta{}
var _ IntegerDecoder = EliasDelta{}
