package intcode

import (
	"math"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// WriteEliasGamma writes x as its bit width minus one in unary,
// followed by the bits of x below its leading 1-bit.  x must be
// positive.
func WriteEliasGamma(sink BitSink, x uint64) {
	assert.Assertf(x > 0, "cannot gamma-code zero")
	m := uint(mathbits.Len64(x)) - 1
	WriteUnary(sink, uint64(m))
	if m > 0 {
		WriteBinary(sink, x, m) // cut off the leading 1-bit
	}
}

// ReadEliasGamma reads an integer written by WriteEliasGamma.
func ReadEliasGamma(src BitSource) uint64 {
	m := ReadUnary(src)
	if m == 0 {
		return 1
	}
	return setBit(uint(m)) | ReadBinary(src, uint(m))
}

// EncodeEliasGamma writes x relative to u.  The relative value is
// offset by one so that zero becomes encodable; a relative value of the
// maximum uint64 cannot be represented at all.
func EncodeEliasGamma(sink BitSink, x uint64, u Universe) {
	rel := u.Rel(x)
	assert.Assertf(rel < math.MaxUint64, "relative value %d cannot be gamma-coded", rel)
	WriteEliasGamma(sink, rel+1)
}

// DecodeEliasGamma reads an integer encoded with EncodeEliasGamma.
func DecodeEliasGamma(src BitSource, u Universe) uint64 {
	return u.Abs(ReadEliasGamma(src)) - 1
}

// EliasGamma is the Elias-gamma coder.
type EliasGamma struct{}

// Encode writes x relative to u in Elias-gamma.
func (EliasGamma) Encode(sink BitSink, x uint64, u Universe) {
	EncodeEliasGamma(sink, x, u)
}

// Decode reads an integer encoded with Encode.
func (EliasGamma) Decode(src BitSource, u Universe) uint64 {
	return DecodeEliasGamma(src, u)
}

var _ IntegerEncoder = EliasGamma{}
var _ IntegerDecoder = EliasGamma{}
