package intcode

import (
	"github.com/chronos-tachyon/assert"
)

// WriteRice writes x divided by 2^p as an Elias-gamma quotient,
// followed by a p-bit remainder.
func WriteRice(sink BitSink, x uint64, p byte) {
	assert.Assertf(uint(p) < wordBits, "Rice exponent %d out of range [0, %d)", p, wordBits)
	q := x >> p
	WriteEliasGamma(sink, q+1)    // gamma cannot take zero
	WriteBinary(sink, x, uint(p)) // the Golomb remainder equals the low p bits of x
}

// ReadRice reads an integer written by WriteRice with the same
// exponent.
func ReadRice(src BitSource, p byte) uint64 {
	assert.Assertf(uint(p) < wordBits, "Rice exponent %d out of range [0, %d)", p, wordBits)
	q := ReadEliasGamma(src) - 1
	return (q << p) | ReadBinary(src, uint(p))
}

// EncodeRice writes x relative to u as a Rice code with exponent p.
func EncodeRice(sink BitSink, x uint64, p byte, u Universe) {
	WriteRice(sink, u.Rel(x), p)
}

// DecodeRice reads an integer encoded with EncodeRice.
func DecodeRice(src BitSource, p byte, u Universe) uint64 {
	return u.Abs(ReadRice(src, p))
}

// Rice is a Rice coder with a fixed Golomb exponent; the divisor is
// 2^Exponent.
type Rice struct {
	Exponent byte
}

// Encode writes x relative to u as a Rice code.
func (c Rice) Encode(sink BitSink, x uint64, u Universe) {
	EncodeRice(sink, x, c.Exponent, u)
}

// Decode reads an integer encoded with Encode.
func (c Rice) Decode(src BitSource, u Universe) uint64 {
	return DecodeRice(src, c.Exponent, u)
}

var _ IntegerEncoder = Rice{}
var _ IntegerDecoder = Rice{}
