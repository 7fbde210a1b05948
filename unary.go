package intcode

import (
	"math"
)

// WriteUnary writes x as x 1-bits followed by a terminating 0-bit.  The
// 1-bits go out in word-sized chunks.
func WriteUnary(sink BitSink, x uint64) {
	for x >= wordBits {
		sink.WriteBits(math.MaxUint64, wordBits)
		x -= wordBits
	}
	sink.WriteBits(math.MaxUint64, uint(x))
	sink.WriteBit(false)
}

// ReadUnary counts the 1-bits before the first 0-bit and also consumes
// that 0-bit; the terminator is not part of the count.
func ReadUnary(src BitSource) uint64 {
	var x uint64
	for src.ReadBit() {
		x++
	}
	return x
}

// EncodeUnary writes x relative to u in unary.
func EncodeUnary(sink BitSink, x uint64, u Universe) {
	WriteUnary(sink, u.Rel(x))
}

// DecodeUnary reads an integer encoded with EncodeUnary.
func DecodeUnary(src BitSource, u Universe) uint64 {
	return u.Abs(ReadUnary(src))
}

// Unary is the unary coder.
type Unary struct{}

// Encode writes x relative to u in unary.
func (Unary) Encode(sink BitSink, x uint64, u Universe) {
	EncodeUnary(sink, x, u)
}

// Decode reads an integer encoded with Encode.
func (Unary) Decode(src BitSource, u Universe) uint64 {
	return DecodeUnary(src, u)
}

var _ IntegerEncoder = Unary{}
var _ IntegerDecoder = Unary{}
