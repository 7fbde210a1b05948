package intcode

import (
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// WriteVbyte writes x in blocks of b bits, lowest block first.  Each
// block is preceded by a continuation bit: 0 announces another block, 1
// the final one.
func WriteVbyte(sink BitSink, x uint64, b byte) {
	assert.Assertf(b >= 1 && uint(b) < wordBits, "vbyte block size %d out of range [1, %d)", b, wordBits)
	count := uint(mathbits.Len64(x))
	for count > uint(b) {
		sink.WriteBit(false)
		WriteBinary(sink, x, uint(b))
		x >>= b
		count -= uint(b)
	}
	sink.WriteBit(true)
	WriteBinary(sink, x, uint(b))
}

// ReadVbyte reads an integer written by WriteVbyte with the same block
// size, reassembling the blocks little-endian.
func ReadVbyte(src BitSource, b byte) uint64 {
	assert.Assertf(b >= 1 && uint(b) < wordBits, "vbyte block size %d out of range [1, %d)", b, wordBits)
	var shift uint
	var x uint64
	for !src.ReadBit() {
		x |= ReadBinary(src, uint(b)) << shift
		shift += uint(b)
	}
	x |= ReadBinary(src, uint(b)) << shift
	return x
}

// EncodeVbyte writes x relative to u as a vbyte code with block size b.
func EncodeVbyte(sink BitSink, x uint64, b byte, u Universe) {
	WriteVbyte(sink, u.Rel(x), b)
}

// DecodeVbyte reads an integer encoded with EncodeVbyte.
func DecodeVbyte(src BitSource, b byte, u Universe) uint64 {
	return u.Abs(ReadVbyte(src, b))
}

// Vbyte is a vbyte coder with a fixed block size in bits.
type Vbyte struct {
	Block byte
}

// Encode writes x relative to u as a vbyte code.
func (c Vbyte) Encode(sink BitSink, x uint64, u Universe) {
	EncodeVbyte(sink, x, c.Block, u)
}

// Decode reads an integer encoded with Encode.
func (c Vbyte) Decode(src BitSource, u Universe) uint64 {
	return DecodeVbyte(src, c.Block, u)
}

var _ IntegerEncoder = Vbyte{}
var _ IntegerDecoder = Vbyte{}
