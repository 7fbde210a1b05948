package intcode

import (
	mathbits "math/bits"
)

// wordBits is the width of the word type carried through every coder.
const wordBits = 64

// setBit returns a word with only bit i set.
func setBit(i uint) uint64 {
	return uint64(1) << i
}

// reverseBits returns the low size bits of bits in reverse order.
func reverseBits(size uint, bits uint64) uint64 {
	return mathbits.Reverse64(bits) >> (wordBits - size)
}
