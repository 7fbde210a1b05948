package intcode

// BitSink accepts bits.  Coders target the interface and never look at
// how the bits are packed into bytes or words; that is the sink's
// concern.
type BitSink interface {
	// WriteBit emits a single bit.
	WriteBit(bit bool)

	// WriteBits emits the low count bits of bits, LSB-first: bit 0 of
	// bits is the first bit on the wire.
	WriteBits(bits uint64, count uint)

	// Flush commits any pending intermediate state to the sink.
	Flush()

	// BitsWritten reports the number of bits written so far.
	BitsWritten() uint64
}

// BitSource yields bits in the order a BitSink accepted them.
type BitSource interface {
	// ReadBit returns the next bit.
	ReadBit() bool

	// ReadBits reads the next count bits and reassembles them
	// LSB-first: the first bit read becomes bit 0 of the result.
	ReadBits(count uint) uint64
}

// IntegerEncoder encodes integers from a universe into a BitSink.
type IntegerEncoder interface {
	Encode(sink BitSink, x uint64, u Universe)
}

// IntegerDecoder decodes integers from a universe out of a BitSource.
type IntegerDecoder interface {
	Decode(src BitSource, u Universe) uint64
}
