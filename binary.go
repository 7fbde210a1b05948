package intcode

// WriteBinary writes the low count bits of x to sink, fixed-width.
func WriteBinary(sink BitSink, x uint64, count uint) {
	sink.WriteBits(x, count)
}

// ReadBinary reads a count-bit integer from src.
func ReadBinary(src BitSource, count uint) uint64 {
	return src.ReadBits(count)
}

// EncodeBinary writes x relative to u in exactly u.Entropy() bits.
func EncodeBinary(sink BitSink, x uint64, u Universe) {
	WriteBinary(sink, u.Rel(x), uint(u.Entropy()))
}

// DecodeBinary reads an integer encoded with EncodeBinary.
func DecodeBinary(src BitSource, u Universe) uint64 {
	return u.Abs(ReadBinary(src, uint(u.Entropy())))
}

// Binary is the fixed-width integer coder.
type Binary struct{}

// Encode writes x relative to u in exactly u.Entropy() bits.
func (Binary) Encode(sink BitSink, x uint64, u Universe) {
	EncodeBinary(sink, x, u)
}

// Decode reads an integer encoded with Encode.
func (Binary) Decode(src BitSource, u Universe) uint64 {
	return DecodeBinary(src, u)
}

var _ IntegerEncoder = Binary{}
var _ IntegerDecoder = Binary{}
