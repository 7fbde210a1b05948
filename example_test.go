package intcode_test

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/intcode"
)

func Example() {
	// a universe of numbers between 10 and 20 (each inclusive)
	u := intcode.MakeUniverse(10, 20)

	var buf bytes.Buffer
	sink := intcode.NewStreamSink(&buf)
	intcode.WriteBinary(sink, 17, 5)      // binary with an explicit width of 5 bits
	intcode.EncodeBinary(sink, 17, u)     // binary in the universe: 17-10 = 7 in 4 bits
	intcode.WriteUnary(sink, 11)          // unary, 12 bits
	intcode.EncodeUnary(sink, 11, u)      // unary in the universe: 11-10 = 1 in 2 bits
	intcode.WriteEliasGamma(sink, 12)     // gamma, 7 bits
	intcode.EncodeEliasGamma(sink, 12, u) // gamma in the universe: 12-10 = 2 in 3 bits
	intcode.WriteRice(sink, 13, 3)        // Rice with a Golomb exponent of 3
	intcode.EncodeRice(sink, 13, 3, u)    // Rice in the universe: 13-10 = 3
	intcode.WriteVbyte(sink, 18, 8)       // vbyte with a block size of 8 bits
	intcode.EncodeVbyte(sink, 18, 8, u)   // vbyte in the universe: 18-10 = 8
	sink.Flush()

	src := intcode.NewStreamSource(&buf)
	fmt.Println(intcode.ReadBinary(src, 5))
	fmt.Println(intcode.DecodeBinary(src, u))
	fmt.Println(intcode.ReadUnary(src))
	fmt.Println(intcode.DecodeUnary(src, u))
	fmt.Println(intcode.ReadEliasGamma(src))
	fmt.Println(intcode.DecodeEliasGamma(src, u))
	fmt.Println(intcode.ReadRice(src, 3))
	fmt.Println(intcode.DecodeRice(src, 3, u))
	fmt.Println(intcode.ReadVbyte(src, 8))
	fmt.Println(intcode.DecodeVbyte(src, 8, u))

	// Output:
	// 17
	// 17
	// 11
	// 11
	// 12
	// 12
	// 13
	// 13
	// 18
	// 18
}

func ExampleTree() {
	input := "abracadabra"

	syms := make([]intcode.Symbol, len(input))
	for i := 0; i < len(input); i++ {
		syms[i] = intcode.Symbol(input[i])
	}

	var buf bytes.Buffer
	sink := intcode.NewStreamSink(&buf)

	// build the Huffman tree for the input and serialize it, then
	// encode the input through the precomputed code table
	tree := intcode.NewTree(syms)
	tree.Encode(sink)
	table := tree.Table()
	for _, sym := range syms {
		intcode.EncodeHuffman(sink, sym, table)
	}
	sink.Flush()

	// the stream alone suffices to get the input back
	src := intcode.NewStreamSource(&buf)
	decoded := intcode.DecodeTree(src)
	root := decoded.Root()
	out := make([]byte, len(input))
	for i := range out {
		out[i] = byte(intcode.DecodeHuffman(src, root))
	}
	fmt.Println(string(out))

	// Output:
	// abracadabra
}
