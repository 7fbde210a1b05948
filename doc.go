// Package intcode implements universal integer codes -- reversible
// bit-level encodings of unsigned integers -- together with a Huffman
// coder that builds, serializes and navigates prefix-code trees.
//
// All multi-bit values travel LSB-first: bit 0 of a value is the first
// bit on the wire.  Huffman codewords compose under shifting and the
// Elias codes skip the leading 1-bit only under this convention, so it
// is a contract, not an implementation detail.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Elias_gamma_coding>
//
//	<https://en.wikipedia.org/wiki/Elias_delta_coding>
//
//	<https://en.wikipedia.org/wiki/Golomb_coding>
//
//	<https://en.wikipedia.org/wiki/Variable-length_quantity>
package intcode
