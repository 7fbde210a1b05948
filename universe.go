package intcode

import (
	"math"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// Universe represents a contiguous interval [min, max] of unsigned
// integers, together with the worst-case number of bits needed to store
// an integer from the interval relative to its minimum.  Universes are
// immutable and cheap to copy; two universes are equal when their
// fields are equal (== works).
type Universe struct {
	min, max, entropy uint64
}

// wcEntropy is the bit width of max-min, but at least 1: even a
// single-value universe occupies one bit in some codes.
func wcEntropy(min, max uint64) uint64 {
	e := uint64(mathbits.Len64(max - min))
	if e == 0 {
		e = 1
	}
	return e
}

// MakeUniverse constructs the universe for the integer range
// [min, max].  It is not verified that min <= max.
func MakeUniverse(min, max uint64) Universe {
	return Universe{min: min, max: max, entropy: wcEntropy(min, max)}
}

// MakeDeltaUniverse constructs the universe [min, min+delta].
func MakeDeltaUniverse(min, delta uint64) Universe {
	return MakeUniverse(min, min+delta)
}

// MakeEntropyUniverse constructs the universe of all integers
// representable in the given number of bits, i.e. [0, 2^entropy - 1].
func MakeEntropyUniverse(entropy uint) Universe {
	assert.Assertf(entropy >= 1 && entropy <= wordBits, "entropy %d out of range [1, %d]", entropy, wordBits)
	return Universe{min: 0, max: math.MaxUint64 >> (wordBits - entropy), entropy: uint64(entropy)}
}

// BinaryUniverse returns the universe consisting only of 0 and 1.
func BinaryUniverse() Universe {
	return MakeUniverse(0, 1)
}

// MaxUniverse returns the universe of all uint64 values.
func MaxUniverse() Universe {
	return MakeUniverse(0, math.MaxUint64)
}

// AtLeastUniverse returns the universe of all uint64 values that are at
// least as large as min.
func AtLeastUniverse(min uint64) Universe {
	return MakeUniverse(min, math.MaxUint64)
}

// Abs converts a value relative to the universe's minimum back into an
// absolute value, adding the minimum.
func (u Universe) Abs(rel uint64) uint64 {
	return u.min + rel
}

// Rel converts an absolute value into a value relative to the
// universe's minimum, subtracting the minimum.  It is not verified that
// abs is actually contained in the universe.
func (u Universe) Rel(abs uint64) uint64 {
	return abs - u.min
}

// Min reports the minimum integer contained in the universe.
func (u Universe) Min() uint64 {
	return u.min
}

// Max reports the maximum integer contained in the universe.
func (u Universe) Max() uint64 {
	return u.max
}

// Delta reports max - min, the number of integers contained in the
// universe minus one.
func (u Universe) Delta() uint64 {
	return u.max - u.min
}

// Entropy reports the worst-case number of bits needed to store an
// integer from the universe relative to its minimum.  Always at least 1.
func (u Universe) Entropy() uint64 {
	return u.entropy
}
