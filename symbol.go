package intcode

import (
	"math"
)

// Symbol represents a character in an arbitrary alphabet of unsigned
// integers.
type Symbol uint64

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint64)
