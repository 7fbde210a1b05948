package intcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeProvider maps alphabet symbols to their codewords.  Both Tree
// itself (which walks parent links per lookup) and the tables built by
// Tree.Table (precomputed) satisfy it.
type CodeProvider interface {
	Code(sym Symbol) Code
}

// EncodeHuffman writes the codeword of sym to sink, LSB-first.  sym
// must be part of the provider's alphabet.
func EncodeHuffman(sink BitSink, sym Symbol, codes CodeProvider) {
	hc := codes.Code(sym)
	assert.Assertf(hc.Size != 0, "symbol %d has no code", uint64(sym))
	for hc.Size > 0 {
		sink.WriteBit(hc.Bits&1 != 0)
		hc.Bits >>= 1
		hc.Size--
	}
}

// DecodeHuffman reads bits from src, descending from root -- 0 selects
// the left child, 1 the right -- until a leaf is reached, and returns
// the leaf's symbol.
func DecodeHuffman(src BitSource, root Node) Symbol {
	v := root
	for !v.IsLeaf() {
		if src.ReadBit() {
			v = v.RightChild()
		} else {
			v = v.LeftChild()
		}
	}
	return v.Symbol()
}

var _ CodeProvider = (*Tree)(nil)

// maxDenseSymbol bounds the alphabets for which Table builds a dense
// array; larger symbols fall back to hashing.
const maxDenseSymbol = Symbol(math.MaxUint16)

type denseTable []Code

func (tab denseTable) Code(sym Symbol) Code {
	return tab[sym]
}

type hashTable map[Symbol]Code

func (tab hashTable) Code(sym Symbol) Code {
	return tab[sym]
}

var _ CodeProvider = denseTable(nil)
var _ CodeProvider = hashTable(nil)

// Table precomputes the codeword of every alphabet symbol in one
// linear pass over the leaves.  Alphabets of at most 16-bit symbols
// yield a dense array table; larger symbols yield a hash table.
func (t *Tree) Table() CodeProvider {
	dense := true
	for sym := range t.leaves {
		if sym > maxDenseSymbol {
			dense = false
			break
		}
	}
	if dense {
		tab := make(denseTable, maxDenseSymbol+1)
		for sym, index := range t.leaves {
			tab[sym] = Node{t, index}.Code()
		}
		return tab
	}
	tab := make(hashTable, len(t.leaves))
	for sym, index := range t.leaves {
		tab[sym] = Node{t, index}.Code()
	}
	return tab
}

// Dump writes a programmer-readable debugging dump of the tree's
// codewords to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	syms := make([]Symbol, 0, len(t.leaves))
	for sym := range t.leaves {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	for _, sym := range syms {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", uint64(sym), t.Code(sym))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
