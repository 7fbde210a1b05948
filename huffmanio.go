package intcode

// Tree serialization.  A pre-order walk emits one topology bit per node
// (1 for a leaf, 0 for an inner node), then the alphabet universe as
// two Elias-delta codes, then one binary-coded symbol per leaf in
// left-to-right order.  An empty tree is a single 1-bit with no
// alphabet following; a legitimately built tree always has at least two
// leaves, so the two cannot be confused.

// Encode serializes the tree into sink.  The stream is self-describing:
// DecodeTree rebuilds an equivalent tree from it without any side
// channel.
func (t *Tree) Encode(sink BitSink) {
	if t.root == nilNode {
		// a lone leaf bit with no alphabet marks the empty tree
		sink.WriteBit(true)
		return
	}

	syms := make([]Symbol, 0, len(t.leaves))
	var alphabet Range
	t.encodeNode(sink, t.root, &syms, &alphabet)

	u := alphabet.Universe()
	EncodeEliasDelta(sink, u.Min(), MaxUniverse())
	EncodeEliasDelta(sink, u.Max(), AtLeastUniverse(u.Min()))
	for _, sym := range syms {
		EncodeBinary(sink, uint64(sym), u)
	}
}

func (t *Tree) encodeNode(sink BitSink, index int32, syms *[]Symbol, alphabet *Range) {
	v := &t.nodes[index]
	// inner nodes always have two children, so one bit per node
	// suffices
	sink.WriteBit(v.isLeaf())
	if v.isLeaf() {
		*syms = append(*syms, v.sym)
		alphabet.Contain(uint64(v.sym))
	} else {
		t.encodeNode(sink, v.left, syms, alphabet)
		t.encodeNode(sink, v.right, syms, alphabet)
	}
}

// DecodeTree reads a tree serialized by Encode.  Leaves of a decoded
// tree carry their symbol but no frequency; frequencies are not part of
// the stream and are not needed for decoding.
func DecodeTree(src BitSource) *Tree {
	var topology []bool
	var alphabetSize int
	decodeTopology(src, &topology, &alphabetSize)

	t := &Tree{root: nilNode}
	if len(topology) <= 1 {
		// a lone leaf bit means the tree is empty
		t.leaves = make(map[Symbol]int32)
		return t
	}

	t.nodes = make([]treeNode, 0, len(topology))
	t.leaves = make(map[Symbol]int32, alphabetSize)

	min := DecodeEliasDelta(src, MaxUniverse())
	max := DecodeEliasDelta(src, AtLeastUniverse(min))
	u := MakeUniverse(min, max)

	pos := 0
	t.root = t.decodeNode(src, topology, &pos, u)
	return t
}

// decodeTopology consumes the topology prefix of the stream.  Each
// 1-bit is a base case, so termination is structural.
func decodeTopology(src BitSource, topology *[]bool, alphabetSize *int) {
	b := src.ReadBit()
	*topology = append(*topology, b)
	if b {
		*alphabetSize++
	} else {
		decodeTopology(src, topology, alphabetSize) // left subtree
		decodeTopology(src, topology, alphabetSize) // right subtree
	}
}

// decodeNode replays the topology bits, reading one alphabet symbol at
// every leaf.
func (t *Tree) decodeNode(src BitSource, topology []bool, pos *int, u Universe) int32 {
	b := topology[*pos]
	*pos++
	if b {
		return t.addLeaf(Symbol(DecodeBinary(src, u)), 0)
	}
	l := t.decodeNode(src, topology, pos, u)
	r := t.decodeNode(src, topology, pos, u)
	return t.addInner(l, r)
}
