package intcode

import (
	"container/heap"
	"sort"
)

const nilNode = int32(-1)

// treeNode is one slot of the tree's node arena.  Children and parents
// reference each other by arena index, never by pointer, so the arena
// may grow during construction without invalidating links.
type treeNode struct {
	parent int32
	left   int32
	right  int32
	freq   uint64
	sym    Symbol
}

func (v *treeNode) isLeaf() bool {
	return v.left == nilNode
}

// Tree is a Huffman code tree.  A tree is built once, either from input
// symbols or by decoding a serialized tree, and is read-only
// afterwards; it may be shared freely between concurrent encoders and
// decoders.
type Tree struct {
	nodes  []treeNode
	root   int32
	leaves map[Symbol]int32
}

// Node is a handle to a single node of a Tree.
type Node struct {
	tree  *Tree
	index int32
}

// IsLeaf reports whether the node is a leaf carrying a symbol.
func (n Node) IsLeaf() bool {
	return n.tree.nodes[n.index].isLeaf()
}

// LeftChild returns the left child of an inner node.
func (n Node) LeftChild() Node {
	return Node{n.tree, n.tree.nodes[n.index].left}
}

// RightChild returns the right child of an inner node.
func (n Node) RightChild() Node {
	return Node{n.tree, n.tree.nodes[n.index].right}
}

// Symbol returns the symbol represented by a leaf.
func (n Node) Symbol() Symbol {
	return n.tree.nodes[n.index].sym
}

// Freq returns the frequency recorded for the node's subtree.  Decoded
// trees carry no frequencies and report zero.
func (n Node) Freq() uint64 {
	return n.tree.nodes[n.index].freq
}

// Code computes the node's codeword by walking parent links up to the
// root, shifting in one edge bit per level.  The cost is proportional
// to the code length; Table precomputes every codeword in a single
// pass instead.
func (n Node) Code() Code {
	var hc Code
	nodes := n.tree.nodes
	for v := n.index; nodes[v].parent != nilNode; v = nodes[v].parent {
		var bit uint64
		if nodes[nodes[v].parent].right == v {
			bit = 1
		}
		hc.Bits = (hc.Bits << 1) | bit
		hc.Size++
	}
	return hc
}

// Root returns the root node.  The tree must not be empty.
func (t *Tree) Root() Node {
	return Node{t, t.root}
}

// Len reports the total number of nodes in the tree.  A tree over an
// alphabet of k >= 2 symbols has exactly 2k-1 nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Code returns the codeword of sym, or the zero Code if sym is not
// part of the tree's alphabet.
func (t *Tree) Code(sym Symbol) Code {
	if index, found := t.leaves[sym]; found {
		return Node{t, index}.Code()
	}
	return Code{}
}

func (t *Tree) addLeaf(sym Symbol, freq uint64) int32 {
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		parent: nilNode,
		left:   nilNode,
		right:  nilNode,
		freq:   freq,
		sym:    sym,
	})
	t.leaves[sym] = index
	return index
}

func (t *Tree) addInner(left, right int32) int32 {
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		parent: nilNode,
		left:   left,
		right:  right,
		freq:   t.nodes[left].freq + t.nodes[right].freq,
	})
	t.nodes[left].parent = index
	t.nodes[right].parent = index
	return index
}

// NewTree builds the Huffman tree for the given input symbols.  Inputs
// with identical histograms produce identical trees, identical
// codewords and identical serializations.
func NewTree(input []Symbol) *Tree {
	hist := make(map[Symbol]uint64)
	for _, sym := range input {
		hist[sym]++
	}
	return newTreeFromHistogram(hist)
}

// NewTreeFromCounter builds the Huffman tree for a previously counted
// histogram.
func NewTreeFromCounter(c *Counter) *Tree {
	hist := make(map[Symbol]uint64, c.Len())
	for sym, count := range c.counts {
		hist[sym] = count
	}
	return newTreeFromHistogram(hist)
}

// newTreeFromHistogram consumes hist.
func newTreeFromHistogram(hist map[Symbol]uint64) *Tree {
	t := &Tree{root: nilNode, leaves: make(map[Symbol]int32, len(hist))}
	if len(hist) == 0 {
		return t
	}

	// A tree needs at least two leaves to have depth.  If only one
	// symbol occurs, its complement serves as a synthetic sibling of
	// frequency zero.
	if len(hist) == 1 {
		for sym := range hist {
			hist[^sym] = 0
			break
		}
	}

	// Seed the queue in ascending symbol order; together with the
	// strict queue ordering this makes the tree shape a pure function
	// of the histogram.
	syms := make([]Symbol, 0, len(hist))
	for sym := range hist {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	t.nodes = make([]treeNode, 0, 2*len(hist)-1)
	q := &buildQueue{tree: t, items: make([]int32, 0, len(hist))}
	for _, sym := range syms {
		q.items = append(q.items, t.addLeaf(sym, hist[sym]))
	}
	heap.Init(q)

	for q.Len() > 1 {
		r := heap.Pop(q).(int32) // the lower frequency becomes the right child
		l := heap.Pop(q).(int32)
		heap.Push(q, t.addInner(l, r))
	}
	t.root = q.items[0]
	return t
}

// type buildQueue {{{

// buildQueue orders tree nodes for the merge loop.  Lower frequencies
// drain first; on equal frequency inner nodes drain before leaves,
// equal-frequency leaves drain in ascending symbol order, and
// equal-frequency inner nodes drain in creation order.  The ordering
// is strict, so the merge result does not depend on heap internals.
type buildQueue struct {
	tree  *Tree
	items []int32
}

func (q *buildQueue) Len() int {
	return len(q.items)
}

func (q *buildQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *buildQueue) Less(i, j int) bool {
	a := &q.tree.nodes[q.items[i]]
	b := &q.tree.nodes[q.items[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.isLeaf() != b.isLeaf() {
		return !a.isLeaf()
	}
	if a.isLeaf() {
		return a.sym < b.sym
	}
	return q.items[i] < q.items[j]
}

func (q *buildQueue) Push(x interface{}) {
	q.items = append(q.items, x.(int32))
}

func (q *buildQueue) Pop() interface{} {
	last := len(q.items) - 1
	x := q.items[last]
	q.items = q.items[:last]
	return x
}

var _ heap.Interface = (*buildQueue)(nil)

// }}}
