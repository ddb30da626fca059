// Package huffman builds an explicit (non-canonical) Huffman tree over the
// 15-bit symbols produced by the board bit-packer, serializes its topology
// and encoded payload, and reverses both operations.
//
// Nodes live in a flat arena addressed by index rather than as
// reference-counted pointers, so the tree has no reference cycles and its
// lifetime is exactly the arena slice's.
package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/pixeldrift/tttcodec/internal/bitio"
)

// ErrUnknownSymbol is returned when a payload encode sees a symbol absent
// from the tree it was asked to encode against.
var ErrUnknownSymbol = errors.New("huffman: symbol has no matching leaf")

const bitsPerSymbol = 15

type node struct {
	leaf        bool
	symbol      uint16
	left, right int // arena indices, -1 if absent
	parent      int // arena index, -1 for the root
}

// Tree is a strict binary Huffman tree: every internal node has exactly two
// children, every leaf carries one distinct 15-bit symbol.
type Tree struct {
	nodes  []node
	root   int // -1 for an empty tree (zero training symbols)
	leafOf map[uint16]int
}

// Build trains a tree on every non-overlapping 15-bit symbol in packed. An
// empty or all-identical-symbol input yields a degenerate tree (empty, or a
// lone leaf) per the package's documented special cases.
func Build(packed []byte) *Tree {
	freq := make(map[uint16]uint64)
	total := (len(packed) * 8) / bitsPerSymbol
	for i := 0; i < total; i++ {
		sym := uint16(bitio.ReadBitsAt(packed, i*bitsPerSymbol, bitsPerSymbol))
		freq[sym]++
	}

	t := &Tree{root: -1, leafOf: make(map[uint16]int)}
	if len(freq) == 0 {
		return t
	}

	symbols := make([]uint16, 0, len(freq))
	for sym := range freq {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	h := &nodeHeap{}
	for _, sym := range symbols {
		idx := len(t.nodes)
		t.nodes = append(t.nodes, node{leaf: true, symbol: sym, left: -1, right: -1, parent: -1})
		t.leafOf[sym] = idx
		h.freq = append(h.freq, freq[sym])
		h.indices = append(h.indices, idx)
	}

	if len(symbols) == 1 {
		t.root = t.leafOf[symbols[0]]
		return t
	}

	heap.Init(h)
	for h.Len() > 1 {
		a := heap.Pop(h).(int)
		b := heap.Pop(h).(int)
		parentIdx := len(t.nodes)
		t.nodes = append(t.nodes, node{left: a, right: b, parent: -1})
		t.nodes[a].parent = parentIdx
		t.nodes[b].parent = parentIdx
		h.freq = append(h.freq, h.freq[a]+h.freq[b])
		heap.Push(h, parentIdx)
	}
	t.root = h.indices[0]
	return t
}

// isSingleLeaf reports whether the tree is a lone leaf with no internal
// nodes, the degenerate case where the encoded payload is always empty.
func (t *Tree) isSingleLeaf() bool {
	return t.root != -1 && t.nodes[t.root].leaf
}

// ---------------------------------------------------------------------------
// Priority queue for tree construction. Ties break on arena index, which is
// assignment order (symbols ascending for leaves, merge order for internal
// nodes) so tree shape is reproducible across runs despite Go's unordered
// map iteration.
// ---------------------------------------------------------------------------

type nodeHeap struct {
	freq    []uint64
	indices []int
}

func (h *nodeHeap) Len() int { return len(h.indices) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.indices[i], h.indices[j]
	if h.freq[a] != h.freq[b] {
		return h.freq[a] < h.freq[b]
	}
	return a < b
}

func (h *nodeHeap) Swap(i, j int) { h.indices[i], h.indices[j] = h.indices[j], h.indices[i] }

func (h *nodeHeap) Push(x any) { h.indices = append(h.indices, x.(int)) }

func (h *nodeHeap) Pop() any {
	old := h.indices
	n := len(old)
	v := old[n-1]
	h.indices = old[:n-1]
	return v
}

// ---------------------------------------------------------------------------
// Topology serialization (TreeBlob).
// ---------------------------------------------------------------------------

// Serialize writes the tree's topology as a pre-order traversal: an
// internal node contributes a single 0 bit followed by its two children;
// a leaf contributes a 16-bit field, (symbol<<1)|1. An empty tree
// serializes to zero bytes.
func (t *Tree) Serialize() []byte {
	if t.root == -1 {
		return nil
	}
	w := bitio.NewWriter(4)
	t.writeNode(t.root, w)
	return w.Bytes()
}

func (t *Tree) writeNode(idx int, w *bitio.Writer) {
	n := t.nodes[idx]
	if n.leaf {
		w.WriteBits(uint32(n.symbol)<<1|1, 16)
		return
	}
	w.WriteBit(0)
	t.writeNode(n.left, w)
	t.writeNode(n.right, w)
}

// Deserialize reconstructs a tree from a TreeBlob produced by Serialize.
// It walks the bit cursor driving an explicit frontier pointer: attaching a
// leaf closes its parent's pending child slot and, once a node's second
// child is filled, the frontier ascends until it finds an ancestor still
// missing one.
func Deserialize(blob []byte) *Tree {
	t := &Tree{root: -1, leafOf: make(map[uint16]int)}
	if len(blob) == 0 {
		return t
	}

	r := bitio.NewReader(blob)
	cur := -1
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}

		var idx int
		if bit == 1 {
			sym, ok := r.ReadBits(bitsPerSymbol)
			if !ok {
				break
			}
			idx = len(t.nodes)
			t.nodes = append(t.nodes, node{leaf: true, symbol: uint16(sym), left: -1, right: -1, parent: -1})
			t.leafOf[uint16(sym)] = idx
		} else {
			idx = len(t.nodes)
			t.nodes = append(t.nodes, node{left: -1, right: -1, parent: -1})
		}

		if cur == -1 {
			t.root = idx
			cur = idx
			continue
		}

		t.nodes[idx].parent = cur
		if t.nodes[cur].left == -1 {
			t.nodes[cur].left = idx
		} else {
			t.nodes[cur].right = idx
		}

		if bit == 0 {
			cur = idx
			continue
		}

		for cur != -1 && t.nodes[cur].right != -1 {
			cur = t.nodes[cur].parent
		}
		if cur == -1 {
			break
		}
	}
	return t
}

// Equal reports whether a and b have the same shape and the same leaf
// symbols in the same positions.
func Equal(a, b *Tree) bool {
	return equalNode(a, a.root, b, b.root)
}

func equalNode(a *Tree, ai int, b *Tree, bi int) bool {
	if ai == -1 || bi == -1 {
		return ai == bi
	}
	na, nb := a.nodes[ai], b.nodes[bi]
	if na.leaf != nb.leaf {
		return false
	}
	if na.leaf {
		return na.symbol == nb.symbol
	}
	return equalNode(a, na.left, b, nb.left) && equalNode(a, na.right, b, nb.right)
}

// ---------------------------------------------------------------------------
// Payload encode/decode.
//
// A leaf's code is the path of edges from root to leaf: the first-inserted
// child of a node (its left, popped first during Build) is 0, the second
// (right) is 1. Decoding always restarts at the root and consumes bits
// sequentially, so the root edge must be the first bit consumed for a
// symbol's slot and the leaf edge the last — the root edge occupies the low
// bit of the slot, the leaf edge the high bit.
// ---------------------------------------------------------------------------

// EncodePayload encodes every 15-bit symbol in packed against t, in order.
// A single-leaf tree always yields an empty payload.
func (t *Tree) EncodePayload(packed []byte) ([]byte, error) {
	total := (len(packed) * 8) / bitsPerSymbol
	if total == 0 || t.root == -1 || t.isSingleLeaf() {
		return nil, nil
	}

	w := bitio.NewWriter(len(packed))
	var path []int
	for i := 0; i < total; i++ {
		sym := uint16(bitio.ReadBitsAt(packed, i*bitsPerSymbol, bitsPerSymbol))
		leaf, ok := t.leafOf[sym]
		if !ok {
			return nil, fmt.Errorf("huffman: encode payload: %w: %d", ErrUnknownSymbol, sym)
		}

		path = path[:0]
		for n := leaf; t.nodes[n].parent != -1; n = t.nodes[n].parent {
			path = append(path, n)
		}
		// path[0] is the leaf (closest to the leaf edge), path[len-1] is the
		// root's immediate child (closest to the root edge).
		for k := len(path) - 1; k >= 0; k-- {
			n := path[k]
			bit := 0
			if n == t.nodes[t.nodes[n].parent].right {
				bit = 1
			}
			w.WriteBit(bit)
		}
	}
	return w.Bytes(), nil
}

// DecodePayload recovers n packed-board symbols from payload, restarting at
// the root after every leaf. A single-leaf tree ignores payload entirely
// and emits n copies of the leaf's symbol.
func (t *Tree) DecodePayload(payload []byte, n int) ([]byte, error) {
	out := make([]byte, (n*bitsPerSymbol+7)/8)
	if n == 0 || t.root == -1 {
		return out, nil
	}

	if t.isSingleLeaf() {
		sym := uint32(t.nodes[t.root].symbol)
		for i := 0; i < n; i++ {
			bitio.WriteBitsAt(out, i*bitsPerSymbol, bitsPerSymbol, sym)
		}
		return out, nil
	}

	r := bitio.NewReader(payload)
	cur := t.root
	writePos := 0
	for remaining := n; remaining > 0; {
		bit, ok := r.ReadBit()
		if !ok {
			return nil, fmt.Errorf("huffman: decode payload: %w", bitio.ErrTruncatedBuffer)
		}
		if bit == 0 {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
		if t.nodes[cur].leaf {
			bitio.WriteBitsAt(out, writePos, bitsPerSymbol, uint32(t.nodes[cur].symbol))
			writePos += bitsPerSymbol
			remaining--
			cur = t.root
		}
	}
	return out, nil
}

// LeafCount returns the number of distinct symbols the tree holds.
func (t *Tree) LeafCount() int { return len(t.leafOf) }
