package entropy

import (
	"container/heap"
	"sort"

	"github.com/nyacodec/nya/internal/bitio"
)

// maxHuffmanSymbols is the largest number of distinct pixel values a
// single file's Huffman table may carry (spec.md §3 "top-256").
const maxHuffmanSymbols = 256

// minHuffmanFrequency is the lowest per-block frequency a pixel value
// must reach before it is eligible for Huffman substitution.
const minHuffmanFrequency = 2

// treeToken is one step of the tree's depth-first pre-order serialization:
// an internal node (isLeaf false) or a leaf carrying a pixel value.
type treeToken struct {
	isLeaf bool
	pixel  Pixel
}

// Table is a built Huffman code table plus the pre-order token sequence
// of its tree, ready to be written to the payload ahead of the block
// stream. The tokens are kept alongside the code map (rather than
// re-derived from it) because the degenerate single-symbol tree has two
// leaves sharing one pixel value, which a map keyed by pixel cannot
// represent on its own.
type Table struct {
	Codes  map[Pixel]Code
	tokens []treeToken
}

// huffNode is an arena-allocated tree node (leaf or internal), recast
// from the original's pointer-based tree into a pool indexed by integers
// so the heap can operate on plain ints (spec.md §9 "Source patterns
// recast").
type huffNode struct {
	freq   uint64
	pixel  Pixel
	isLeaf bool
	left   int
	right  int
}

// nodeHeap is a min-heap over pool indices, ordered by frequency and,
// on ties, by insertion order (lower pool index wins) — the tie-break
// decided in SPEC_FULL.md §5 for spec.md §9 "Huffman ordering".
type nodeHeap struct {
	pool    []huffNode
	indices []int
}

func (h *nodeHeap) Len() int { return len(h.indices) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.pool[h.indices[i]], h.pool[h.indices[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return h.indices[i] < h.indices[j]
}

func (h *nodeHeap) Swap(i, j int) { h.indices[i], h.indices[j] = h.indices[j], h.indices[i] }

func (h *nodeHeap) Push(x any) { h.indices = append(h.indices, x.(int)) }

func (h *nodeHeap) Pop() any {
	old := h.indices
	n := len(old)
	idx := old[n-1]
	h.indices = old[:n-1]
	return idx
}

// BuildTable builds a Huffman table from a per-block frequency map,
// following spec.md §4.3. It returns nil when fewer than one eligible
// pixel value remains (no substitution occurs for this file).
func BuildTable(freq map[Pixel]uint32) *Table {
	type entry struct {
		pixel Pixel
		count uint32
	}
	entries := make([]entry, 0, len(freq))
	for p, c := range freq {
		if c >= minHuffmanFrequency {
			entries = append(entries, entry{p, c})
		}
	}
	if len(entries) == 0 {
		return nil
	}

	// Deterministic order: highest count first, ties by pixel value
	// ascending (spec.md §4.3 step 2's tie-break, reused here so repeated
	// encodes of the same raster always build byte-identical trees).
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return less(entries[i].pixel, entries[j].pixel)
	})
	if len(entries) > maxHuffmanSymbols {
		entries = entries[:maxHuffmanSymbols]
	}

	h := &nodeHeap{pool: make([]huffNode, 0, 2*len(entries))}
	pushLeaf := func(p Pixel, count uint32) {
		idx := len(h.pool)
		h.pool = append(h.pool, huffNode{freq: uint64(count), pixel: p, isLeaf: true, left: -1, right: -1})
		h.indices = append(h.indices, idx)
	}
	if len(entries) == 1 {
		// Single eligible value: push it twice so the tree has two
		// leaves and the code is one bit (spec.md §3 "Huffman tree").
		pushLeaf(entries[0].pixel, entries[0].count)
		pushLeaf(entries[0].pixel, entries[0].count)
	} else {
		for _, e := range entries {
			pushLeaf(e.pixel, e.count)
		}
	}

	heap.Init(h)
	for h.Len() > 1 {
		l := heap.Pop(h).(int)
		r := heap.Pop(h).(int)
		parent := len(h.pool)
		h.pool = append(h.pool, huffNode{
			freq:  h.pool[l].freq + h.pool[r].freq,
			left:  l,
			right: r,
		})
		heap.Push(h, parent)
	}
	root := h.indices[0]

	codes := make(map[Pixel]Code)
	tokens := walkTree(h.pool, root, codes)

	return &Table{Codes: codes, tokens: tokens}
}

// walkTree performs a single depth-first, pre-order traversal of the
// arena-backed tree using an explicit stack (spec.md §9: recursion is
// fine but an explicit stack avoids deep recursion on highly imbalanced
// trees up to depth 256). It records each leaf's root-to-leaf path as its
// Huffman code (left=0, right=1) and returns the pre-order token sequence
// used to serialize the tree.
func walkTree(pool []huffNode, root int, codes map[Pixel]Code) []treeToken {
	type frame struct {
		node    int
		code    Code
		visited bool
	}
	var tokens []treeToken
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := pool[f.node]
		if n.isLeaf {
			tokens = append(tokens, treeToken{isLeaf: true, pixel: n.pixel})
			codes[n.pixel] = f.code
			stack = stack[:len(stack)-1]
			continue
		}
		if !f.visited {
			tokens = append(tokens, treeToken{isLeaf: false})
			f.visited = true
			rightCode := Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}
			leftCode := Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}
			stack = append(stack, frame{node: n.right, code: rightCode})
			stack = append(stack, frame{node: n.left, code: leftCode})
			continue
		}
		stack = stack[:len(stack)-1]
	}
	return tokens
}

// WriteTree serializes the Huffman tree in depth-first pre-order: an
// internal node is bit 0, a leaf is bit 1 followed by the pixel's
// channels*8 bits (spec.md §3 "Serialized tree").
func WriteTree(w *bitio.Writer, t *Table, channels int) {
	if t == nil {
		return
	}
	for _, tok := range t.tokens {
		if tok.isLeaf {
			w.WriteBit(1)
			for i := 0; i < channels; i++ {
				w.WriteByte(tok.pixel[i])
			}
			continue
		}
		w.WriteBit(0)
	}
}

// TreeBitLength returns the number of bits WriteTree would emit, without
// writing anything: 1 bit per internal node, (1 + channels*8) per leaf.
func TreeBitLength(t *Table, channels int) int {
	if t == nil {
		return 0
	}
	bitsTotal := 0
	for _, tok := range t.tokens {
		if tok.isLeaf {
			bitsTotal += 1 + 8*channels
		} else {
			bitsTotal++
		}
	}
	return bitsTotal
}

// Substitute rewrites blocks: any block whose pixel value has a Huffman
// code becomes SingleHuffman/RunHuffman; all others are left untouched
// (spec.md §4.3 step 8).
func Substitute(blocks []Block, t *Table) []Block {
	if t == nil {
		return blocks
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		code, ok := t.Codes[b.Pixel]
		if !ok {
			out[i] = b
			continue
		}
		switch b.Kind {
		case Single:
			out[i] = Block{Kind: SingleHuffman, Pixel: b.Pixel, Code: code}
		case Run:
			out[i] = Block{Kind: RunHuffman, Pixel: b.Pixel, Run: b.Run, Code: code}
		default:
			out[i] = b
		}
	}
	return out
}
