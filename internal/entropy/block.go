package entropy

import (
	"math/bits"

	"github.com/nyacodec/nya/internal/bitio"
)

// Kind identifies one of the four tagged block variants of spec.md §3.
type Kind uint8

const (
	Single Kind = iota
	Run
	SingleHuffman
	RunHuffman
)

// Code is a Huffman codeword: the low Len bits of Bits, written
// most-significant-bit first.
type Code struct {
	Bits uint64
	Len  uint8
}

// Block is one tagged unit of the payload. Pixel always carries the
// block's raw pixel value (even once substituted with a Huffman code, so
// the frequency/table bookkeeping and tests can still inspect it). Run is
// meaningful only for Run and RunHuffman and is the literal run length in
// [2, 257]. Code is meaningful only for SingleHuffman and RunHuffman.
type Block struct {
	Kind  Kind
	Pixel Pixel
	Run   int
	Code  Code
}

// WriteBlock serializes one block to w, given the raster's channel count.
func WriteBlock(w *bitio.Writer, b Block, channels int) {
	switch b.Kind {
	case Single:
		w.WriteBits(0b00, 2)
		writePixel(w, b.Pixel, channels)
	case Run:
		w.WriteBits(0b01, 2)
		writePixel(w, b.Pixel, channels)
		writeRunLength(w, b.Run)
	case SingleHuffman:
		w.WriteBits(0b10, 2)
		writeCode(w, b.Code)
	case RunHuffman:
		w.WriteBits(0b11, 2)
		writeCode(w, b.Code)
		writeRunLength(w, b.Run)
	}
}

func writePixel(w *bitio.Writer, p Pixel, channels int) {
	for i := 0; i < channels; i++ {
		w.WriteByte(p[i])
	}
}

func writeCode(w *bitio.Writer, c Code) {
	for i := int(c.Len) - 1; i >= 0; i-- {
		w.WriteBit(uint8((c.Bits >> uint(i)) & 1))
	}
}

// writeRunLength encodes a run in [2, 257] as a 3-bit length prefix L
// followed by L+1 bits of (run-1), per spec.md §3/§4.4.
func writeRunLength(w *bitio.Writer, run int) {
	a := run - 1 // in [1, 256]
	l := bits.Len(uint(a)) - 1
	w.WriteBits(uint32(l), 3)
	w.WriteBits(uint32(a), l+1)
}

// BitCost returns the number of bits WriteBlock would emit for b, without
// actually writing anything. Used by the filter competition (C5) to score
// candidates without re-serializing the whole payload per filter.
func BitCost(b Block, channels int) int {
	switch b.Kind {
	case Single:
		return 2 + 8*channels
	case Run:
		return 2 + 8*channels + runLengthBits(b.Run)
	case SingleHuffman:
		return 2 + int(b.Code.Len)
	case RunHuffman:
		return 2 + int(b.Code.Len) + runLengthBits(b.Run)
	}
	return 0
}

func runLengthBits(run int) int {
	a := run - 1
	l := bits.Len(uint(a)) - 1
	return 3 + l + 1
}
