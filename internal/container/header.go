// Package container defines the NYA file framing: the fixed 72-bit
// header, and the trailing padding plus end-of-stream sentinel
// (spec.md §3, §4.6, §6). See DESIGN.md for why this is 72 bits rather
// than the "80-bit preamble" spec.md's prose calls it.
package container

import "github.com/nyacodec/nya/internal/bitio"

// Magic is the 4-byte "NYA!" signature, MSB-first per byte.
var Magic = [4]byte{'N', 'Y', 'A', '!'}

// Sentinel is the fixed 4-byte trailer marking end of stream: two zero
// bytes followed by ASCII ':' '3'.
var Sentinel = [4]byte{0x00, 0x00, ':', '3'}

// FilterID mirrors the 2-bit filter_id field of the header.
type FilterID uint8

const (
	FilterNone     FilterID = 0
	FilterLeftDiff FilterID = 1
	FilterUpDiff   FilterID = 2
)

// Header is the fixed 72-bit NYA preamble.
type Header struct {
	Width, Height int
	AlphaEncoded  bool
	Filter        FilterID
}

// WriteHeader emits the 72-bit header described by spec.md §3:
// 32-bit magic, 16-bit LE width, 16-bit LE height, 5 reserved zero bits,
// 1 alpha bit, 2 filter-id bits.
func WriteHeader(w *bitio.Writer, h Header) {
	w.WriteBytes(Magic[:])
	writeLE16(w, uint16(h.Width))
	writeLE16(w, uint16(h.Height))
	w.WriteBits(0, 5) // reserved
	if h.AlphaEncoded {
		w.WriteBit(1)
	} else {
		w.WriteBit(0)
	}
	w.WriteBits(uint32(h.Filter), 2)
}

// writeLE16 writes v as two little-endian bytes, each MSB-first within
// itself (the header's multibyte integers are little-endian at the byte
// level; bit order within each byte is still MSB-first, per spec.md §6).
func writeLE16(w *bitio.Writer, v uint16) {
	w.WriteByte(byte(v))
	w.WriteByte(byte(v >> 8))
}

// HeaderBits is the fixed bit length of the header: 32 (magic) + 16
// (width) + 16 (height) + 5 (reserved) + 1 (alpha) + 2 (filter id).
const HeaderBits = 32 + 16 + 16 + 5 + 1 + 2

// WriteTrailer pads the stream to a byte boundary (always emitting at
// least one full zero byte — see spec.md §9 open question 1) and appends
// the 4-byte end-of-stream sentinel.
func WriteTrailer(w *bitio.Writer) {
	w.PadToByte()
	w.WriteBytes(Sentinel[:])
}
