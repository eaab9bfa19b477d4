// Package entropy implements the NYA payload's block encoding, run-length
// pass, and Huffman substitution (C2, C3, C4 of the encoder pipeline).
package entropy

// Pixel is a channel tuple. Only the first Channels bytes of an encode
// call are meaningful; trailing bytes are always zero so Pixel can be used
// directly as a map key regardless of channel count.
type Pixel [4]uint8

// less reports whether a precedes b under the "natural ordering of pixel
// values treated as a big-endian integer" used to break ties when
// trimming the Huffman candidate set and when seeding the tree-builder's
// insertion order (spec.md §4.3, §9 "Huffman ordering").
func less(a, b Pixel) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
