// Package nya implements the NYA lossless raster image codec's encoder.
//
// NYA encodes a decoded RGBA raster into a compact, self-describing
// bitstream: channel-count selection (drop an unused alpha channel),
// a predictive filter chosen by competition (none, left-difference,
// up-difference), run-length encoding of identical adjacent pixels, and
// an optional Huffman substitution of frequent pixel values.
//
// Only the encoder is implemented; there is no NYA decoder in this
// package (see spec.md §1).
//
// Basic usage:
//
//	path, err := nya.EncodeFile("photo.png", "out")
package nya
