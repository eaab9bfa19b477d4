// Package pipeline runs the filter competition (C5) and final framing
// (C6) of spec.md §4.1: for each candidate filter it runs the RLE +
// Huffman pipeline once, scores the resulting payload in bits, and
// assembles the smallest candidate into the final byte stream.
package pipeline

import (
	"github.com/nyacodec/nya/internal/bitio"
	"github.com/nyacodec/nya/internal/container"
	"github.com/nyacodec/nya/internal/entropy"
	"github.com/nyacodec/nya/internal/filter"
)

// candidate holds one filter's fully-built payload, ready either to be
// scored or (if it wins) written out.
type candidate struct {
	id       filter.ID
	blocks   []entropy.Block
	table    *entropy.Table
	bitCount int
}

// filterCandidates lists the three filters in the fixed order ties break
// toward (spec.md §4.5: "ties break toward the lower filter_id").
var filterCandidates = []filter.ID{filter.None, filter.LeftDiff, filter.UpDiff}

func build(r *filter.Raster, id filter.ID) candidate {
	transformed := filter.Apply(r, id)
	flat := filter.Flatten(transformed)

	pixels := make([]entropy.Pixel, len(flat))
	for i, p := range flat {
		pixels[i] = entropy.Pixel(p)
	}

	rle := entropy.RunLength(pixels)
	table := entropy.BuildTable(rle.Freq)
	blocks := entropy.Substitute(rle.Blocks, table)

	bitCount := entropy.TreeBitLength(table, r.Channels)
	for _, b := range blocks {
		bitCount += entropy.BitCost(b, r.Channels)
	}

	return candidate{id: id, blocks: blocks, table: table, bitCount: bitCount}
}

// Encode runs the full C5 filter competition plus C6 framing over r and
// returns the complete NYA byte stream, including header, payload,
// padding, and sentinel.
func Encode(r *filter.Raster, alphaEncoded bool) []byte {
	best := build(r, filterCandidates[0])
	for _, id := range filterCandidates[1:] {
		c := build(r, id)
		if c.bitCount < best.bitCount {
			best = c
		}
	}

	w := bitio.NewWriter(container.HeaderBits/8 + best.bitCount/8 + 8)
	container.WriteHeader(w, container.Header{
		Width:        r.Width,
		Height:       r.Height,
		AlphaEncoded: alphaEncoded,
		Filter:       container.FilterID(best.id),
	})
	entropy.WriteTree(w, best.table, r.Channels)
	for _, b := range best.blocks {
		entropy.WriteBlock(w, b, r.Channels)
	}
	container.WriteTrailer(w)
	return w.Bytes()
}
