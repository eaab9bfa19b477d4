package entropy

// maxRun is the largest run length a single RUN/RUN_HUFFMAN block can
// carry; run-1 must fit in 9 bits (spec.md §3).
const maxRun = 257

// RLEResult is the output of a single run-length pass: the ordered block
// stream (before any Huffman substitution) and a per-block frequency
// count of each pixel value that appeared.
type RLEResult struct {
	Blocks []Block
	Freq   map[Pixel]uint32
}

// RunLength scans a flat, row-major pixel sequence and greedily emits
// SINGLE/RUN blocks, per spec.md §4.2: left-to-right, maximal run bounded
// to maxRun pixels.
func RunLength(pixels []Pixel) RLEResult {
	res := RLEResult{Freq: make(map[Pixel]uint32)}
	n := len(pixels)
	i := 0
	for i < n {
		v := pixels[i]
		k := 1
		for k < maxRun && i+k < n && pixels[i+k] == v {
			k++
		}
		if k == 1 {
			res.Blocks = append(res.Blocks, Block{Kind: Single, Pixel: v})
		} else {
			res.Blocks = append(res.Blocks, Block{Kind: Run, Pixel: v, Run: k})
		}
		res.Freq[v]++
		i += k
	}
	return res
}
