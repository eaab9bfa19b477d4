package entropy

import "testing"

func px(r, g, b byte) Pixel { return Pixel{r, g, b, 0} }

func TestRunLength_AllSingles(t *testing.T) {
	pixels := []Pixel{px(10, 20, 30), px(40, 50, 60)}
	res := RunLength(pixels)

	if len(res.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(res.Blocks))
	}
	for _, b := range res.Blocks {
		if b.Kind != Single {
			t.Errorf("kind = %v, want Single", b.Kind)
		}
	}
	if res.Freq[pixels[0]] != 1 || res.Freq[pixels[1]] != 1 {
		t.Fatalf("freq = %v, want both 1", res.Freq)
	}
}

func TestRunLength_SingleRun(t *testing.T) {
	v := px(255, 0, 0)
	pixels := make([]Pixel, 4)
	for i := range pixels {
		pixels[i] = v
	}
	res := RunLength(pixels)

	if len(res.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(res.Blocks))
	}
	if res.Blocks[0].Kind != Run || res.Blocks[0].Run != 4 {
		t.Fatalf("got %+v, want Run(4)", res.Blocks[0])
	}
	if res.Freq[v] != 1 {
		t.Fatalf("freq = %d, want 1 (one block, not one per pixel)", res.Freq[v])
	}
}

func TestRunLength_RunCutAt257(t *testing.T) {
	v := px(1, 2, 3)
	pixels := make([]Pixel, 257)
	for i := range pixels {
		pixels[i] = v
	}
	res := RunLength(pixels)

	if len(res.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(res.Blocks))
	}
	if res.Blocks[0].Run != 257 {
		t.Fatalf("run = %d, want 257", res.Blocks[0].Run)
	}
}

func TestRunLength_RunCutAt258SplitsIntoRunPlusSingle(t *testing.T) {
	v := px(1, 2, 3)
	pixels := make([]Pixel, 258)
	for i := range pixels {
		pixels[i] = v
	}
	res := RunLength(pixels)

	if len(res.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(res.Blocks))
	}
	if res.Blocks[0].Kind != Run || res.Blocks[0].Run != 257 {
		t.Fatalf("block 0 = %+v, want Run(257)", res.Blocks[0])
	}
	if res.Blocks[1].Kind != Single {
		t.Fatalf("block 1 = %+v, want Single", res.Blocks[1])
	}
	if res.Freq[v] != 2 {
		t.Fatalf("freq = %d, want 2 (two blocks)", res.Freq[v])
	}
}

func TestRunLength_NoRunShorterThan2(t *testing.T) {
	pixels := []Pixel{px(1, 1, 1), px(2, 2, 2), px(1, 1, 1)}
	res := RunLength(pixels)
	for _, b := range res.Blocks {
		if b.Kind == Run && b.Run < 2 {
			t.Fatalf("run block with length %d < 2", b.Run)
		}
	}
}

// expand reconstructs the flat pixel sequence a block stream encodes,
// ignoring Huffman substitution (it only reads Kind/Pixel/Run). Test-only
// tooling used to verify the RLE round-trip invariant (spec.md §8.4); NYA
// ships no decoder (spec.md §1).
func expand(blocks []Block) []Pixel {
	var out []Pixel
	for _, b := range blocks {
		switch b.Kind {
		case Single, SingleHuffman:
			out = append(out, b.Pixel)
		case Run, RunHuffman:
			for i := 0; i < b.Run; i++ {
				out = append(out, b.Pixel)
			}
		}
	}
	return out
}

func TestRunLength_RoundTrip(t *testing.T) {
	pixels := []Pixel{
		px(1, 1, 1), px(1, 1, 1), px(1, 1, 1),
		px(2, 2, 2),
		px(3, 3, 3), px(3, 3, 3),
	}
	res := RunLength(pixels)
	got := expand(res.Blocks)
	if len(got) != len(pixels) {
		t.Fatalf("expanded %d pixels, want %d", len(got), len(pixels))
	}
	for i := range pixels {
		if got[i] != pixels[i] {
			t.Fatalf("pixel %d: got %v, want %v", i, got[i], pixels[i])
		}
	}
}
