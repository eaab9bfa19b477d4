package nya

import (
	"image"
	"image/color"
	"testing"
)

func rgbaImage(w, h int, fill func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}
	return img
}

func TestEncode_S3_AllDistinctPixels_NoHuffman(t *testing.T) {
	// spec.md §8 S3: two distinct opaque pixels, no repeats.
	img := rgbaImage(2, 1, func(x, y int) color.NRGBA {
		if x == 0 {
			return color.NRGBA{10, 20, 30, 255}
		}
		return color.NRGBA{40, 50, 60, 255}
	})
	out, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(out[0:4]) != "NYA!" {
		t.Fatalf("missing magic")
	}
	alphaBit := (out[8] >> 2) & 1
	if alphaBit != 0 {
		t.Fatalf("alpha bit = %d, want 0 (all pixels opaque)", alphaBit)
	}
	// No tree: 72 header bits + two 26-bit SINGLE blocks = 124, padded to
	// 128 bits (16 bytes), plus the 4-byte sentinel.
	if len(out) != 20 {
		t.Fatalf("got %d bytes, want 20 (no Huffman tree)", len(out))
	}
}

func TestEncode_S6_TransparencyForcesAlphaChannel(t *testing.T) {
	// spec.md §8 S6: one pixel at alpha 254 forces the 4-channel path.
	img := rgbaImage(2, 1, func(x, y int) color.NRGBA {
		if x == 0 {
			return color.NRGBA{0, 0, 0, 254}
		}
		return color.NRGBA{0, 0, 0, 255}
	})
	out, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	alphaBit := (out[8] >> 2) & 1
	if alphaBit != 1 {
		t.Fatalf("alpha bit = %d, want 1", alphaBit)
	}
}

func TestToRaster_UnpremultipliesNRGBA(t *testing.T) {
	// A naive img.At(x, y).RGBA() extraction returns alpha-premultiplied
	// channel values for an *image.NRGBA source: {R:200, A:128} would come
	// back as roughly R=100, not 200. NYA is lossless, so the raster must
	// carry the exact unpremultiplied byte.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 50, B: 10, A: 128})

	r, alphaEncoded, err := toRaster(img)
	if err != nil {
		t.Fatalf("toRaster: %v", err)
	}
	if !alphaEncoded {
		t.Fatalf("expected alphaEncoded = true for A=128")
	}
	got := r.Pixels[0]
	want := [4]uint8{200, 50, 10, 128}
	if got != want {
		t.Fatalf("got %v, want %v (premultiplication bug)", got, want)
	}
}

func TestEncode_DimensionValidation(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Encode(img); err == nil {
		t.Fatal("expected a dimension error for a 0x0 image")
	}
}

func TestEncode_EndsWithSentinel(t *testing.T) {
	img := rgbaImage(3, 3, func(x, y int) color.NRGBA {
		return color.NRGBA{uint8(x * 10), uint8(y * 10), 0, 255}
	})
	out, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tail := out[len(out)-4:]
	want := []byte{0x00, 0x00, ':', '3'}
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("sentinel byte %d: got %#02x, want %#02x", i, tail[i], want[i])
		}
	}
}

func TestEncode_FilterIDNeverReserved(t *testing.T) {
	// Whatever filter wins the competition on a smooth gradient, the
	// header's filter_id must be one of the three valid values, never the
	// reserved value 3.
	img := rgbaImage(8, 8, func(x, y int) color.NRGBA {
		return color.NRGBA{uint8(x + y), uint8(x), uint8(y), 255}
	})
	out, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	filterID := out[8] & 0b11
	if filterID > 2 {
		t.Fatalf("filter id = %d, want 0, 1, or 2 (never the reserved value 3)", filterID)
	}
}
