package nya

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/nyacodec/nya/internal/filter"
	"github.com/nyacodec/nya/internal/pipeline"
)

// MaxDimension is the largest width or height NYA's 16-bit header fields
// can represent (spec.md §3).
const MaxDimension = 65535

// EncodeFile reads the image at imagePath (PNG, JPEG, BMP, or TIFF — the
// external image-loading collaborator of spec.md §6, widened beyond
// stdlib PNG/JPEG via golang.org/x/image), encodes it to NYA, and writes
// "<basename>.nya" into outputDir. It returns the path written.
func EncodeFile(imagePath, outputDir string) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("nya: opening %s: %w", imagePath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("nya: decoding %s: %w", imagePath, err)
	}

	base := filepath.Base(imagePath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	outPath := filepath.Join(outputDir, base+".nya")

	data, err := Encode(img)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("nya: writing %s: %w", outPath, err)
	}
	return outPath, nil
}

// Encode runs the full NYA encoder pipeline over img and returns the
// assembled byte stream (spec.md §4.1 driver steps 1-6).
func Encode(img image.Image) ([]byte, error) {
	r, alphaEncoded, err := toRaster(img)
	if err != nil {
		return nil, err
	}
	return pipeline.Encode(r, alphaEncoded), nil
}

// toRaster converts img to a row-major channel-tuple raster, detecting
// whether an alpha channel is needed (spec.md §4.1 step 1) and validating
// dimensions (spec.md §7 DimensionError).
func toRaster(img image.Image) (*filter.Raster, bool, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return nil, false, fmt.Errorf("nya: %dx%d: %w", width, height, ErrDimensionOutOfRange)
	}

	pixels := make([][4]uint8, width*height)
	alphaEncoded := false
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := nrgbaAt(img, x, y)
			if p[3] != 255 {
				alphaEncoded = true
			}
			pixels[i] = p
			i++
		}
	}

	channels := 3
	if alphaEncoded {
		channels = 4
	} else {
		for i := range pixels {
			pixels[i][3] = 0
		}
	}

	return &filter.Raster{Width: width, Height: height, Channels: channels, Pixels: pixels}, alphaEncoded, nil
}

// nrgbaAt returns the unpremultiplied channel bytes of the pixel at (x, y).
// Using At(x, y).RGBA() directly would give alpha-premultiplied values for
// any NRGBA-backed source (what image/png decodes a partially transparent
// PNG into), corrupting every partial-alpha pixel NYA is supposed to
// losslessly preserve. *image.NRGBA is read directly from Pix (already
// unpremultiplied); every other type, including the premultiplied
// *image.RGBA, goes through color.NRGBAModel.Convert.
func nrgbaAt(img image.Image, x, y int) [4]uint8 {
	switch im := img.(type) {
	case *image.NRGBA:
		o := im.PixOffset(x, y)
		px := im.Pix[o : o+4 : o+4]
		return [4]uint8{px[0], px[1], px[2], px[3]}
	case *image.RGBA:
		// image.RGBA already stores premultiplied channels; convert through
		// the color model rather than reading Pix directly.
		c := color.NRGBAModel.Convert(im.RGBAAt(x, y)).(color.NRGBA)
		return [4]uint8{c.R, c.G, c.B, c.A}
	default:
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		return [4]uint8{c.R, c.G, c.B, c.A}
	}
}
