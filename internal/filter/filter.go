// Package filter implements the three predictive per-pixel transforms NYA
// chooses between before entropy coding (spec.md §4.5, the C5 filter
// competition).
package filter

// ID identifies one of the three filter transforms. The numeric values
// match the 2-bit filter_id field of the NYA header.
type ID uint8

const (
	None ID = iota
	LeftDiff
	UpDiff
)

// Raster is a row-major grid of channel tuples, Channels wide (3 or 4).
// Only the first Channels bytes of each Pixel are meaningful.
type Raster struct {
	Width, Height int
	Channels      int
	Pixels        [][4]uint8 // row-major, length Width*Height
}

func at(r *Raster, x, y int) [4]uint8 { return r.Pixels[y*r.Width+x] }

func sub(p, prev [4]uint8, channels int) [4]uint8 {
	var out [4]uint8
	for c := 0; c < channels; c++ {
		out[c] = p[c] - prev[c] // wraps mod 256, per spec.md §4.5
	}
	return out
}

// seed returns the initial "previous pixel" for the LEFT-DIFF/UP-DIFF
// traversal, per spec.md §4.5.
func seed(channels int) [4]uint8 {
	if channels == 4 {
		return [4]uint8{0, 0, 0, 0}
	}
	return [4]uint8{255, 255, 255, 0}
}

// Apply returns a new raster with the given filter applied; the input
// raster is left unmodified.
func Apply(r *Raster, id ID) *Raster {
	switch id {
	case None:
		out := make([][4]uint8, len(r.Pixels))
		copy(out, r.Pixels)
		return &Raster{Width: r.Width, Height: r.Height, Channels: r.Channels, Pixels: out}
	case LeftDiff:
		return applyRowMajor(r)
	case UpDiff:
		return applyColumnMajor(r)
	default:
		panic("filter: unknown filter id")
	}
}

// applyRowMajor implements LEFT-DIFF: traverse in row-major order,
// predicting each pixel from the immediately preceding one in scan
// order.
func applyRowMajor(r *Raster) *Raster {
	out := make([][4]uint8, len(r.Pixels))
	prev := seed(r.Channels)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			p := at(r, x, y)
			out[y*r.Width+x] = sub(p, prev, r.Channels)
			prev = p
		}
	}
	return &Raster{Width: r.Width, Height: r.Height, Channels: r.Channels, Pixels: out}
}

// applyColumnMajor implements UP-DIFF: identical to LEFT-DIFF but
// traversing column-major order (spec.md §4.5: "transpose axes 0/1
// before and after").
func applyColumnMajor(r *Raster) *Raster {
	out := make([][4]uint8, len(r.Pixels))
	prev := seed(r.Channels)
	for x := 0; x < r.Width; x++ {
		for y := 0; y < r.Height; y++ {
			p := at(r, x, y)
			out[y*r.Width+x] = sub(p, prev, r.Channels)
			prev = p
		}
	}
	return &Raster{Width: r.Width, Height: r.Height, Channels: r.Channels, Pixels: out}
}

// Flatten returns the raster's pixels in row-major order, the sequence
// the RLE pass scans (spec.md §4.1 step 2).
func Flatten(r *Raster) [][4]uint8 {
	out := make([][4]uint8, len(r.Pixels))
	copy(out, r.Pixels)
	return out
}
