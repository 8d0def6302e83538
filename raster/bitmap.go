/*
Package raster renders charset graphemes into fixed-size monochrome bitmaps.

The package has three parts: the Bitmap type, storing 1-bit pixels in the
byte-padded MSB-first row layout that PSF2 uses; the Rasterizer interface,
abstracting the font engine behind a single Rasterize operation so that the
pipeline can be driven by a fake engine in tests; and the GlyphSet, which
collects one bitmap per equivalence class and enforces (or establishes, by
padding) uniform glyph dimensions.
*/
package raster

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'psf.raster'
func tracer() tracing.Trace {
	return tracing.Select("psf.raster")
}

// Bitmap is a width×height grid of 1-bit pixels. Rows are stored
// byte-padded: each row occupies ceil(width/8) bytes, the most significant
// bit of a row's first byte is the leftmost pixel, and unused trailing bits
// of a row are always 0. This is exactly the PSF2 glyph layout, so encoding
// a bitmap is a plain copy of its data.
type Bitmap struct {
	Width  int
	Height int
	data   []byte
}

// NewBitmap creates an all-unset bitmap. Dimensions must be positive.
func NewBitmap(width, height int) *Bitmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("bitmap dimensions must be positive, have %d x %d", width, height))
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		data:   make([]byte, rowBytes(width)*height),
	}
}

// rowBytes is the byte length of one padded row.
func rowBytes(width int) int {
	return (width + 7) / 8
}

// Set sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.data[y*rowBytes(b.Width)+x/8] |= 0x80 >> (x % 8)
}

// At reports whether the pixel at (x, y) is set. Out-of-range coordinates
// read as unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.data[y*rowBytes(b.Width)+x/8]&(0x80>>(x%8)) != 0
}

// Bytes returns the raw row data. Callers must not modify it.
func (b *Bitmap) Bytes() []byte {
	return b.data
}

// Size returns the byte length of the bitmap data, i.e. ceil(width/8)*height.
func (b *Bitmap) Size() int {
	return len(b.data)
}

// Equal compares dimensions and pixel content.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.Width != other.Width || b.Height != other.Height {
		return false
	}
	for i, by := range b.data {
		if other.data[i] != by {
			return false
		}
	}
	return true
}

// Pad extends the bitmap canvas to width×height, the original content
// anchored at the origin (0,0) and all added pixels unset. Padding never
// alters pixels already present. Returns the receiver unchanged if the
// target equals the current size, and an error if the target is smaller in
// either dimension.
func (b *Bitmap) Pad(width, height int) (*Bitmap, error) {
	if width < b.Width || height < b.Height {
		return nil, fmt.Errorf("cannot pad %d x %d bitmap to smaller size %d x %d",
			b.Width, b.Height, width, height)
	}
	if width == b.Width && height == b.Height {
		return b, nil
	}
	padded := NewBitmap(width, height)
	srcRow, dstRow := rowBytes(b.Width), rowBytes(width)
	for y := 0; y < b.Height; y++ {
		copy(padded.data[y*dstRow:y*dstRow+srcRow], b.data[y*srcRow:(y+1)*srcRow])
	}
	return padded, nil
}

// Overlay combines two bitmaps of identical dimensions with a bitwise OR,
// returning a new bitmap. This is how a combining sequence is rendered: the
// base glyph and its marks are drawn into cells of equal size and stacked.
func (b *Bitmap) Overlay(other *Bitmap) (*Bitmap, error) {
	if b.Width != other.Width || b.Height != other.Height {
		return nil, fmt.Errorf("cannot overlay %d x %d bitmap onto %d x %d bitmap",
			other.Width, other.Height, b.Width, b.Height)
	}
	sum := NewBitmap(b.Width, b.Height)
	for i := range sum.data {
		sum.data[i] = b.data[i] | other.data[i]
	}
	return sum, nil
}
