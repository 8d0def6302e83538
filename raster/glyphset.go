package raster

import (
	"fmt"
	"sync"

	"github.com/psftools/otf2psf/charset"
)

// Dimensions is a glyph size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// String returns the dimensions as "W x H px".
func (d Dimensions) String() string {
	return fmt.Sprintf("%d x %d px", d.Width, d.Height)
}

// InconsistencyError reports that a glyph set does not share a single glyph
// size. It names the first offending class in scan order.
type InconsistencyError struct {
	Expected Dimensions // size established by the first glyph
	Index    int        // class index of the first offender
	Actual   Dimensions // the offender's size
}

// Error implements the error interface.
func (e InconsistencyError) Error() string {
	return fmt.Sprintf("glyphs do not all have the same dimensions: class %d is %s, expected %s",
		e.Index, e.Actual, e.Expected)
}

// GlyphSet is the ordered sequence of per-class bitmaps, index-aligned with
// the charset's classes. Class index is glyph-slot index in the PSF2 output.
type GlyphSet struct {
	Classes charset.Charset
	Bitmaps []*Bitmap
}

// Result is the outcome of rasterizing one class, used when a run collects
// all failures instead of stopping at the first one.
type Result struct {
	Index  int
	Bitmap *Bitmap // nil if Err is set
	Err    error
}

// Render rasterizes the representative grapheme of every class, in class
// order, and fails on the first raster error, naming the class it belongs
// to. With workers > 1, classes are rasterized concurrently; results are
// still index-aligned since every class owns a fixed output slot.
func Render(rz Rasterizer, cs charset.Charset, workers int) (*GlyphSet, error) {
	gs := &GlyphSet{Classes: cs, Bitmaps: make([]*Bitmap, len(cs))}
	if workers <= 1 {
		for i, cl := range cs {
			bitmap, err := rz.Rasterize(cl.Representative())
			if err != nil {
				return nil, fmt.Errorf("class %d: %w", i, err)
			}
			gs.Bitmaps[i] = bitmap
		}
		return gs, nil
	}
	for _, res := range RenderAll(rz, cs, workers) {
		if res.Err != nil {
			return nil, fmt.Errorf("class %d: %w", res.Index, res.Err)
		}
		gs.Bitmaps[res.Index] = res.Bitmap
	}
	return gs, nil
}

// RenderAll rasterizes every class and never stops early: each class yields
// either a bitmap or its raster error. Results are returned in class-index
// order. With workers > 1, rasterization calls run concurrently; classes
// are independent of each other, but the rasterizer itself must then be
// safe for concurrent use.
func RenderAll(rz Rasterizer, cs charset.Charset, workers int) []Result {
	results := make([]Result, len(cs))
	if workers <= 1 {
		for i, cl := range cs {
			bitmap, err := rz.Rasterize(cl.Representative())
			results[i] = Result{Index: i, Bitmap: bitmap, Err: err}
		}
		return results
	}
	tracer().Debugf("rasterizing %d classes with %d workers", len(cs), workers)
	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				bitmap, err := rz.Rasterize(cs[i].Representative())
				results[i] = Result{Index: i, Bitmap: bitmap, Err: err}
			}
		}()
	}
	for i := range cs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return results
}

// Dims returns the dimensions of the first glyph, or zero dimensions for an
// empty set. Meaningful for the whole set only after Validate or PadToMax.
func (gs *GlyphSet) Dims() Dimensions {
	if len(gs.Bitmaps) == 0 {
		return Dimensions{}
	}
	return Dimensions{Width: gs.Bitmaps[0].Width, Height: gs.Bitmaps[0].Height}
}

// Validate checks that all bitmaps share a single width and height. On a
// mismatch it fails with an InconsistencyError naming the first offending
// class in scan order.
func (gs *GlyphSet) Validate() error {
	if len(gs.Bitmaps) == 0 {
		return nil
	}
	expected := gs.Dims()
	for i, b := range gs.Bitmaps[1:] {
		if b.Width != expected.Width || b.Height != expected.Height {
			return InconsistencyError{
				Expected: expected,
				Index:    i + 1,
				Actual:   Dimensions{Width: b.Width, Height: b.Height},
			}
		}
	}
	return nil
}

// PadToMax grows every bitmap to the maximum width and height found across
// the whole set, content anchored at the origin and added pixels unset.
// A set that is already uniform is left unchanged. Needs the complete set,
// hence it runs only after all rasterization is done.
func (gs *GlyphSet) PadToMax() error {
	max := Dimensions{}
	for _, b := range gs.Bitmaps {
		if b.Width > max.Width {
			max.Width = b.Width
		}
		if b.Height > max.Height {
			max.Height = b.Height
		}
	}
	for i, b := range gs.Bitmaps {
		padded, err := b.Pad(max.Width, max.Height)
		if err != nil {
			return fmt.Errorf("class %d: %w", i, err)
		}
		gs.Bitmaps[i] = padded
	}
	return nil
}
