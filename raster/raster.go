package raster

import (
	"fmt"
	"image"

	"github.com/psftools/otf2psf/charset"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Rasterizer turns one grapheme into a monochrome bitmap. Implementations
// wrap a font engine at a fixed pixel size; the pipeline core only ever
// talks to this interface, so tests substitute a deterministic fake.
type Rasterizer interface {
	Rasterize(g charset.Grapheme) (*Bitmap, error)
}

// ErrorCause discriminates the ways rasterization of a grapheme can fail.
type ErrorCause int

const (
	// NoCoverage indicates the font has no glyph for a codepoint of the
	// grapheme.
	NoCoverage ErrorCause = iota
	// EngineFailure indicates the underlying font engine reported an error.
	EngineFailure
	// BadDimensions indicates the members of a combining sequence produced
	// bitmaps of differing sizes and could not be overlaid.
	BadDimensions
)

// String returns a human-readable representation of the cause.
func (c ErrorCause) String() string {
	switch c {
	case NoCoverage:
		return "not covered by font"
	case EngineFailure:
		return "font engine failure"
	case BadDimensions:
		return "inconsistent dimensions in combining sequence"
	default:
		return "unknown"
	}
}

// Error is a rasterization failure, attributable to one grapheme.
type Error struct {
	Grapheme charset.Grapheme
	Cause    ErrorCause
	Err      error // underlying engine error, may be nil
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grapheme %q: %s: %v", e.Grapheme.String(), e.Cause, e.Err)
	}
	return fmt.Sprintf("grapheme %q: %s", e.Grapheme.String(), e.Cause)
}

// Unwrap returns the underlying engine error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// --- Face-backed rasterizer -------------------------------------------

// FaceRasterizer renders graphemes through a font face scaled to a fixed
// pixel height. The glyph cell is as wide as the horizontal advance of the
// grapheme's first codepoint and exactly the pixel size tall, with the
// baseline placed at the face's ascent. Subsequent codepoints of a
// combining sequence are drawn into the same cell.
//
// A FaceRasterizer is not safe for concurrent use; it reuses an internal
// sfnt buffer across calls. Concurrent rendering needs one rasterizer per
// worker.
type FaceRasterizer struct {
	sfnt    *sfnt.Font
	face    font.Face
	size    int
	ascent  int
	sfntBuf sfnt.Buffer
}

// NewFaceRasterizer creates a rasterizer for otf at the given pixel size.
// The face is constructed without hinting; pixels with at least half
// coverage are set, everything else stays unset.
func NewFaceRasterizer(otf *sfnt.Font, size int) (*FaceRasterizer, error) {
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	metrics := face.Metrics()
	return &FaceRasterizer{
		sfnt:   otf,
		face:   face,
		size:   size,
		ascent: metrics.Ascent.Ceil(),
	}, nil
}

// Rasterize renders g into a 1-bit bitmap. It fails with cause NoCoverage
// if any codepoint of g has no glyph in the font, and with EngineFailure if
// the face cannot produce an advance for the cell.
func (fr *FaceRasterizer) Rasterize(g charset.Grapheme) (*Bitmap, error) {
	for _, c := range g {
		gi, err := fr.sfnt.GlyphIndex(&fr.sfntBuf, rune(c))
		if err != nil {
			return nil, Error{Grapheme: g, Cause: EngineFailure, Err: err}
		}
		if gi == 0 {
			return nil, Error{Grapheme: g, Cause: NoCoverage}
		}
	}
	advance, ok := fr.face.GlyphAdvance(rune(g[0]))
	if !ok {
		return nil, Error{Grapheme: g, Cause: NoCoverage}
	}
	width := advance.Ceil()
	if width <= 0 {
		width = 1 // zero-advance base codepoint still needs a cell
	}
	tracer().Debugf("rasterizing %q onto %d x %d canvas", g.String(), width, fr.size)

	dst := image.NewGray(image.Rect(0, 0, width, fr.size))
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: fr.face,
		Dot:  fixed.P(0, fr.ascent),
	}
	// Marks carry zero advance, so drawing the whole sequence stacks them
	// over the base glyph.
	drawer.DrawString(g.String())

	bitmap := NewBitmap(width, fr.size)
	for y := 0; y < fr.size; y++ {
		for x := 0; x < width; x++ {
			if dst.GrayAt(x, y).Y >= 0x80 {
				bitmap.Set(x, y)
			}
		}
	}
	return bitmap, nil
}
