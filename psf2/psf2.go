/*
Package psf2 reads and writes the PSF2 binary format ("PC Screen Font"
version 2), the bitmap console font format used by Linux virtual terminals.

A PSF2 file is a fixed 32-byte little-endian header, a blob of glyph
bitmaps, and an optional Unicode mapping table. The bit-level layout here is
the load-bearing compatibility surface towards setfont(8), psfgettable(1)
and the kernel's console driver; any deviation breaks those consumers.
*/
package psf2

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'psf.psf2'
func tracer() tracing.Trace {
	return tracing.Select("psf.psf2")
}

// Magic is the PSF2 signature, bytes 0x72 0xb5 0x4a 0x86 on disk.
const Magic uint32 = 0x864AB572

const (
	// Version is the only defined PSF2 version.
	Version uint32 = 0
	// HeaderSize is the byte size of the fixed header.
	HeaderSize uint32 = 32
	// FlagHasUnicodeTable is set in the header flags if a Unicode mapping
	// table follows the glyph bitmaps.
	FlagHasUnicodeTable uint32 = 0x01
)

const (
	// Separator divides alternative graphemes within one Unicode table
	// entry.
	Separator byte = 0xFE
	// Terminator ends a glyph's Unicode table entry.
	Terminator byte = 0xFF
)

// Limits imposed by the Linux kernel's console font loader, not by the
// format itself. Exceeding them yields a valid PSF2 file that the target
// kernel will refuse.
const (
	// MaxGlyphs is the largest glyph count setfont will load into a VT.
	MaxGlyphs = 512
	// MaxWidth is the widest glyph the kernel accepts.
	MaxWidth = 64
	// MaxHeight is the tallest glyph the kernel accepts.
	MaxHeight = 128
)

// Header is the fixed PSF2 file header. All fields are little-endian on
// disk.
type Header struct {
	Magic      uint32
	Version    uint32
	HeaderSize uint32
	Flags      uint32
	Length     uint32 // number of glyphs
	CharSize   uint32 // bytes per glyph bitmap: ceil(width/8) * height
	Height     uint32 // glyph height in pixels
	Width      uint32 // glyph width in pixels
}

// HasUnicodeTable reports whether the header announces a Unicode table.
func (h Header) HasUnicodeTable() bool {
	return h.Flags&FlagHasUnicodeTable != 0
}

// String returns a one-line summary of the header.
func (h Header) String() string {
	return fmt.Sprintf("<PSF2 glyphs: %d, size: %d x %d, bytes per glyph: %d, flags: 0x%x>",
		h.Length, h.Width, h.Height, h.CharSize, h.Flags)
}

// WarningKind discriminates kernel-compatibility diagnostics.
type WarningKind int

const (
	// GlyphSetTooLarge indicates more glyphs than the kernel will load.
	GlyphSetTooLarge WarningKind = iota
	// GlyphTooLarge indicates glyph dimensions beyond the kernel's limits.
	GlyphTooLarge
)

// String returns a human-readable representation of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case GlyphSetTooLarge:
		return "glyph set too large"
	case GlyphTooLarge:
		return "glyph too large"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal kernel-compatibility diagnostic. The encoded file
// is valid PSF2 either way; the warning tells the caller that the target
// kernel will not accept it.
type Warning struct {
	Kind   WarningKind
	Detail string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("[WARNING] %s: %s", w.Kind, w.Detail)
}
