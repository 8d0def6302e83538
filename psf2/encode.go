package psf2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/psftools/otf2psf/charset"
	"github.com/psftools/otf2psf/raster"
)

// ErrEmptyGlyphSet is returned when encoding a glyph set without glyphs;
// there are no dimensions to derive a header from.
var ErrEmptyGlyphSet = errors.New("psf2: cannot encode empty glyph set")

// Encode writes gs as a complete PSF2 byte stream to w. The glyph set must
// be uniform (validated or padded); glyph-slot order is class-index order.
// With withTable set, a Unicode mapping table follows the bitmaps, listing
// every grapheme of each class in charset source order.
//
// Kernel-compatibility violations (glyph count over 512, dimensions over
// 64 x 128) are returned as non-fatal warnings; the stream is still written
// in full, since the format itself is unconstrained.
func Encode(w io.Writer, gs *raster.GlyphSet, withTable bool) ([]Warning, error) {
	if len(gs.Bitmaps) == 0 {
		return nil, ErrEmptyGlyphSet
	}
	dims := gs.Dims()
	warnings := check(len(gs.Bitmaps), dims)
	for _, warning := range warnings {
		tracer().Infof("%s", warning)
	}

	header := Header{
		Magic:      Magic,
		Version:    Version,
		HeaderSize: HeaderSize,
		Length:     uint32(len(gs.Bitmaps)),
		CharSize:   uint32(gs.Bitmaps[0].Size()),
		Height:     uint32(dims.Height),
		Width:      uint32(dims.Width),
	}
	if withTable {
		header.Flags = FlagHasUnicodeTable
	}
	tracer().Debugf("encoding %v", header)
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return warnings, err
	}
	for i, b := range gs.Bitmaps {
		if _, err := w.Write(b.Bytes()); err != nil {
			return warnings, fmt.Errorf("glyph %d: %w", i, err)
		}
	}
	if !withTable {
		return warnings, nil
	}
	for i, cl := range gs.Classes {
		if _, err := w.Write(unicodeEntry(cl.Graphemes)); err != nil {
			return warnings, fmt.Errorf("unicode entry %d: %w", i, err)
		}
	}
	return warnings, nil
}

// unicodeEntry encodes one glyph's Unicode table entry: every grapheme of
// the class as UTF-8 scalars, alternatives divided by the separator byte,
// the whole entry closed by the terminator byte.
func unicodeEntry(graphemes []charset.Grapheme) []byte {
	entry := []byte{}
	for i, g := range graphemes {
		if i > 0 {
			entry = append(entry, Separator)
		}
		entry = append(entry, []byte(g.String())...)
	}
	return append(entry, Terminator)
}

// check collects kernel-compatibility warnings for a glyph set about to be
// encoded.
func check(count int, dims raster.Dimensions) []Warning {
	var warnings []Warning
	if count > MaxGlyphs {
		warnings = append(warnings, Warning{
			Kind:   GlyphSetTooLarge,
			Detail: fmt.Sprintf("%d glyphs, Linux accepts at most %d", count, MaxGlyphs),
		})
	}
	if dims.Width > MaxWidth || dims.Height > MaxHeight {
		warnings = append(warnings, Warning{
			Kind:   GlyphTooLarge,
			Detail: fmt.Sprintf("glyphs are %s, Linux accepts at most %d x %d px", dims, MaxWidth, MaxHeight),
		})
	}
	return warnings
}
