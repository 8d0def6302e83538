package psf2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/psftools/otf2psf/charset"
)

// Font is a decoded PSF2 font: header, raw per-glyph bitmap bytes, and the
// Unicode mapping (one entry per glyph, absent without a table flag).
type Font struct {
	Header  Header
	Glyphs  [][]byte        // CharSize bytes each, glyph-slot order
	Mapping []charset.Class // index-aligned with Glyphs, nil without table
}

// Decode reads a complete PSF2 byte stream. It accepts any glyph count and
// size; kernel limits apply to loading fonts, not reading them.
func Decode(r io.Reader) (*Font, error) {
	f := &Font{}
	if err := binary.Read(r, binary.LittleEndian, &f.Header); err != nil {
		return nil, fmt.Errorf("psf2 header: %w", err)
	}
	if f.Header.Magic != Magic {
		return nil, fmt.Errorf("not a PSF2 file: magic is 0x%08x", f.Header.Magic)
	}
	if f.Header.Version != Version {
		return nil, fmt.Errorf("unsupported PSF2 version %d", f.Header.Version)
	}
	// Permit future headers longer than ours by skipping the extra bytes.
	if f.Header.HeaderSize > HeaderSize {
		if _, err := io.CopyN(io.Discard, r, int64(f.Header.HeaderSize-HeaderSize)); err != nil {
			return nil, fmt.Errorf("psf2 header padding: %w", err)
		}
	}
	rowlen := (f.Header.Width + 7) / 8
	if f.Header.CharSize != rowlen*f.Header.Height {
		return nil, fmt.Errorf("glyph size %d does not match %d x %d px glyphs",
			f.Header.CharSize, f.Header.Width, f.Header.Height)
	}
	f.Glyphs = make([][]byte, f.Header.Length)
	for i := range f.Glyphs {
		f.Glyphs[i] = make([]byte, f.Header.CharSize)
		if _, err := io.ReadFull(r, f.Glyphs[i]); err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
	}
	if !f.Header.HasUnicodeTable() {
		return f, nil
	}
	table, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unicode table: %w", err)
	}
	f.Mapping = make([]charset.Class, f.Header.Length)
	for i := range f.Mapping {
		end := bytes.IndexByte(table, Terminator)
		if end < 0 {
			return nil, fmt.Errorf("unicode entry %d: unterminated", i)
		}
		cl, err := decodeEntry(table[:end])
		if err != nil {
			return nil, fmt.Errorf("unicode entry %d: %w", i, err)
		}
		f.Mapping[i] = cl
		table = table[end+1:]
	}
	return f, nil
}

// decodeEntry parses one Unicode table entry (terminator already stripped)
// into the glyph's equivalence class.
func decodeEntry(entry []byte) (charset.Class, error) {
	cl := charset.Class{}
	for _, segment := range bytes.Split(entry, []byte{Separator}) {
		g := charset.Grapheme{}
		for len(segment) > 0 {
			r, size := utf8.DecodeRune(segment)
			if r == utf8.RuneError && size <= 1 {
				return cl, fmt.Errorf("invalid UTF-8 in table entry: % x", segment)
			}
			g = append(g, charset.Codepoint(r))
			segment = segment[size:]
		}
		if len(g) > 0 {
			cl.Graphemes = append(cl.Graphemes, g)
		}
	}
	return cl, nil
}
