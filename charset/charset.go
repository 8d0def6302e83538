/*
Package charset defines the character-set grammar for PSF2 font generation.

A charset file groups Unicode codepoint sequences into equivalence classes.
Every content line of the file declares one class: a comma-separated list of
graphemes, where each grapheme is one or more whitespace-separated codepoint
tokens of the form `U+0041`. All graphemes of a class share a single glyph
slot in the generated font; the class's position in the file becomes the
glyph-slot index.

Example line, mapping the precomposed and the combining form of 'é' to one
glyph:

	U+00E9, U+0065 U+0301

Lines starting with '#' (after optional whitespace) are comments. Blank lines
are ignored.
*/
package charset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'psf.charset'
func tracer() tracing.Trace {
	return tracing.Select("psf.charset")
}

// Codepoint is a single Unicode scalar value.
type Codepoint rune

// MaxCodepoint is the largest valid Unicode scalar value.
const MaxCodepoint Codepoint = 0x10FFFF

// IsValid checks that c is a Unicode scalar value, i.e. within the Unicode
// codespace and not a surrogate.
func (c Codepoint) IsValid() bool {
	if c < 0 || c > MaxCodepoint {
		return false
	}
	return c < 0xD800 || c > 0xDFFF
}

// String returns the codepoint in charset-token notation, e.g. "U+00E9".
func (c Codepoint) String() string {
	return fmt.Sprintf("U+%04X", rune(c))
}

// Grapheme is an ordered, non-empty sequence of codepoints representing one
// user-visible character or combining sequence. Equality is sequence
// equality.
type Grapheme []Codepoint

// String returns the UTF-8 encoding of the grapheme's scalar sequence.
func (g Grapheme) String() string {
	sb := strings.Builder{}
	for _, c := range g {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// Equal compares two graphemes for sequence equality.
func (g Grapheme) Equal(other Grapheme) bool {
	if len(g) != len(other) {
		return false
	}
	for i, c := range g {
		if other[i] != c {
			return false
		}
	}
	return true
}

// tokens returns the grapheme in charset notation, e.g. "U+0065 U+0301".
func (g Grapheme) tokens() string {
	toks := make([]string, len(g))
	for i, c := range g {
		toks[i] = c.String()
	}
	return strings.Join(toks, " ")
}

// Class is an equivalence class of graphemes: all graphemes listed for one
// glyph slot. Graphemes keep the order they appeared in within the charset
// source; this order is needed for deterministic representative selection
// and for the PSF2 Unicode table.
type Class struct {
	Graphemes []Grapheme
}

// Representative selects the single grapheme of the class that will be
// rasterized to produce the glyph bitmap. It picks the grapheme with the
// fewest codepoints; ties go to the grapheme appearing earliest in the
// class's source order. The class is never empty after parsing, so
// Representative always succeeds. The selection is a pure function of the
// class and stable across calls.
func (cl Class) Representative() Grapheme {
	best := cl.Graphemes[0]
	for _, g := range cl.Graphemes[1:] {
		if len(g) < len(best) {
			best = g
		}
	}
	return best
}

// contains reports whether the class already lists g.
func (cl Class) contains(g Grapheme) bool {
	for _, have := range cl.Graphemes {
		if have.Equal(g) {
			return true
		}
	}
	return false
}

// Charset is an ordered sequence of equivalence classes. The index of a
// class is the glyph-slot index in the generated font.
type Charset []Class

// Range builds a charset covering the first n Unicode codepoints, each as a
// single-codepoint class. This is the default mapping of a PSF2 font without
// a Unicode table: glyph slot i renders codepoint i.
func Range(n int) Charset {
	cs := make(Charset, n)
	for i := 0; i < n; i++ {
		cs[i] = Class{Graphemes: []Grapheme{{Codepoint(i)}}}
	}
	return cs
}

// Truncate limits the charset to at most n classes.
func (cs Charset) Truncate(n int) Charset {
	if n < 0 || n >= len(cs) {
		return cs
	}
	tracer().Infof("truncating charset from %d to %d classes", len(cs), n)
	return cs[:n]
}

// String serializes the charset back into the charset grammar. Parsing the
// result yields an identical charset.
func (cs Charset) String() string {
	sb := strings.Builder{}
	for _, cl := range cs {
		toks := make([]string, len(cl.Graphemes))
		for i, g := range cl.Graphemes {
			toks[i] = g.tokens()
		}
		sb.WriteString(strings.Join(toks, ", "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
