/*
Package otf2psf converts scalable fonts (OTF/TTF) into PSF2 bitmap console
fonts, for use as Linux TTY fonts.

The conversion pipeline is a one-shot batch transformation: a charset
definition is parsed into equivalence classes of Unicode graphemes (package
charset), each class's representative grapheme is rasterized into a
monochrome bitmap at the target pixel size (package raster), the resulting
glyph set is validated or padded to a uniform size, and the glyphs together
with the full Unicode mapping are serialized into the PSF2 binary layout
(package psf2). This package ties the stages together and holds the run-wide
configuration; the psfcli command is a thin front-end over it.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package otf2psf

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'psf.fonts'
func tracer() tracing.Trace {
	return tracing.Select("psf.fonts")
}

// ScalableFont is an internal representation of an outline-font of type
// TTF or OTF.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}
