package otf2psf

import (
	"bytes"
	"io"

	"github.com/psftools/otf2psf/charset"
	"github.com/psftools/otf2psf/psf2"
	"github.com/psftools/otf2psf/raster"
)

// Convert runs the complete pipeline: rasterize the representative grapheme
// of every charset class at cfg.PixelSize, validate (or pad) the glyph set,
// and write the PSF2 byte stream to w. A nil or empty charset selects the
// default mapping of the first cfg.GlyphCount Unicode codepoints.
//
// Nothing is written to w before the whole encoding has succeeded, so a
// failing run never leaves partial output behind. The returned warnings are
// kernel-compatibility diagnostics; they do not invalidate the output.
func Convert(cfg Config, font *ScalableFont, cs charset.Charset, w io.Writer) ([]psf2.Warning, error) {
	rz, err := raster.NewFaceRasterizer(font.SFNT, cfg.PixelSize)
	if err != nil {
		return nil, err
	}
	cfg.Workers = 1 // FaceRasterizer is not safe for concurrent use
	return ConvertWith(cfg, rz, cs, w)
}

// ConvertWith is Convert with the rasterization engine supplied by the
// caller. Besides serving tests with a deterministic fake engine, it is the
// hook for alternative glyph sources.
func ConvertWith(cfg Config, rz raster.Rasterizer, cs charset.Charset, w io.Writer) ([]psf2.Warning, error) {
	if len(cs) == 0 {
		tracer().Infof("no charset given, using first %d codepoints", cfg.GlyphCount)
		cs = charset.Range(cfg.GlyphCount)
	}
	gs, err := raster.Render(rz, cs, cfg.Workers)
	if err != nil {
		return nil, err
	}
	if cfg.Pad {
		if err := gs.PadToMax(); err != nil {
			return nil, err
		}
	} else if err := gs.Validate(); err != nil {
		return nil, err
	}
	buf := bytes.Buffer{}
	warnings, err := psf2.Encode(&buf, gs, cfg.UnicodeTable)
	if err != nil {
		return warnings, err
	}
	_, err = w.Write(buf.Bytes())
	return warnings, err
}

// GlyphReport is the per-class outcome of a report run: either the rendered
// bitmap dimensions or the raster error for the class's representative
// grapheme.
type GlyphReport struct {
	Index    int
	Grapheme charset.Grapheme
	Dims     raster.Dimensions
	Err      error
}

// Report rasterizes every class like Convert would, but produces no PSF2
// output and never stops at a failure: every class is enumerated with its
// dimensions or its error. Intended as a diagnosis aid for picking fonts
// and sizes that yield a consistent glyph set.
func Report(cfg Config, font *ScalableFont, cs charset.Charset) ([]GlyphReport, error) {
	rz, err := raster.NewFaceRasterizer(font.SFNT, cfg.PixelSize)
	if err != nil {
		return nil, err
	}
	cfg.Workers = 1 // FaceRasterizer is not safe for concurrent use
	return ReportWith(cfg, rz, cs), nil
}

// ReportWith is Report with a caller-supplied rasterization engine.
func ReportWith(cfg Config, rz raster.Rasterizer, cs charset.Charset) []GlyphReport {
	if len(cs) == 0 {
		cs = charset.Range(cfg.GlyphCount)
	}
	reports := make([]GlyphReport, len(cs))
	for i, res := range raster.RenderAll(rz, cs, cfg.Workers) {
		reports[i] = GlyphReport{
			Index:    res.Index,
			Grapheme: cs[res.Index].Representative(),
			Err:      res.Err,
		}
		if res.Bitmap != nil {
			reports[i].Dims = raster.Dimensions{Width: res.Bitmap.Width, Height: res.Bitmap.Height}
		}
	}
	return reports
}
