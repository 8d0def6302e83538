package otf2psf

// Config collects all run-wide settings of a conversion. It is handed
// explicitly into the pipeline stages; no stage keeps ambient state, which
// keeps every component independently testable.
type Config struct {
	PixelSize    int  // target glyph height in pixels
	GlyphCount   int  // classes of the default charset when no charset file is given
	Pad          bool // pad undersized glyphs to the set's maximum instead of failing
	UnicodeTable bool // emit the PSF2 Unicode mapping table
	Workers      int  // rasterization workers; <= 1 is sequential, > 1 needs a concurrency-safe engine
}

const (
	// DefaultPixelSize is the glyph height used when no size is requested.
	DefaultPixelSize = 16
	// DefaultGlyphCount is the number of single-codepoint classes in the
	// default charset (Unicode codepoints 0 to 255).
	DefaultGlyphCount = 256
)

// DefaultConfig returns the settings of a plain conversion run: 16 px
// glyphs, 256-glyph default charset, strict size validation, Unicode table
// enabled, sequential rasterization.
func DefaultConfig() Config {
	return Config{
		PixelSize:    DefaultPixelSize,
		GlyphCount:   DefaultGlyphCount,
		UnicodeTable: true,
	}
}
