package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/psftools/otf2psf"
	"github.com/psftools/otf2psf/charset"
	"github.com/pterm/pterm"
)

// convertCmd implements `psfcli convert <in-font> <out.psf> [size]`.
func convertCmd(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	tablefile := fs.String("unicode-table-file", "", "charset definition file")
	fs.StringVar(tablefile, "u", "", "charset definition file (shorthand)")
	count := fs.Int("g", 0, "glyph count")
	pad := fs.Bool("pad", false, "pad undersized glyphs")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 2 || len(positional) > 3 {
		return fmt.Errorf("convert expects <in-font> <out.psf> [size], have %d arguments", len(positional))
	}

	cfg := otf2psf.DefaultConfig()
	cfg.Pad = *pad
	if len(positional) == 3 {
		if cfg.PixelSize, err = strconv.Atoi(positional[2]); err != nil || cfg.PixelSize <= 0 {
			return fmt.Errorf("invalid pixel size: %q", positional[2])
		}
	}
	if *count > 0 {
		cfg.GlyphCount = *count
	}

	cs, err := loadCharset(*tablefile, *count)
	if err != nil {
		return err
	}
	// A font without a charset maps glyph slots to codepoints implicitly,
	// so there is no table to write.
	cfg.UnicodeTable = *tablefile != ""

	font, err := otf2psf.LoadOpenTypeFont(positional[0])
	if err != nil {
		return err
	}
	tracer().Infof("loaded font %s", font.Fontname)

	// Write the output next to its final path and rename only on success,
	// so a failing run leaves no partial file behind.
	outpath := positional[1]
	tmp, err := os.CreateTemp(filepath.Dir(outpath), ".psfcli-*")
	if err != nil {
		return err
	}
	warnings, err := otf2psf.Convert(cfg, font, cs, tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), outpath); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	for _, warning := range warnings {
		pterm.Warning.Println(warning.String())
	}
	pterm.Info.Printf("Wrote PSF2 font %s\n", outpath)
	return nil
}

// loadCharset reads a charset definition file, or returns nil so that the
// pipeline falls back to the default codepoint range. A glyph count given
// alongside a charset file truncates the charset.
func loadCharset(path string, count int) (charset.Charset, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cs, err := charset.ParseReader(f)
	if err != nil {
		return nil, err
	}
	if len(cs) == 0 {
		return nil, fmt.Errorf("charset file %s defines no classes", path)
	}
	if count > 0 {
		cs = cs.Truncate(count)
	}
	return cs, nil
}
