package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/psftools/otf2psf"
	"github.com/psftools/otf2psf/charset"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// reportCmd implements `psfcli report <in-font> [size]`: it rasterizes all
// classes like convert would, but only prints per-class dimensions and
// raster errors. Failures do not stop the enumeration.
func reportCmd(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	tablefile := fs.String("unicode-table-file", "", "charset definition file")
	fs.StringVar(tablefile, "u", "", "charset definition file (shorthand)")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 1 || len(positional) > 2 {
		return fmt.Errorf("report expects <in-font> [size], have %d arguments", len(positional))
	}

	cfg := otf2psf.DefaultConfig()
	if len(positional) == 2 {
		if cfg.PixelSize, err = strconv.Atoi(positional[1]); err != nil || cfg.PixelSize <= 0 {
			return fmt.Errorf("invalid pixel size: %q", positional[1])
		}
	}
	cs, err := loadCharset(*tablefile, 0)
	if err != nil {
		return err
	}
	font, err := otf2psf.LoadOpenTypeFont(positional[0])
	if err != nil {
		return err
	}
	pterm.Info.Printf("Rendering %s at %d px\n", font.Fontname, cfg.PixelSize)

	reports, err := otf2psf.Report(cfg, font, cs)
	if err != nil {
		return err
	}
	data := [][]string{
		{"Slot", "Grapheme", "Name", "Result"},
	}
	failed := 0
	for _, r := range reports {
		result := r.Dims.String()
		if r.Err != nil {
			result = r.Err.Error()
			failed++
		}
		data = append(data, []string{
			fmt.Sprintf("%d", r.Index),
			graphemeInfo(r.Grapheme),
			graphemeNames(r.Grapheme),
			result,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if failed > 0 {
		pterm.Warning.Printf("%d of %d classes failed to rasterize\n", failed, len(reports))
	}
	return nil
}

// graphemeInfo formats a grapheme as its visible form plus its codepoint
// tokens, e.g. `'é' (U+00E9)`.
func graphemeInfo(g charset.Grapheme) string {
	toks := make([]string, len(g))
	for i, c := range g {
		toks[i] = c.String()
	}
	return fmt.Sprintf("'%s' (%s)", g.String(), strings.Join(toks, " "))
}

// graphemeNames joins the Unicode character names of a grapheme's
// codepoints.
func graphemeNames(g charset.Grapheme) string {
	names := make([]string, len(g))
	for i, c := range g {
		names[i] = runenames.Name(rune(c))
	}
	return strings.Join(names, " + ")
}
