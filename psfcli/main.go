package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'psf.fonts'
func tracer() tracing.Trace {
	return tracing.Select("psf.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.psf.fonts": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// global command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Usage = usage
	flag.Parse()
	switch *tlevel {
	case "Debug":
		setTraceLevel(tracing.LevelDebug)
	case "Info":
		setTraceLevel(tracing.LevelInfo)
	case "Error":
		setTraceLevel(tracing.LevelError)
	default:
		pterm.Error.Printf("Invalid trace level: %s\n", *tlevel)
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}
	var err error
	switch cmd := flag.Arg(0); cmd {
	case "convert":
		err = convertCmd(flag.Args()[1:])
	case "report":
		err = reportCmd(flag.Args()[1:])
	default:
		pterm.Error.Printf("Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
}

func setTraceLevel(l tracing.TraceLevel) {
	for _, key := range []string{"psf.fonts", "psf.charset", "psf.raster", "psf.psf2"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

func usage() {
	pterm.Println("Usage:")
	pterm.Println("  psfcli [-trace level] convert <in-font> <out.psf> [size] [options]")
	pterm.Println("  psfcli [-trace level] report  <in-font> [size] [options]")
	pterm.Println("Options:")
	pterm.Println("  -u, --unicode-table-file <path>   charset definition file")
	pterm.Println("  -g <count>                        glyph count (default 256 without charset)")
	pterm.Println("  --pad                             pad undersized glyphs instead of failing")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// parseArgs runs fs over args, collecting positional arguments while still
// accepting flags that follow them. The standard flag package stops at the
// first non-flag argument, so parsing is restarted after each positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	positional := []string{}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return nil, err
		}
	}
	return positional, nil
}
