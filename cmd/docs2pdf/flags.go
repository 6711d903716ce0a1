package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// buildFlags holds all flags for the md2pdf command.
type buildFlags struct {
	common        commonFlags
	timeout       string
	nav           string
	style         string
	highlight     string
	linkPrefix    string
	linkPrefixSet bool // --link-prefix given, possibly empty
	htmlOnly      bool
	noRawHTML     bool
	page          pageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log build stages to stderr")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// parseBuildFlags parses md2pdf command flags and returns positional args.
// Usage goes to usageOut when parsing fails or --help is given.
func parseBuildFlags(args []string, usageOut io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("md2pdf", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &buildFlags{}

	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF render timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.nav, "nav", "", "navigation file; overrides the input spec")
	fs.StringVar(&f.style, "style", "", "style name or CSS file path")
	fs.StringVar(&f.highlight, "highlight", "", "code highlight style (chroma)")
	fs.StringVar(&f.linkPrefix, "link-prefix", "", "prefix joined to link targets before matching (default \"docs/\")")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML and stylesheet, skip PDF")
	fs.BoolVar(&f.noRawHTML, "no-raw-html", false, "drop raw HTML found in Markdown")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	fs.Usage = func() { printBuildUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.linkPrefixSet = fs.Changed("link-prefix")

	return f, fs.Args(), nil
}
