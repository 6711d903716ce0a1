package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docs2pdf help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the md2pdf command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2pdf md2pdf <input_spec> <output.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble Markdown documents into one HTML file and one PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_spec    Comma-separated Markdown files, or mkdocs.yml to follow its nav")
	fmt.Fprintln(w, "  output.pdf    PDF path; the .html and pdf.css are written next to it")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --nav <path>          Navigation file (overrides input_spec)")
	fmt.Fprintln(w, "      --link-prefix <s>     Prefix joined to link targets (default \"docs/\")")
	fmt.Fprintln(w, "      --no-raw-html         Drop raw HTML found in Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Bundled style (pdf, minimal) or CSS file")
	fmt.Fprintln(w, "      --highlight <name>    Code highlight style (default github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal (default a4)")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF render timeout (default 30s)")
	fmt.Fprintln(w, "      --html-only           Write HTML and stylesheet, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log build stages to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCS2PDF_CONFIG, DOCS2PDF_TIMEOUT, DOCS2PDF_STYLE, DOCS2PDF_HIGHLIGHT,")
	fmt.Fprintln(w, "  DOCS2PDF_PAGE_SIZE, DOCS2PDF_LINK_PREFIX, ROD_BROWSER_BIN, ROD_NO_SANDBOX")
}

func printDoctorUsage(env *Environment) {
	fmt.Fprintln(env.Stdout, "Usage: docs2pdf doctor [--json]")
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Check Chrome, sandbox settings and the temp directory.")
}

func printVersionUsage(env *Environment) {
	fmt.Fprintln(env.Stdout, "Usage: docs2pdf version")
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Show version information.")
}

func printHelpUsage(env *Environment) {
	fmt.Fprintln(env.Stdout, "Usage: docs2pdf help [command]")
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Show help for a command.")
}

// runHelpCmd prints help for a specific command.
func runHelpCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	cmd.usage(env)
	return ExitSuccess
}
