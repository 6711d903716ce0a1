package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	docs2pdf "github.com/alnah/go-docs2pdf"
	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/config"
	"github.com/alnah/go-docs2pdf/internal/hints"
	"github.com/alnah/go-docs2pdf/internal/nav"
	"github.com/alnah/go-docs2pdf/internal/slug"
)

// ErrUsage indicates wrong command-line arguments.
var ErrUsage = errors.New("invalid usage")

// defaultTimeout applies when neither flag, environment nor config set one.
const defaultTimeout = 30 * time.Second

// runBuildCmd runs the md2pdf command and returns an exit code.
func runBuildCmd(args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, positional, flags, env); err != nil {
		output := ""
		if len(positional) > 1 {
			output = positional[1]
		}
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, output, env))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild resolves configuration and runs one build.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	if len(positional) != 2 {
		return fmt.Errorf("%w: expected <input_spec> <output.pdf>, got %d argument(s)", ErrUsage, len(positional))
	}

	warnUnknownEnvVars(env.Stderr, env.environ())
	envCfg := loadEnvConfig(env)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	timeout, err := resolveTimeoutWithEnv(flags.timeout, envCfg.Timeout, cfg.Timeout)
	if err != nil {
		return err
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	logger.Debug("configuration resolved", "timeout", timeout, "page", page.Size, "style", cfg.Stylesheet)

	b, err := docs2pdf.NewBuilder(builderOptions(cfg, timeout, page, logger)...)
	if err != nil {
		return err
	}
	defer b.Close()

	res, err := b.Build(ctx, docs2pdf.Request{
		Inputs:   positional[0],
		NavPath:  flags.nav,
		Output:   positional[1],
		HTMLOnly: flags.htmlOnly,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		printResult(env.Stdout, res)
	}
	return nil
}

// loadConfig loads the file named by the flag, else by DOCS2PDF_CONFIG.
// Without either the defaults apply; there is no implicit search.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over config values (CLI wins).
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Stylesheet = flags.style
	}
	if flags.highlight != "" {
		cfg.Highlight = flags.highlight
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.linkPrefixSet {
		prefix := flags.linkPrefix
		cfg.Links.Prefix = &prefix
	}
	if flags.noRawHTML {
		raw := false
		cfg.Markdown.RawHTML = &raw
	}
}

// resolveTimeoutWithEnv picks the timeout: flag > environment > config > default.
// A flag value that does not parse or is not positive is an error.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid timeout %q: %v", ErrUsage, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrUsage, flagValue)
		}
		return d, nil
	}

	if envValue > 0 {
		return envValue, nil
	}

	if configValue != "" {
		d, err := time.ParseDuration(configValue)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid timeout in config %q: %v", config.ErrInvalidValue, configValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: timeout must be positive, got %s", config.ErrInvalidValue, configValue)
		}
		return d, nil
	}

	return defaultTimeout, nil
}

// buildPageSettings fills unset page fields with defaults and validates.
func buildPageSettings(cfg *config.Config) (*docs2pdf.PageSettings, error) {
	ps := docs2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin > 0 {
		ps.Margin = cfg.Page.Margin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// builderOptions translates the merged configuration into builder options.
func builderOptions(cfg *config.Config, timeout time.Duration, page *docs2pdf.PageSettings, logger *slog.Logger) []docs2pdf.Option {
	transliterate := true
	if cfg.Slug.Transliterate != nil {
		transliterate = *cfg.Slug.Transliterate
	}

	opts := []docs2pdf.Option{
		docs2pdf.WithTimeout(timeout),
		docs2pdf.WithPage(page),
		docs2pdf.WithStyle(cfg.Stylesheet),
		docs2pdf.WithAssetPath(cfg.Assets.BasePath),
		docs2pdf.WithHighlightStyle(cfg.Highlight),
		docs2pdf.WithSlugOptions(docs2pdf.SlugOptions{
			Transliterate: transliterate,
			MaxLength:     cfg.Slug.MaxLength,
			WholeWords:    cfg.Slug.WholeWords,
		}),
		docs2pdf.WithLogger(logger),
	}
	if cfg.Links.Prefix != nil {
		opts = append(opts, docs2pdf.WithLinkPrefix(*cfg.Links.Prefix))
	}
	if cfg.Markdown.RawHTML != nil {
		opts = append(opts, docs2pdf.WithRawHTML(*cfg.Markdown.RawHTML))
	}
	return opts
}

// newLogger returns a debug text logger on w when verbose, else a discarding one.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// printResult reports what the build wrote.
// An empty PDFPath means the build stopped after the HTML.
func printResult(w io.Writer, res *docs2pdf.Result) {
	noun := "documents"
	if res.Sections == 1 {
		noun = "document"
	}
	target := "into a single PDF"
	if res.PDFPath == "" {
		target = "to HTML"
	}
	var skipped string
	if n := len(res.Documents) - res.Sections; n > 0 {
		skipped = fmt.Sprintf(" (%d skipped: not Markdown)", n)
	}
	fmt.Fprintf(w, "%d %s converted %s%s.\n", res.Sections, noun, target, skipped)
	for _, p := range []string{res.HTMLPath, res.StylesheetPath, res.PDFPath} {
		if p != "" {
			fmt.Fprintf(w, "Created %s\n", p)
		}
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, output string, env *Environment) string {
	switch {
	case errors.Is(err, docs2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.getenv)
	case errors.Is(err, docs2pdf.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, nav.ErrAmbiguousEntry), errors.Is(err, nav.ErrInvalidEntry):
		return hints.ForNavigation()
	case errors.Is(err, slug.ErrTruncate):
		return hints.ForTruncate()
	case errors.Is(err, os.ErrNotExist):
		if output != "" {
			if _, statErr := os.Stat(filepath.Dir(output)); statErr != nil {
				return hints.ForOutputDirectory()
			}
		}
		return hints.ForInputNotFound()
	}
	return ""
}

// triedPaths extracts the searched locations from a config-not-found error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
