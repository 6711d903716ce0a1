package docs2pdf

import (
	"log/slog"
	"time"

	"github.com/alnah/go-docs2pdf/internal/pipeline"
	"github.com/alnah/go-docs2pdf/internal/slug"
)

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	timeout    time.Duration
	page       *PageSettings
	styleRef   string // bundled style name or .css path
	css        string // raw CSS, wins over styleRef
	assetPath  string
	highlight  string
	linkPrefix string
	slug       slug.Options
	rawHTML    bool
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{
		timeout:    defaultTimeout,
		page:       DefaultPageSettings(),
		linkPrefix: pipeline.DefaultLinkPrefix,
		slug:       slug.DefaultOptions(),
		rawHTML:    true,
	}
}

// WithTimeout sets the browser render timeout.
// Panics if d <= 0 (programming error).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docs2pdf: timeout must be positive")
	}
	return func(b *Builder) {
		b.cfg.timeout = d
	}
}

// WithPage sets the PDF page settings. nil keeps the defaults.
func WithPage(p *PageSettings) Option {
	return func(b *Builder) {
		if p != nil {
			b.cfg.page = p
		}
	}
}

// WithStyle selects a bundled style by name ("pdf", "minimal") or a CSS
// file by path.
func WithStyle(nameOrPath string) Option {
	return func(b *Builder) {
		b.cfg.styleRef = nameOrPath
	}
}

// WithStylesheet sets the base stylesheet content directly.
// It takes precedence over WithStyle.
func WithStylesheet(css string) Option {
	return func(b *Builder) {
		b.cfg.css = css
	}
}

// WithAssetPath adds a directory searched for named styles before the
// bundled ones.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = dir
	}
}

// WithHighlightStyle sets the chroma style used for code blocks.
func WithHighlightStyle(name string) Option {
	return func(b *Builder) {
		b.cfg.highlight = name
	}
}

// WithLinkPrefix sets the prefix joined to link targets before they are
// matched against the declared document paths. Empty matches hrefs as-is.
func WithLinkPrefix(prefix string) Option {
	return func(b *Builder) {
		b.cfg.linkPrefix = prefix
	}
}

// SlugOptions controls how heading and link texts become anchors.
type SlugOptions struct {
	Transliterate bool // spell non-ASCII text in ASCII instead of dropping it
	MaxLength     int  // 0 = unlimited
	WholeWords    bool // cut on a hyphen; fails the build when none fits
}

// WithSlugOptions sets how heading and link texts become anchors.
func WithSlugOptions(opts SlugOptions) Option {
	return func(b *Builder) {
		b.cfg.slug = slug.Options{
			Transliterate: opts.Transliterate,
			MaxLen:        opts.MaxLength,
			WholeWords:    opts.WholeWords,
		}
	}
}

// WithRawHTML toggles pass-through of raw HTML found in Markdown.
func WithRawHTML(enabled bool) Option {
	return func(b *Builder) {
		b.cfg.rawHTML = enabled
	}
}

// WithLogger sets the logger for build stages. nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// withPDFConverter replaces the browser backend (tests).
func withPDFConverter(c pdfConverter) Option {
	return func(b *Builder) {
		b.pdfConverter = c
	}
}
