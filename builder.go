package docs2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/fileutil"
	"github.com/alnah/go-docs2pdf/internal/pipeline"
)

// StylesheetFile is the name of the stylesheet written next to the output.
const StylesheetFile = "pdf.css"

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
)

// Builder turns a set of Markdown documents into one HTML file and one PDF.
// Create with NewBuilder, run Build, and Close when done.
type Builder struct {
	cfg           builderConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
	logger        *slog.Logger
	stylesheet    string // base style followed by the highlight CSS
}

// NewBuilder creates a Builder. Styles and page settings are resolved and
// validated here so a bad configuration fails before any file is read.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg:          defaultBuilderConfig(),
		preprocessor: &pipeline.SourcePreprocessor{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}

	if err := b.cfg.page.Validate(); err != nil {
		return nil, err
	}

	if b.cfg.highlight == "" {
		b.cfg.highlight = pipeline.DefaultHighlightStyle
	}
	if err := pipeline.ValidateHighlightStyle(b.cfg.highlight); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("asset path: %w", err)
	}
	b.assetLoader = resolver
	b.logger.Debug("style search", "dirs", resolver.Dirs(), "style", b.cfg.styleRef)

	if err := b.resolveStylesheet(); err != nil {
		return nil, err
	}

	b.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.MarkdownOptions{
		RawHTML:        b.cfg.rawHTML,
		HighlightStyle: b.cfg.highlight,
	})

	// Created last so a failed NewBuilder never owns a browser.
	if b.pdfConverter == nil {
		b.pdfConverter = newRodConverter(b.cfg.timeout)
	}

	return b, nil
}

// resolveStylesheet builds the stylesheet written as pdf.css and injected
// into the PDF document.
func (b *Builder) resolveStylesheet() error {
	base := b.cfg.css
	if base == "" {
		css, err := assets.ResolveStyle(b.assetLoader, b.cfg.styleRef)
		if err != nil {
			return fmt.Errorf("loading style: %w", err)
		}
		base = css
	}

	highlight, err := pipeline.HighlightCSS(b.cfg.highlight)
	if err != nil {
		return err
	}

	b.stylesheet = strings.TrimRight(base, "\n") + "\n\n" + highlight
	return nil
}

// Stylesheet returns the CSS the builder writes as pdf.css.
func (b *Builder) Stylesheet() string {
	return b.stylesheet
}

// Build runs the pipeline for req.
//
// The sibling .html of req.Output and pdf.css are written in the output
// directory, which must exist. The PDF follows unless req.HTMLOnly is set.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if req.Output == "" {
		return nil, ErrEmptyOutput
	}

	src, err := resolveSources(req)
	if err != nil {
		return nil, err
	}
	b.logger.Info("resolved inputs", "documents", len(src.declared), "base", src.baseDir)

	res := &Result{Documents: src.declared}

	sections := make([]string, 0, len(src.declared))
	for _, p := range src.declared {
		if !fileutil.HasMarkdownExt(p) {
			b.logger.Debug("skipping non-markdown input", "path", p)
			continue
		}
		section, err := b.renderSection(ctx, src.readPath(p))
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	res.Sections = len(sections)

	anchorOpts := pipeline.AnchorOptions{LinkPrefix: b.cfg.linkPrefix, Slug: b.cfg.slug}
	htmlContent, err := pipeline.RewriteAnchors(strings.Join(sections, "\n"), src.declared, anchorOpts)
	if err != nil {
		return nil, fmt.Errorf("rewriting links: %w", err)
	}
	b.logger.Debug("rewrote links", "sections", res.Sections)

	outDir := filepath.Dir(req.Output)
	res.HTMLPath = fileutil.SiblingHTMLPath(req.Output)
	res.StylesheetPath = filepath.Join(outDir, StylesheetFile)

	if err := fileutil.WriteFile(res.HTMLPath, []byte(pipeline.StylesheetLink(StylesheetFile)+htmlContent)); err != nil {
		return nil, err
	}
	if err := fileutil.WriteFile(res.StylesheetPath, []byte(b.stylesheet)); err != nil {
		return nil, err
	}
	b.logger.Info("wrote HTML", "path", res.HTMLPath, "stylesheet", res.StylesheetPath)

	if req.HTMLOnly {
		return res, nil
	}

	absDir, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	htmlContent, err = pipeline.RewriteImagePaths(htmlContent, filepath.ToSlash(absDir)+"/")
	if err != nil {
		return nil, fmt.Errorf("rewriting image paths: %w", err)
	}

	doc := pipeline.Document{
		Title:  documentTitle(req.Output),
		Styles: []string{b.stylesheet},
		Body:   htmlContent,
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdfBytes, err := b.pdfConverter.ToPDF(ctx, doc.String(), &pdfOptions{Page: b.cfg.page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	if err := fileutil.WriteFile(req.Output, pdfBytes); err != nil {
		return nil, err
	}
	res.PDFPath = req.Output
	b.logger.Info("wrote PDF", "path", res.PDFPath, "bytes", len(pdfBytes))

	return res, nil
}

// renderSection reads one Markdown file and converts it to an HTML fragment.
func (b *Builder) renderSection(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from the user's input spec
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	md := b.preprocessor.PreprocessMarkdown(ctx, string(data))
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	htmlContent, err := b.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		return "", fmt.Errorf("converting %s to HTML: %w", path, err)
	}
	b.logger.Debug("rendered section", "path", path, "bytes", len(htmlContent))
	return htmlContent, nil
}

// documentTitle derives the PDF document title from the output file name.
func documentTitle(output string) string {
	name := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	if name == "" || name == "." {
		return pipeline.DefaultDocumentTitle
	}
	return name
}

// Close releases resources (headless Chrome browser).
func (b *Builder) Close() error {
	if b.pdfConverter != nil {
		return b.pdfConverter.Close()
	}
	return nil
}
