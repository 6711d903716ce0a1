package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// utf8BOM is stripped from the start of Markdown sources.
const utf8BOM = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor cleans up Markdown read from disk before conversion.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a leading BOM and normalizes line endings.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, utf8BOM)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

var _ MarkdownPreprocessor = (*SourcePreprocessor)(nil)
