package pipeline

import (
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used for code blocks.
const DefaultHighlightStyle = "github"

// ErrUnknownHighlightStyle indicates a style name chroma does not know.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HighlightCSS returns the CSS rules for chroma's class-based output in the
// named style.
func HighlightCSS(style string) (string, error) {
	if err := ValidateHighlightStyle(style); err != nil {
		return "", err
	}

	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return sb.String(), nil
}

// ValidateHighlightStyle checks that style is registered with chroma.
func ValidateHighlightStyle(style string) error {
	if _, ok := styles.Registry[style]; !ok {
		return fmt.Errorf("%w: %q (available: %s)", ErrUnknownHighlightStyle, style, strings.Join(styles.Names(), ", "))
	}
	return nil
}
