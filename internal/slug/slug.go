// Package slug turns free-text heading titles into anchor-safe identifiers.
//
// A slug is lowercase ASCII made of [a-z0-9-], with words joined by single
// hyphens. Slugs are not unique: two headings with the same text produce the
// same slug and the caller decides what to do about it.
package slug

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// ErrTruncate indicates whole-word truncation found no hyphen within the limit.
var ErrTruncate = errors.New("slug: no word boundary within maximum length")

// Options controls normalization.
type Options struct {
	Transliterate bool // spell non-ASCII text in ASCII before filtering
	MaxLen        int  // 0 = unlimited
	WholeWords    bool // truncate on a hyphen boundary instead of mid-word
}

// DefaultOptions returns the options used for heading anchors.
func DefaultOptions() Options {
	return Options{Transliterate: true}
}

// Normalize returns the slug of title using DefaultOptions.
// It never fails because default options do not truncate.
func Normalize(title string) string {
	s, _ := NormalizeWith(title, DefaultOptions())
	return s
}

// NormalizeWith returns the slug of title using opts.
// An all-punctuation title yields "" without error.
func NormalizeWith(title string, opts Options) (string, error) {
	if opts.Transliterate {
		title = Transliterate(title)
	}
	title = strings.ToLower(title)

	filtered := strings.Map(func(r rune) rune {
		if isSlugRune(r) {
			return r
		}
		return -1
	}, title)

	s := strings.Join(strings.Fields(filtered), "-")

	if opts.MaxLen <= 0 || len(s) <= opts.MaxLen {
		return s, nil
	}

	if !opts.WholeWords {
		return s[:opts.MaxLen], nil
	}

	// A hyphen sitting exactly at MaxLen still ends a whole word.
	idx := strings.LastIndexByte(s[:opts.MaxLen+1], '-')
	if idx < 0 {
		return "", fmt.Errorf("%w: %q (max %d)", ErrTruncate, s, opts.MaxLen)
	}
	return s[:idx], nil
}

// Transliterate spells s in ASCII: accents are dropped, other scripts are
// romanized ("Привет" becomes "Privet", "日本" becomes "Ri Ben ").
// Input is composed first so a base letter and its combining marks map as
// one code point.
func Transliterate(s string) string {
	return unidecode.Unidecode(norm.NFC.String(s))
}

// isSlugRune reports whether r survives filtering: [a-z0-9- ].
func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == ' '
}
