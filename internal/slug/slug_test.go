package slug

// Notes:
// - Transliterate is exercised through Normalize for accents, non-Latin
//   scripts and compatibility characters, and directly for letters that do
//   not decompose (ß, ø, æ).

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNormalize - Default options
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "accented words", title: "Árbol de Datos", want: "arbol-de-datos"},
		{name: "already a slug", title: "quick-start", want: "quick-start"},
		{name: "mixed case", title: "Quick Start", want: "quick-start"},
		{name: "all punctuation", title: "!!!", want: ""},
		{name: "empty", title: "", want: ""},
		{name: "repeated spaces collapse", title: "  a   b  ", want: "a-b"},
		{name: "punctuation removed", title: "What's new? (v2.0)", want: "whats-new-v20"},
		{name: "digits kept", title: "Step 1: Install", want: "step-1-install"},
		{name: "spanish", title: "Instalación rápida", want: "instalacion-rapida"},
		{name: "eszett", title: "Straße", want: "strasse"},
		{name: "en dash kept as hyphen", title: "A – B", want: "a---b"},
		{name: "newline is stripped, not a separator", title: "Quick\nStart", want: "quickstart"},
		{name: "non-breaking space separates", title: "Quick\u00a0Start", want: "quick-start"},
		{name: "cyrillic romanized", title: "Привет мир", want: "privet-mir"},
		{name: "greek romanized", title: "Νέα Λίστα", want: "nea-lista"},
		{name: "cjk romanized", title: "日本語 guide", want: "ri-ben-yu-guide"},
		{name: "ligature letter", title: "ĳssel", want: "ijssel"},
		{name: "vulgar fraction", title: "½ Cup", want: "12-cup"},
		{name: "currency sign", title: "Über € Preis", want: "uber-eur-preis"},
		{name: "decomposed accent", title: "Cafe\u0301", want: "cafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Normalize(tt.title); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeWith - Transliteration toggle and truncation
// ---------------------------------------------------------------------------

func TestNormalizeWith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		opts    Options
		want    string
		wantErr error
	}{
		{
			name:  "whole words keeps hyphen at the limit",
			title: "one two three",
			opts:  Options{Transliterate: true, MaxLen: 7, WholeWords: true},
			want:  "one-two",
		},
		{
			name:  "whole words backs off to previous boundary",
			title: "one two three",
			opts:  Options{Transliterate: true, MaxLen: 5, WholeWords: true},
			want:  "one",
		},
		{
			name:    "whole words without boundary fails",
			title:   "onetwothree four",
			opts:    Options{Transliterate: true, MaxLen: 5, WholeWords: true},
			wantErr: ErrTruncate,
		},
		{
			name:  "hard truncation",
			title: "one two three",
			opts:  Options{Transliterate: true, MaxLen: 5},
			want:  "one-t",
		},
		{
			name:  "short enough is untouched",
			title: "one two",
			opts:  Options{Transliterate: true, MaxLen: 30, WholeWords: true},
			want:  "one-two",
		},
		{
			name:  "zero max length means unlimited",
			title: "one two three",
			opts:  Options{Transliterate: true, WholeWords: true},
			want:  "one-two-three",
		},
		{
			name:  "without transliteration accents are dropped",
			title: "Árbol de Datos",
			opts:  Options{},
			want:  "rbol-de-datos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeWith(tt.title, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NormalizeWith(%q) error = %v, want %v", tt.title, err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("NormalizeWith(%q) = %q on error, want empty", tt.title, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeWith(%q) unexpected error: %v", tt.title, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeWith(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if tt.opts.MaxLen > 0 && len(got) > tt.opts.MaxLen {
				t.Errorf("len(%q) = %d exceeds MaxLen %d", got, len(got), tt.opts.MaxLen)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTransliterate - ASCII folding
// ---------------------------------------------------------------------------

func TestTransliterate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Ñandú", want: "Nandu"},
		{in: "Øresund", want: "Oresund"},
		{in: "Æther", want: "AEther"},
		{in: "Łódź", want: "Lodz"},
		{in: "“quoted”", want: `"quoted"`},
		{in: "Москва", want: "Moskva"},
		{in: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := Transliterate(tt.in); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
