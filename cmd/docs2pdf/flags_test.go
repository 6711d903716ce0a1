package main

import (
	"bytes"
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantPos  []string
		check    func(t *testing.T, f *buildFlags)
		wantErr  bool
		wantHelp bool
	}{
		{
			name:    "positional only",
			args:    []string{"a.md,b.md", "out.pdf"},
			wantPos: []string{"a.md,b.md", "out.pdf"},
			check: func(t *testing.T, f *buildFlags) {
				if f.linkPrefixSet {
					t.Error("linkPrefixSet = true without --link-prefix")
				}
				if f.htmlOnly || f.noRawHTML || f.common.quiet || f.common.verbose {
					t.Errorf("unexpected booleans: %+v", f)
				}
			},
		},
		{
			name:    "flags after positional",
			args:    []string{"in.md", "out.pdf", "-t", "1m", "--style", "minimal", "--highlight", "dracula"},
			wantPos: []string{"in.md", "out.pdf"},
			check: func(t *testing.T, f *buildFlags) {
				if f.timeout != "1m" || f.style != "minimal" || f.highlight != "dracula" {
					t.Errorf("got timeout=%q style=%q highlight=%q", f.timeout, f.style, f.highlight)
				}
			},
		},
		{
			name:    "empty link prefix is still set",
			args:    []string{"--link-prefix", "", "in.md", "out.pdf"},
			wantPos: []string{"in.md", "out.pdf"},
			check: func(t *testing.T, f *buildFlags) {
				if !f.linkPrefixSet || f.linkPrefix != "" {
					t.Errorf("linkPrefixSet=%v linkPrefix=%q", f.linkPrefixSet, f.linkPrefix)
				}
			},
		},
		{
			name:    "page and common flags",
			args:    []string{"-p", "letter", "--orientation", "landscape", "--margin", "1.25", "-c", "ci", "-q", "-v", "--nav", "site/mkdocs.yml", "--html-only", "--no-raw-html"},
			wantPos: []string{},
			check: func(t *testing.T, f *buildFlags) {
				if f.page != (pageFlags{size: "letter", orientation: "landscape", margin: 1.25}) {
					t.Errorf("page = %+v", f.page)
				}
				if f.common != (commonFlags{config: "ci", quiet: true, verbose: true}) {
					t.Errorf("common = %+v", f.common)
				}
				if f.nav != "site/mkdocs.yml" || !f.htmlOnly || !f.noRawHTML {
					t.Errorf("nav=%q htmlOnly=%v noRawHTML=%v", f.nav, f.htmlOnly, f.noRawHTML)
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--watermark", "DRAFT"},
			wantErr: true,
		},
		{
			name:    "bad margin",
			args:    []string{"--margin", "wide"},
			wantErr: true,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantErr:  true,
			wantHelp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var usage bytes.Buffer
			f, pos, err := parseBuildFlags(tt.args, &usage)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantHelp != errors.Is(err, flag.ErrHelp) {
					t.Errorf("errors.Is(err, ErrHelp) = %v, want %v", !tt.wantHelp, tt.wantHelp)
				}
				if tt.wantHelp && !bytes.Contains(usage.Bytes(), []byte("Usage: docs2pdf md2pdf")) {
					t.Errorf("usage not printed: %q", usage.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pos) != len(tt.wantPos) {
				t.Fatalf("positional = %v, want %v", pos, tt.wantPos)
			}
			for i := range pos {
				if pos[i] != tt.wantPos[i] {
					t.Errorf("positional[%d] = %q, want %q", i, pos[i], tt.wantPos[i])
				}
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}
