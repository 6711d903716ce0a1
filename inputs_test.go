package docs2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/alnah/go-docs2pdf/internal/nav"
)

func TestSplitInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"single", "a.md", []string{"a.md"}},
		{"order kept", "b.md,a.md,c.md", []string{"b.md", "a.md", "c.md"}},
		{"blanks trimmed", " a.md , b.md ", []string{"a.md", "b.md"}},
		{"empty entries dropped", "a.md,,b.md,", []string{"a.md", "b.md"}},
		{"empty spec", "", []string{}},
		{"duplicates kept", "a.md,a.md", []string{"a.md", "a.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitInputs(tt.spec)
			if got == nil {
				t.Fatal("splitInputs() returned nil")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitInputs(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestResolveSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	navPath := filepath.Join(dir, "mkdocs.yml")
	if err := os.WriteFile(navPath, []byte("docs_dir: pages\nnav:\n  - Intro: intro.md\n  - Ref:\n      - API: ref/api.md\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	badNav := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(badNav, []byte("site_name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("inline list", func(t *testing.T) {
		t.Parallel()

		src, err := resolveSources(Request{Inputs: "a.md,b.md"})
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(src.declared, []string{"a.md", "b.md"}) || src.baseDir != "" {
			t.Errorf("resolveSources() = %+v", src)
		}
	})

	t.Run("explicit navigation path wins over inputs", func(t *testing.T) {
		t.Parallel()

		src, err := resolveSources(Request{Inputs: "ignored.md", NavPath: navPath})
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"pages/intro.md", "pages/ref/api.md"}
		if !slices.Equal(src.declared, want) {
			t.Errorf("declared = %v, want %v", src.declared, want)
		}
		if src.baseDir != dir {
			t.Errorf("baseDir = %q, want %q", src.baseDir, dir)
		}
	})

	t.Run("navigation without nav key", func(t *testing.T) {
		t.Parallel()

		_, err := resolveSources(Request{NavPath: badNav})
		if !errors.Is(err, nav.ErrMissingNav) {
			t.Errorf("error = %v, want %v", err, nav.ErrMissingNav)
		}
	})
}

func TestSources_ReadPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseDir string
		path    string
		want    string
	}{
		{"no base", "", "docs/a.md", "docs/a.md"},
		{"dot base", ".", "docs/a.md", "docs/a.md"},
		{"joined", "/site", "docs/a.md", "/site/docs/a.md"},
		{"absolute kept", "/site", "/abs/a.md", "/abs/a.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &sources{baseDir: tt.baseDir}
			if got := s.readPath(tt.path); got != filepath.FromSlash(tt.want) {
				t.Errorf("readPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
