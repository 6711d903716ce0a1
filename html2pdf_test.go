package docs2pdf

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

// mockRenderer implements pdfRenderer for testing.
type mockRenderer struct {
	Result     []byte
	Err        error
	CalledWith string
	CalledOpts *pdfOptions
	Content    string
	Closed     bool
}

func (m *mockRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	m.CalledWith = filePath
	m.CalledOpts = opts
	if data, err := os.ReadFile(filePath); err == nil {
		m.Content = string(data)
	}
	return m.Result, m.Err
}

func (m *mockRenderer) Close() error {
	m.Closed = true
	return nil
}

func TestRodConverter_ToPDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		mock    *mockRenderer
		wantErr bool
	}{
		{
			name: "successful render returns PDF bytes",
			html: "<html><body>Test</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 fake pdf content")},
		},
		{
			name:    "renderer error propagates",
			html:    "<html></html>",
			mock:    &mockRenderer{Err: errors.New("browser crashed")},
			wantErr: true,
		},
		{
			name: "empty HTML is valid",
			html: "",
			mock: &mockRenderer{Result: []byte("%PDF-1.4")},
		},
		{
			name: "unicode content reaches the renderer intact",
			html: "<html><body>Árbol de Datos</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 unicode")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			converter := &rodConverter{renderer: tt.mock}
			result, err := converter.ToPDF(context.Background(), tt.html, nil)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if string(result) != string(tt.mock.Result) {
				t.Errorf("expected result %q, got %q", tt.mock.Result, result)
			}
			if !strings.Contains(tt.mock.CalledWith, "docs2pdf-") || !strings.HasSuffix(tt.mock.CalledWith, ".html") {
				t.Errorf("expected temp file path like docs2pdf-*.html, got %q", tt.mock.CalledWith)
			}
			if tt.mock.Content != tt.html {
				t.Errorf("renderer read %q, want %q", tt.mock.Content, tt.html)
			}
			if _, err := os.Stat(tt.mock.CalledWith); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("temp file not removed: %v", err)
			}
		})
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	mock := &mockRenderer{}
	converter := &rodConverter{renderer: mock}
	if err := converter.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !mock.Closed {
		t.Error("renderer not closed")
	}

	if err := (&rodConverter{}).Close(); err != nil {
		t.Errorf("Close() on empty converter error = %v", err)
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(time.Second)
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestRodRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRodRenderer(time.Second)
	defer r.Close()

	_, err := r.RenderFromFile(ctx, "/nonexistent.html", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser launched for a cancelled context")
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{"nil options use a4 defaults", nil, 8.27, 11.69, DefaultMargin},
		{"nil page uses defaults", &pdfOptions{}, 8.27, 11.69, DefaultMargin},
		{"letter", &pdfOptions{Page: &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: 1}}, 8.5, 11, 1},
		{"legal landscape", &pdfOptions{Page: &PageSettings{Size: PageSizeLegal, Orientation: OrientationLandscape, Margin: 0.25}}, 14, 8.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)
			if *got.PaperWidth != tt.wantWidth || *got.PaperHeight != tt.wantHeight {
				t.Errorf("paper = %vx%v, want %vx%v", *got.PaperWidth, *got.PaperHeight, tt.wantWidth, tt.wantHeight)
			}
			for name, m := range map[string]*float64{
				"top": got.MarginTop, "bottom": got.MarginBottom, "left": got.MarginLeft, "right": got.MarginRight,
			} {
				if *m != tt.wantMargin {
					t.Errorf("margin %s = %v, want %v", name, *m, tt.wantMargin)
				}
			}
			if !got.PrintBackground {
				t.Error("PrintBackground = false, want true")
			}
		})
	}
}

func TestRenderTimeout(t *testing.T) {
	t.Parallel()

	t.Run("no deadline uses fallback", func(t *testing.T) {
		t.Parallel()

		got, err := renderTimeout(context.Background(), 7*time.Second)
		if err != nil || got != 7*time.Second {
			t.Errorf("renderTimeout() = %v, %v", got, err)
		}
	})

	t.Run("deadline bounds the timeout", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		got, err := renderTimeout(ctx, time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		if got <= 0 || got > time.Minute {
			t.Errorf("renderTimeout() = %v, want (0, 1m]", got)
		}
	})

	t.Run("expired deadline", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		if _, err := renderTimeout(ctx, time.Hour); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("renderTimeout() error = %v, want DeadlineExceeded", err)
		}
	})
}

func TestSandboxDisabled(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"nothing set", map[string]string{}, false},
		{"explicit", map[string]string{"ROD_NO_SANDBOX": "1"}, true},
		{"CI", map[string]string{"CI": "true"}, true},
		{"custom browser", map[string]string{"ROD_BROWSER_BIN": "/usr/bin/chromium"}, true},
		{"explicit zero", map[string]string{"ROD_NO_SANDBOX": "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"ROD_NO_SANDBOX", "CI", "ROD_BROWSER_BIN"} {
				t.Setenv(key, tt.env[key])
			}
			if got := sandboxDisabled(); got != tt.want {
				t.Errorf("sandboxDisabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/tmp/docs2pdf-1.html", "file:///tmp/docs2pdf-1.html"},
		{"/tmp/my docs/out.html", "file:///tmp/my%20docs/out.html"},
		{"/tmp/a#b.html", "file:///tmp/a%23b.html"},
	}

	for _, tt := range tests {
		if got := fileURL(tt.path); got != tt.want {
			t.Errorf("fileURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
