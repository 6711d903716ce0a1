package pipeline

import (
	"strings"
	"testing"
)

func TestDocument_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     Document
		want    []string
		notWant []string
	}{
		{
			name: "declares utf-8 and embeds body",
			doc:  Document{Title: "Guía", Body: "<p>Año</p>"},
			want: []string{
				"<!DOCTYPE html>",
				`<meta charset="utf-8">`,
				"<title>Guía</title>",
				"<body>\n<p>Año</p>\n</body>",
			},
			notWant: []string{"<style>"},
		},
		{
			name: "default title",
			doc:  Document{},
			want: []string{"<title>" + DefaultDocumentTitle + "</title>"},
		},
		{
			name: "title is escaped",
			doc:  Document{Title: "<b>&</b>"},
			want: []string{"<title>&lt;b&gt;&amp;&lt;/b&gt;</title>"},
		},
		{
			name: "styles in order inside head",
			doc:  Document{Styles: []string{"body{}", "", ".chroma{}"}},
			want: []string{"<style>body{}</style>\n<style>.chroma{}</style>\n</head>"},
		},
		{
			name:    "style cannot close its element",
			doc:     Document{Styles: []string{"</style><script>alert('x')</script>"}},
			want:    []string{`<style><\/style><script>alert('x')<\/script></style>`},
			notWant: []string{"</style><script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.doc.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("String() missing %q in:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("String() should not contain %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"body { color: red; }", "body { color: red; }"},
		{"</STYLE>", `<\/STYLE>`},
		{"</a></b>", `<\/a><\/b>`},
		{"</</style>", `<\/<\/style>`},
	}

	for _, tt := range tests {
		if got := sanitizeCSS(tt.input); got != tt.want {
			t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStylesheetLink(t *testing.T) {
	t.Parallel()

	want := `<link rel="stylesheet" href="pdf.css" type="text/css"/>`
	if got := StylesheetLink("pdf.css"); got != want {
		t.Errorf("StylesheetLink() = %q, want %q", got, want)
	}
}
