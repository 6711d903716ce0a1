package htmldoc

// Notes:
// - Prettify expectations are exact strings; they pin the formatting rules
//   that downstream rewriters rely on
// - html.Render quirks (void elements as <br/>, &#34; for quotes) are taken
//   as given and not retested here

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ---------------------------------------------------------------------------
// TestParse - Fragment vs document detection
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		wantFragment bool
	}{
		{name: "fragment", content: "<h1>Title</h1><p>x</p>", wantFragment: true},
		{name: "empty", content: "", wantFragment: true},
		{name: "doctype", content: "<!DOCTYPE html><html><body></body></html>", wantFragment: false},
		{name: "html tag with leading space", content: "  <HTML><body></body></HTML>", wantFragment: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if doc.IsFragment() != tt.wantFragment {
				t.Errorf("IsFragment() = %v, want %v", doc.IsFragment(), tt.wantFragment)
			}
		})
	}
}

func TestDoc_Render_FragmentHasNoWrapper(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<p>one</p><p>two</p>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	got, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "<p>one</p><p>two</p>" {
		t.Errorf("Render() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestWalk - Visitor traversal order
// ---------------------------------------------------------------------------

func TestWalk(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<div><h1>A</h1><p>x <a href="y">z</a></p></div><h7>B</h7>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	var tags []string
	doc.Walk(VisitorFunc(func(n *html.Node) {
		tags = append(tags, n.Data)
	}))

	want := []string{"div", "h1", "p", "a", "h7"}
	if !slices.Equal(tags, want) {
		t.Errorf("visited %q, want %q", tags, want)
	}
}

func TestTagVisitor(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<p><a href="1">x</a></p><img src="i.png"><a href="2">y</a>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	var links int
	var images int
	doc.Walk(TagVisitor{
		"a":   func(*html.Node) { links++ },
		"img": func(*html.Node) { images++ },
	})

	if links != 2 || images != 1 {
		t.Errorf("links = %d, images = %d, want 2 and 1", links, images)
	}
}

// ---------------------------------------------------------------------------
// TestText, TestAttr, TestSetAttr
// ---------------------------------------------------------------------------

func TestText(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<h2>Using <code>go</code> <em>well</em></h2>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	h2 := doc.Root().FirstChild

	if got := Text(h2); got != "Using go well" {
		t.Errorf("Text() = %q, want %q", got, "Using go well")
	}
}

func TestAttr(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<a href="x.md" title="">t</a>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	a := doc.Root().FirstChild

	if v, ok := Attr(a, "href"); !ok || v != "x.md" {
		t.Errorf("Attr(href) = %q, %v", v, ok)
	}
	if v, ok := Attr(a, "title"); !ok || v != "" {
		t.Errorf("Attr(title) = %q, %v, want empty present", v, ok)
	}
	if _, ok := Attr(a, "id"); ok {
		t.Error("Attr(id) reported present")
	}
}

func TestSetAttr(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<h1 id="old" class="c">T</h1>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	h1 := doc.Root().FirstChild

	SetAttr(h1, "id", "new")
	SetAttr(h1, "lang", "es")

	got, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	want := `<h1 id="new" class="c" lang="es">T</h1>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestPrettify - Formatting rules
// ---------------------------------------------------------------------------

func TestPrettify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "nested blocks are indented",
			content: `<div class="x"><p>Hello <em>world</em></p><ul><li>a</li><li>b</li></ul></div>`,
			want: `<div class="x">
 <p>Hello <em>world</em></p>
 <ul>
  <li>a</li>
  <li>b</li>
 </ul>
</div>
`,
		},
		{
			name:    "whitespace between blocks dropped",
			content: "<h1>T</h1>\n\n<p>x</p>\n",
			want:    "<h1>T</h1>\n<p>x</p>\n",
		},
		{
			name:    "pre kept verbatim",
			content: "<pre><code>a\n  b\n</code></pre>",
			want:    "<pre><code>a\n  b\n</code></pre>\n",
		},
		{
			name:    "void element",
			content: "<p>x</p><hr><p>y</p>",
			want:    "<p>x</p>\n<hr/>\n<p>y</p>\n",
		},
		{
			name:    "text beside blocks is trimmed and escaped",
			content: "<div><p>a</p> 1 &lt; 2 </div>",
			want:    "<div>\n <p>a</p>\n 1 &lt; 2\n</div>\n",
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			got, err := doc.Prettify()
			if err != nil {
				t.Fatalf("Prettify() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Prettify() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPrettify_Document(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<!DOCTYPE html><html><head><title>T</title></head><body><p>x</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := Prettify(&sb, doc.Root()); err != nil {
		t.Fatalf("Prettify() unexpected error: %v", err)
	}

	want := `<!DOCTYPE html>
<html>
 <head>
  <title>T</title>
 </head>
 <body>
  <p>x</p>
 </body>
</html>
`
	if sb.String() != want {
		t.Errorf("Prettify() =\n%s\nwant:\n%s", sb.String(), want)
	}
}
