package pipeline

import (
	"slices"

	"github.com/alnah/go-docs2pdf/internal/htmldoc"
	"github.com/alnah/go-docs2pdf/internal/slug"
	"golang.org/x/net/html"
)

// DefaultLinkPrefix is prepended to a link's href before it is looked up in
// the list of known document paths.
const DefaultLinkPrefix = "docs/"

// headingTags receive slug ids. h7 is not HTML but some Markdown sources
// emit it and downstream stylesheets target it.
var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "h7"}

// AnchorOptions controls RewriteAnchors.
type AnchorOptions struct {
	LinkPrefix string
	Slug       slug.Options
}

// DefaultAnchorOptions returns the "docs/" prefix and default slug options.
func DefaultAnchorOptions() AnchorOptions {
	return AnchorOptions{
		LinkPrefix: DefaultLinkPrefix,
		Slug:       slug.DefaultOptions(),
	}
}

// RewriteAnchors turns cross-document links into in-page anchors.
//
// Every heading gets id = slug(heading text), replacing any existing id.
// Every <a> whose LinkPrefix+href names one of docPaths gets
// href = "#" + slug(link text). Headings and links share opts.Slug, so a
// link whose text equals a heading's text lands on that heading. Duplicate
// heading texts produce duplicate ids.
//
// The result is pretty-printed.
func RewriteAnchors(htmlContent string, docPaths []string, opts AnchorOptions) (string, error) {
	doc, err := htmldoc.Parse(htmlContent)
	if err != nil {
		return "", err
	}

	known := make(map[string]struct{}, len(docPaths))
	for _, p := range docPaths {
		known[p] = struct{}{}
	}

	rw := &anchorRewriter{known: known, opts: opts}
	doc.Walk(rw)
	if rw.err != nil {
		return "", rw.err
	}

	return doc.Prettify()
}

// anchorRewriter implements htmldoc.Visitor. The first slug error stops
// further rewriting.
type anchorRewriter struct {
	known map[string]struct{}
	opts  AnchorOptions
	err   error
}

func (r *anchorRewriter) VisitElement(n *html.Node) {
	if r.err != nil {
		return
	}
	switch {
	case n.Data == "a":
		r.rewriteLink(n)
	case slices.Contains(headingTags, n.Data):
		r.setHeadingID(n)
	}
}

func (r *anchorRewriter) setHeadingID(n *html.Node) {
	id, err := slug.NormalizeWith(htmldoc.Text(n), r.opts.Slug)
	if err != nil {
		r.err = err
		return
	}
	htmldoc.SetAttr(n, "id", id)
}

func (r *anchorRewriter) rewriteLink(n *html.Node) {
	href, ok := htmldoc.Attr(n, "href")
	if !ok {
		return
	}
	if _, known := r.known[r.opts.LinkPrefix+href]; !known {
		return
	}
	target, err := slug.NormalizeWith(htmldoc.Text(n), r.opts.Slug)
	if err != nil {
		r.err = err
		return
	}
	htmldoc.SetAttr(n, "href", "#"+target)
}

var _ htmldoc.Visitor = (*anchorRewriter)(nil)
