// Package htmldoc wraps golang.org/x/net/html with the small set of
// operations the build needs: parse a fragment or document, visit elements,
// read and write attributes, and serialize back, optionally pretty-printed.
package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Doc is a parsed HTML fragment or full document.
type Doc struct {
	root     *html.Node
	fragment bool
}

// Parse parses content. Content starting with <!DOCTYPE or <html is parsed
// as a full document; anything else is parsed as a body fragment so no
// <html><body> wrapper is added on output.
func Parse(content string) (*Doc, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		root, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return &Doc{root: root}, nil
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	// Container gives fragments a single root for traversal.
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Doc{root: root, fragment: true}, nil
}

// Root returns the document node. For fragments it is a synthetic container
// whose children are the top-level fragment nodes.
func (d *Doc) Root() *html.Node {
	return d.root
}

// IsFragment reports whether the content was parsed as a body fragment.
func (d *Doc) IsFragment() bool {
	return d.fragment
}

// Walk visits every element of the document in document order.
func (d *Doc) Walk(v Visitor) {
	Walk(d.root, v)
}

// Render serializes the document without reformatting.
func (d *Doc) Render() (string, error) {
	var buf strings.Builder
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Prettify serializes the document with one element per line, indented by
// nesting depth. See Prettify for the formatting rules.
func (d *Doc) Prettify() (string, error) {
	var buf strings.Builder
	if err := prettify(&buf, d.root, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Text returns the concatenated text of n and all its descendants.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	collectText(&sb, n)
	return sb.String()
}

func collectText(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			collectText(sb, c)
		}
	}
}

// Attr returns the value of the attribute key and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the attribute key to val, adding it if missing.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
