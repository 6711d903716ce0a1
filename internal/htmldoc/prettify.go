package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

const indentUnit = " "

// rawElements keep their content byte for byte.
var rawElements = map[string]bool{
	"pre":      true,
	"textarea": true,
	"script":   true,
	"style":    true,
}

// inlineElements may share a line with surrounding text.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "del": true, "dfn": true,
	"em": true, "i": true, "img": true, "ins": true, "kbd": true, "mark": true,
	"q": true, "s": true, "samp": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "time": true, "u": true,
	"var": true, "wbr": true, "input": true, "label": true,
}

// Prettify writes n and its descendants to w with one block element per
// line, indented one space per nesting level.
//
// Rules:
//   - elements that contain only text and inline elements are written on a
//     single line exactly as html.Render would write them
//   - pre, textarea, script and style are written verbatim
//   - whitespace-only text between block elements is dropped, other text is
//     trimmed and written on its own line
func Prettify(w io.Writer, n *html.Node) error {
	return prettify(w, n, 0)
}

func prettify(w io.Writer, n *html.Node, depth int) error {
	switch n.Type {
	case html.DocumentNode:
		return prettifyChildren(w, n, depth)

	case html.TextNode:
		s := strings.TrimSpace(n.Data)
		if s == "" {
			return nil
		}
		return writeLine(w, depth, html.EscapeString(s))

	case html.ElementNode:
		if rawElements[n.Data] || n.FirstChild == nil || inlineOnly(n) {
			return renderLine(w, n, depth)
		}
		if err := writeLine(w, depth, openTag(n)); err != nil {
			return err
		}
		if err := prettifyChildren(w, n, depth+1); err != nil {
			return err
		}
		return writeLine(w, depth, "</"+n.Data+">")

	default:
		// Doctype, comments.
		return renderLine(w, n, depth)
	}
}

func prettifyChildren(w io.Writer, n *html.Node, depth int) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := prettify(w, c, depth); err != nil {
			return err
		}
	}
	return nil
}

// inlineOnly reports whether every descendant of n is text or an inline
// element.
func inlineOnly(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			continue
		case html.ElementNode:
			if !inlineElements[c.Data] || !inlineOnly(c) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func renderLine(w io.Writer, n *html.Node, depth int) error {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return err
	}
	return writeLine(w, depth, sb.String())
}

func openTag(n *html.Node) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		if a.Namespace != "" {
			sb.WriteString(a.Namespace)
			sb.WriteByte(':')
		}
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

func writeLine(w io.Writer, depth int, s string) error {
	_, err := io.WriteString(w, strings.Repeat(indentUnit, depth)+s+"\n")
	return err
}
