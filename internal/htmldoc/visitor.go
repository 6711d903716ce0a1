package htmldoc

import "golang.org/x/net/html"

// Visitor receives every element node during a walk. Implementations may
// mutate the node's attributes; they must not detach it from the tree.
type Visitor interface {
	VisitElement(n *html.Node)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n *html.Node)

// VisitElement calls f(n).
func (f VisitorFunc) VisitElement(n *html.Node) { f(n) }

// TagVisitor dispatches elements to a handler chosen by tag name.
// Tags without a handler are ignored.
type TagVisitor map[string]func(n *html.Node)

// VisitElement calls the handler registered for n's tag, if any.
func (tv TagVisitor) VisitElement(n *html.Node) {
	if fn, ok := tv[n.Data]; ok {
		fn(n)
	}
}

// Walk visits n and its descendants depth-first in document order,
// calling v for each element node.
func Walk(n *html.Node, v Visitor) {
	if n.Type == html.ElementNode {
		v.VisitElement(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, v)
	}
}

var (
	_ Visitor = VisitorFunc(nil)
	_ Visitor = TagVisitor(nil)
)
