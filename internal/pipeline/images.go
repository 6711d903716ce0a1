package pipeline

import (
	"github.com/alnah/go-docs2pdf/internal/htmldoc"
	"golang.org/x/net/html"
)

// RewriteImagePaths prefixes the src of every <img> with baseDir by plain
// string concatenation. baseDir should end with a separator; no path
// cleaning or URL detection is done. Images without src are left alone.
//
// The result is pretty-printed.
func RewriteImagePaths(htmlContent, baseDir string) (string, error) {
	doc, err := htmldoc.Parse(htmlContent)
	if err != nil {
		return "", err
	}

	doc.Walk(htmldoc.TagVisitor{
		"img": func(n *html.Node) {
			if src, ok := htmldoc.Attr(n, "src"); ok {
				htmldoc.SetAttr(n, "src", baseDir+src)
			}
		},
	})

	return doc.Prettify()
}
