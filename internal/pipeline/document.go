package pipeline

import (
	"html"
	"strings"
)

// DefaultDocumentTitle is used for a Document without a title.
const DefaultDocumentTitle = "Document"

// Document is a standalone UTF-8 HTML5 page handed to the PDF renderer.
type Document struct {
	Title  string
	Styles []string // one <style> block each, in order
	Body   string   // HTML fragment, written as is
}

// String renders the page. Style content is sanitized so it cannot close
// its <style> element.
func (d Document) String() string {
	title := d.Title
	if title == "" {
		title = DefaultDocumentTitle
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	for _, css := range d.Styles {
		if css == "" {
			continue
		}
		sb.WriteString("<style>" + sanitizeCSS(css) + "</style>\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(d.Body)
	sb.WriteString("\n</body>\n</html>")
	return sb.String()
}

// StylesheetLink returns the <link> element referencing the stylesheet at
// href, as written at the top of the standalone HTML file.
func StylesheetLink(href string) string {
	return `<link rel="stylesheet" href="` + html.EscapeString(href) + `" type="text/css"/>`
}

// sanitizeCSS breaks every "</" so the CSS cannot end the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
