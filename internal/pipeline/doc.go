// Package pipeline implements the HTML stages of a documentation build.
//
// Stages, in build order:
//   - Markdown preprocessing (BOM strip, line ending normalization)
//   - Markdown to HTML fragments via goldmark, with GFM, footnotes,
//     admonitions and chroma syntax highlighting
//   - anchor rewriting: heading ids and cross-document links become
//     matching slugs
//   - image path rewriting against the output directory
//   - stylesheet handling: highlight CSS, the <link> element of the HTML
//     file, and the standalone Document rendered to PDF
//
// PDF generation lives in the root docs2pdf package (headless Chrome via
// go-rod). HTML tree access goes through internal/htmldoc.
package pipeline
