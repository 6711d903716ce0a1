// Package docs2pdf assembles a set of Markdown documents into a single HTML
// file and a single PDF, using headless Chrome for the rendering.
//
// # Quick Start
//
//	b, err := docs2pdf.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	res, err := b.Build(ctx, docs2pdf.Request{
//	    Inputs: "mkdocs.yml",
//	    Output: "site/manual.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.PDFPath)
//
// # Inputs
//
// Request.Inputs is either a comma-separated list of Markdown files or the
// literal "mkdocs.yml", which reads the document order from the nav tree of
// that file (Request.NavPath selects another navigation file). In navigation
// mode files are read relative to the navigation file, and the declared
// paths ("docs/guide/install.md") are what links are matched against.
//
// # Pipeline
//
//  1. Each Markdown file is normalized (BOM, line endings) and rendered by
//     Goldmark with GFM, footnotes, admonitions and chroma highlighting.
//  2. The sections are joined. Headings get slug ids and links to other
//     documents of the set become in-page anchors.
//  3. The HTML is written next to the output with a link to pdf.css,
//     which holds the base style and the highlight CSS.
//  4. Image paths are made absolute against the output directory, the
//     stylesheet is inlined, and Chrome prints the PDF.
//
// # Configuration
//
//	b, err := docs2pdf.NewBuilder(
//	    docs2pdf.WithTimeout(2*time.Minute),
//	    docs2pdf.WithPage(&docs2pdf.PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.75}),
//	    docs2pdf.WithHighlightStyle("monokai"),
//	    docs2pdf.WithLinkPrefix(""),
//	)
//
// # Browser
//
// Chrome is launched on first PDF render and reused until Close. Set
// ROD_BROWSER_BIN to use an installed browser and ROD_NO_SANDBOX=1 in
// containers.
package docs2pdf
