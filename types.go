package docs2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// defaultTimeout bounds the browser render when the context has no deadline.
const defaultTimeout = 30 * time.Second

// paperSizes holds portrait width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Dimensions returns paper width and height in inches, swapped for
// landscape. Unknown sizes fall back to A4.
func (p *PageSettings) Dimensions() (width, height float64) {
	if p == nil {
		p = DefaultPageSettings()
	}
	dims, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		dims = paperSizes[PageSizeA4]
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Request describes one build.
type Request struct {
	// Inputs is a comma-separated list of Markdown files, or "mkdocs.yml"
	// to read the list from the navigation file in the working directory.
	Inputs string
	// NavPath selects navigation mode on an explicit file. It wins over Inputs.
	NavPath string
	// Output is the PDF path. The sibling .html and pdf.css land next to it.
	Output string
	// HTMLOnly stops after the HTML and stylesheet are written.
	HTMLOnly bool
}

// Result reports what a build wrote.
type Result struct {
	Documents      []string // declared input paths, in order
	Sections       int      // Markdown files rendered
	HTMLPath       string
	StylesheetPath string
	PDFPath        string // empty when HTMLOnly
}
