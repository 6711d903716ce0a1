package main

import (
	"context"
	"errors"
	"os"

	docs2pdf "github.com/alnah/go-docs2pdf"
	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/config"
	"github.com/alnah/go-docs2pdf/internal/nav"
	"github.com/alnah/go-docs2pdf/internal/pipeline"
	"github.com/alnah/go-docs2pdf/internal/slug"
)

// Exit codes for the docs2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docs2pdf.ErrBrowserConnect) ||
		errors.Is(err, docs2pdf.ErrPageCreate) ||
		errors.Is(err, docs2pdf.ErrPageLoad) ||
		errors.Is(err, docs2pdf.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, docs2pdf.ErrEmptyOutput) ||
		errors.Is(err, docs2pdf.ErrInvalidPageSize) ||
		errors.Is(err, docs2pdf.ErrInvalidOrientation) ||
		errors.Is(err, docs2pdf.ErrInvalidMargin) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, assets.ErrStyleTooLarge) ||
		errors.Is(err, pipeline.ErrUnknownHighlightStyle) ||
		errors.Is(err, nav.ErrParse) ||
		errors.Is(err, nav.ErrMissingNav) ||
		errors.Is(err, nav.ErrAmbiguousEntry) ||
		errors.Is(err, nav.ErrInvalidEntry) ||
		errors.Is(err, slug.ErrTruncate) {
		return ExitUsage
	}

	return ExitGeneral
}
