package html2pdf

import "errors"

// Sentinel errors for export operations.
// Every failure returned by the pipeline wraps exactly one of these.
var (
	ErrEngineLaunch      = errors.New("failed to launch browser")
	ErrNavigation        = errors.New("failed to load page")
	ErrNavigationTimeout = errors.New("page load timed out")
	ErrSelectorTimeout   = errors.New("timed out waiting for selector")
	ErrPDFGeneration     = errors.New("PDF generation failed")
)
