package main

import (
	"errors"
	"os"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/hints"
)

// Exit codes for the html2pdf CLI.
const (
	ExitSuccess = 0 // Export written
	ExitFailure = 1 // Any pipeline failure
	ExitUsage   = 2 // Invalid flags or arguments
)

// exitCodeFor returns the exit code for an error from the pipeline.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// hintFor returns an actionable hint for err, or "". selector and
// browserBin describe the failed run. It uses errors.Is, so callers must
// wrap with %w.
func hintFor(err error, selector, browserBin string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, html2pdf.ErrEngineLaunch):
		return hints.ForEngineLaunch(browserBin)
	case errors.Is(err, html2pdf.ErrNavigationTimeout):
		return hints.ForNavigationTimeout()
	case errors.Is(err, html2pdf.ErrSelectorTimeout):
		return hints.ForSelectorTimeout(selector)
	case errors.Is(err, html2pdf.ErrPDFGeneration) && (errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission)):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
