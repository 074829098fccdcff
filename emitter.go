package html2pdf

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/pdfcheck"
)

// filePermissions is rw-r--r--: PDFs are meant to be readable.
const filePermissions = 0o644

// verifyFunc validates an emitted file.
type verifyFunc func(path string) (*pdfcheck.Report, error)

// emit prints the page with opts and writes the PDF to dest, replacing any
// existing file. It returns the absolute path written.
func emit(ctx context.Context, page Page, dest string, opts PDFOptions) (string, error) {
	abs, err := fileutil.AbsPath(dest)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	data, err := page.PDF(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	if err := os.WriteFile(abs, data, filePermissions); err != nil {
		return "", fmt.Errorf("%w: writing %s: %w", ErrPDFGeneration, abs, err)
	}

	return abs, nil
}
