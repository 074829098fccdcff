// Package pdfcheck validates PDF files produced by the emitter.
package pdfcheck

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrInvalidPDF indicates the file is not a readable PDF.
var ErrInvalidPDF = errors.New("invalid PDF")

// Report summarizes a validated file.
type Report struct {
	Path  string
	Pages int
}

// pdfcpu otherwise creates a config directory under the user's home.
var disableConfigDir = sync.OnceFunc(api.DisableConfigDir)

// Validate checks the file structure in relaxed mode, as viewers do, and
// counts its pages.
func Validate(path string) (*Report, error) {
	disableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: counting pages of %s: %v", ErrInvalidPDF, path, err)
	}
	if pages == 0 {
		return nil, fmt.Errorf("%w: %s has no pages", ErrInvalidPDF, path)
	}

	return &Report{Path: path, Pages: pages}, nil
}
