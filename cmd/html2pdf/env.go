package main

import (
	"io"
	"os"

	"github.com/go-rod/rod/lib/launcher"

	html2pdf "github.com/alnah/go-html2pdf"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	LookPath    func() (string, bool)
	NewExporter func(opts ...html2pdf.Option) *html2pdf.Exporter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		LookPath:    launcher.LookPath,
		NewExporter: html2pdf.NewExporter,
	}
}
