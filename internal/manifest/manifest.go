// Package manifest loads YAML batch manifests for the html2pdf CLI.
//
// A manifest lists export jobs and optional defaults shared by all of them:
//
//	defaults:
//	  format: Letter
//	jobs:
//	  - source: https://example.com
//	    output: example.pdf
//	    delay: 500
//	    wait: "#ready"
//	    landscape: true
//	    margin: {top: "0", bottom: "0", left: "0", right: "0"}
//
// Unknown keys are rejected.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// MaxInputSize limits manifest size to prevent memory exhaustion (1MB).
var MaxInputSize = 1 << 20

var (
	ErrEmpty         = errors.New("manifest is empty")
	ErrInputTooLarge = errors.New("manifest exceeds maximum size")
	ErrNotFound      = errors.New("manifest not found")
	ErrParse         = errors.New("invalid manifest")
	ErrNoJobs        = errors.New("manifest has no jobs")
	ErrMissingSource = errors.New("job has no source")
	ErrNegativeDelay = errors.New("delay cannot be negative")
)

// Options are the per-job export settings. Absent keys stay nil and fall
// back to the next layer of defaults.
type Options struct {
	Delay     *int             `yaml:"delay"` // milliseconds
	Wait      *string          `yaml:"wait"`
	Format    *string          `yaml:"format"`
	Landscape *bool            `yaml:"landscape"`
	Markdown  *bool            `yaml:"markdown"`
	Margin    *html2pdf.Margin `yaml:"margin"`
}

// Job is one manifest entry: a source, an output and its own Options.
type Job struct {
	Source  string `yaml:"source"`
	Output  string `yaml:"output"`
	Options `yaml:",inline"`
}

// Manifest is a decoded batch file.
type Manifest struct {
	Defaults Options `yaml:"defaults"`
	Jobs     []Job   `yaml:"jobs"`
}

// Load reads and parses the manifest at path. Relative outputs, and
// relative sources that exist next to the manifest, resolve against the
// manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.resolve(filepath.Dir(path))
	return m, nil
}

// Parse decodes and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Jobs) == 0 {
		return ErrNoJobs
	}
	if err := m.Defaults.validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for i, job := range m.Jobs {
		if job.Source == "" {
			return fmt.Errorf("job %d: %w", i+1, ErrMissingSource)
		}
		if err := job.Options.validate(); err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
	}
	return nil
}

func (o Options) validate() error {
	if o.Delay != nil && *o.Delay < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDelay, *o.Delay)
	}
	return nil
}

func (m *Manifest) resolve(dir string) {
	for i := range m.Jobs {
		job := &m.Jobs[i]
		if job.Output != "" && !filepath.IsAbs(job.Output) {
			job.Output = filepath.Join(dir, job.Output)
		}
		if fileutil.IsURL(job.Source) || filepath.IsAbs(job.Source) {
			continue
		}
		if candidate := filepath.Join(dir, job.Source); fileutil.PathExists(candidate) {
			job.Source = candidate
		}
	}
}

// ExportOptions converts o to library options. Nil fields stay nil.
func (o Options) ExportOptions() html2pdf.ExportOptions {
	opts := html2pdf.ExportOptions{
		WaitForSelector: o.Wait,
		Markdown:        o.Markdown,
		PDF: html2pdf.PDFOptions{
			Format:    o.Format,
			Landscape: o.Landscape,
			Margin:    o.Margin,
		},
	}
	if o.Delay != nil {
		opts.Delay = html2pdf.Ptr(time.Duration(*o.Delay) * time.Millisecond)
	}
	// Merge copies every pointer so the result shares nothing with o.
	return html2pdf.Merge(html2pdf.ExportOptions{}, opts)
}

// ToJobs returns the library jobs, each with the manifest defaults merged
// under its own options.
func (m *Manifest) ToJobs() []html2pdf.Job {
	defaults := m.Defaults.ExportOptions()
	jobs := make([]html2pdf.Job, len(m.Jobs))
	for i, j := range m.Jobs {
		jobs[i] = html2pdf.Job{
			Source:  j.Source,
			Output:  j.Output,
			Options: html2pdf.Merge(defaults, j.ExportOptions()),
		}
	}
	return jobs
}
