package html2pdf

import "time"

// Page format names understood by the default engine.
const (
	FormatLetter  = "Letter"
	FormatLegal   = "Legal"
	FormatTabloid = "Tabloid"
	FormatLedger  = "Ledger"
	FormatA0      = "A0"
	FormatA1      = "A1"
	FormatA2      = "A2"
	FormatA3      = "A3"
	FormatA4      = "A4"
	FormatA5      = "A5"
	FormatA6      = "A6"
)

// DefaultOutput is the destination used when none is given.
const DefaultOutput = "output.pdf"

// Margin holds page margins as CSS length strings ("10mm", "0.5in", "0").
type Margin struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
}

// UniformMargin returns a Margin with the same length on every side.
func UniformMargin(length string) *Margin {
	return &Margin{Top: length, Bottom: length, Left: length, Right: length}
}

// PDFOptions configures the print-to-PDF call.
// A nil field is absent: Merge falls back to the default for it.
type PDFOptions struct {
	Format            *string // named page size, e.g. "A4", "Letter"
	PrintBackground   *bool
	PreferCSSPageSize *bool
	Landscape         *bool
	Margin            *Margin // replaced as a whole, never per side
}

// ExportOptions configures a single export.
// A nil field is absent: Merge falls back to the default for it.
type ExportOptions struct {
	Delay           *time.Duration // fixed wait after readiness, lets animations settle
	WaitForSelector *string        // CSS selector that must appear before printing
	Markdown        *bool          // treat local file and inline sources as Markdown
	PDF             PDFOptions
}

// Ptr returns a pointer to v. Use it to set optional option fields:
//
//	html2pdf.ExportOptions{PDF: html2pdf.PDFOptions{Format: html2pdf.Ptr("Letter")}}
func Ptr[T any](v T) *T {
	return &v
}

// DefaultOptions returns the process-wide export defaults.
// Each call returns a fresh value; callers cannot alter the defaults.
func DefaultOptions() ExportOptions {
	return ExportOptions{
		PDF: PDFOptions{
			Format:            Ptr(FormatA4),
			PrintBackground:   Ptr(true),
			PreferCSSPageSize: Ptr(true),
			Landscape:         Ptr(false),
			Margin:            UniformMargin("1cm"),
		},
	}
}

// Merge returns defaults overlaid with overrides.
//
// Every field set in overrides wins; every absent field keeps its default.
// The margin is taken whole: an override margin replaces all four default
// sides, even those it leaves empty. No value is validated here; the engine
// rejects what it cannot print. Neither argument is modified and the result
// shares no pointers with them.
func Merge(defaults, overrides ExportOptions) ExportOptions {
	return ExportOptions{
		Delay:           pick(overrides.Delay, defaults.Delay),
		WaitForSelector: pick(overrides.WaitForSelector, defaults.WaitForSelector),
		Markdown:        pick(overrides.Markdown, defaults.Markdown),
		PDF: PDFOptions{
			Format:            pick(overrides.PDF.Format, defaults.PDF.Format),
			PrintBackground:   pick(overrides.PDF.PrintBackground, defaults.PDF.PrintBackground),
			PreferCSSPageSize: pick(overrides.PDF.PreferCSSPageSize, defaults.PDF.PreferCSSPageSize),
			Landscape:         pick(overrides.PDF.Landscape, defaults.PDF.Landscape),
			Margin:            pick(overrides.PDF.Margin, defaults.PDF.Margin),
		},
	}
}

// pick returns a copy of override if set, else a copy of fallback, else nil.
func pick[T any](override, fallback *T) *T {
	if override != nil {
		return Ptr(*override)
	}
	if fallback != nil {
		return Ptr(*fallback)
	}
	return nil
}

// delay returns the configured delay, zero if absent.
func (o ExportOptions) delay() time.Duration {
	if o.Delay == nil {
		return 0
	}
	return *o.Delay
}

// selector returns the configured wait selector, empty if absent.
func (o ExportOptions) selector() string {
	if o.WaitForSelector == nil {
		return ""
	}
	return *o.WaitForSelector
}

// markdown reports whether Markdown conversion is enabled.
func (o ExportOptions) markdown() bool {
	return o.Markdown != nil && *o.Markdown
}
