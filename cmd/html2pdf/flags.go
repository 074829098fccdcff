package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	html2pdf "github.com/alnah/go-html2pdf"
)

// ErrInvalidFlag marks flag values that parse but make no sense.
var ErrInvalidFlag = errors.New("invalid flag value")

// pageFlags holds flags that shape the printed page.
type pageFlags struct {
	format    string
	landscape bool
	noMargin  bool
}

// readinessFlags holds flags that delay printing.
type readinessFlags struct {
	delay    int // milliseconds
	delaySet bool
	wait     string
	timeout  time.Duration
}

// runFlags holds flags that change what the command does.
type runFlags struct {
	batch   string
	metrics string
	doctor  bool
	json    bool
	verify  bool
	verbose bool
	version bool
	help    bool
}

// cliFlags holds every flag of the command.
type cliFlags struct {
	page      pageFlags
	readiness readinessFlags
	markdown  bool
	run       runFlags
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.format, "format", "", "page format: A4, Letter, Legal, ...")
	fs.BoolVar(&f.landscape, "landscape", false, "landscape orientation")
	fs.BoolVar(&f.noMargin, "no-margin", false, "set all margins to 0")
}

func addReadinessFlags(fs *flag.FlagSet, f *readinessFlags) {
	fs.IntVar(&f.delay, "delay", 0, "wait this many milliseconds before printing")
	fs.StringVar(&f.wait, "wait", "", "CSS selector to wait for before printing")
	fs.DurationVar(&f.timeout, "timeout", 0, "page load timeout (e.g. 45s, 2m)")
}

func addRunFlags(fs *flag.FlagSet, f *runFlags) {
	fs.StringVar(&f.batch, "batch", "", "run the jobs of a YAML manifest")
	fs.StringVar(&f.metrics, "metrics", "", "write prometheus metrics to this file")
	fs.BoolVar(&f.doctor, "doctor", false, "check the browser setup and exit")
	fs.BoolVar(&f.json, "json", false, "print --doctor results as JSON")
	fs.BoolVar(&f.verify, "verify", false, "validate the written PDF")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logs on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print usage and exit")
}

// parseFlags parses args and returns the flags and the positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("html2pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	f := &cliFlags{}
	addPageFlags(fs, &f.page)
	addReadinessFlags(fs, &f.readiness)
	fs.BoolVar(&f.markdown, "markdown", false, "render file and inline sources as Markdown")
	addRunFlags(fs, &f.run)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.readiness.delaySet = fs.Changed("delay")

	if f.readiness.delay < 0 {
		return nil, nil, fmt.Errorf("%w: --delay must not be negative", ErrInvalidFlag)
	}
	if fs.Changed("timeout") && f.readiness.timeout <= 0 {
		return nil, nil, fmt.Errorf("%w: --timeout must be positive", ErrInvalidFlag)
	}

	return f, fs.Args(), nil
}

// exportOptions converts the flags to per-call options. Flags left unset
// stay nil so the defaults apply.
func (f *cliFlags) exportOptions() html2pdf.ExportOptions {
	var opts html2pdf.ExportOptions

	if f.readiness.delaySet {
		opts.Delay = html2pdf.Ptr(time.Duration(f.readiness.delay) * time.Millisecond)
	}
	if f.readiness.wait != "" {
		opts.WaitForSelector = html2pdf.Ptr(f.readiness.wait)
	}
	if f.markdown {
		opts.Markdown = html2pdf.Ptr(true)
	}
	if f.page.format != "" {
		opts.PDF.Format = html2pdf.Ptr(f.page.format)
	}
	if f.page.landscape {
		opts.PDF.Landscape = html2pdf.Ptr(true)
	}
	if f.page.noMargin {
		opts.PDF.Margin = html2pdf.UniformMargin("0")
	}

	return opts
}

// splitPositional returns the source and the destination. The second
// argument counts as destination only if it ends in .pdf; everything else
// after the source is returned as ignored.
func splitPositional(args []string) (source, dest string, ignored []string) {
	if len(args) == 0 {
		return "", "", nil
	}
	source = args[0]
	rest := args[1:]
	if len(rest) > 0 && strings.HasSuffix(rest[0], ".pdf") {
		dest = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		ignored = rest
	}
	return source, dest, ignored
}
