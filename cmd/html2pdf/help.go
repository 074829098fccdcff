package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf <source> [destination.pdf] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export a web page, an HTML file or an HTML string to PDF with headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source         http(s) URL, path to a local file, or HTML markup")
	fmt.Fprintln(w, "  destination    output file, must end in .pdf (default: output.pdf)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --format <name>       Page format: A0-A6, Letter, Legal, Tabloid, Ledger (default A4)")
	fmt.Fprintln(w, "      --landscape           Landscape orientation")
	fmt.Fprintln(w, "      --no-margin           Set all margins to 0 (default 1cm)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Readiness:")
	fmt.Fprintln(w, "      --wait <selector>     Wait for a CSS selector before printing")
	fmt.Fprintln(w, "      --delay <ms>          Wait a fixed time before printing")
	fmt.Fprintln(w, "      --timeout <duration>  Page load timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --markdown            Render file and inline sources as Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run:")
	fmt.Fprintln(w, "      --batch <file.yaml>   Export every job of a manifest")
	fmt.Fprintln(w, "      --verify              Validate the written PDF")
	fmt.Fprintln(w, "      --metrics <file.prom> Write prometheus metrics after the run")
	fmt.Fprintln(w, "      --doctor              Check the browser setup (--json for JSON)")
	fmt.Fprintln(w, "  -v, --verbose             Debug logs on stderr")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary to use instead of the managed download")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  html2pdf https://example.com example.pdf --format=Letter")
	fmt.Fprintln(w, "  html2pdf report.html --wait=#chart-ready --delay=500")
	fmt.Fprintln(w, "  html2pdf '<h1>Invoice</h1>' invoice.pdf --no-margin")
	fmt.Fprintln(w, "  html2pdf --batch jobs.yaml --metrics run.prom")
}
