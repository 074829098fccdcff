// Package html2pdf exports HTML to PDF using headless Chrome.
//
// # Quick Start
//
//	path, err := html2pdf.ExportToPDF(ctx, "https://example.com", "example.pdf", html2pdf.ExportOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("written to", path)
//
// The source may be a remote URL (http:// or https://), a path to an existing
// local file, or literal HTML markup. Anything that is neither a URL nor an
// existing path is loaded as markup.
//
// # Export Pipeline
//
// Every export runs the same steps, strictly in order:
//
//  1. Classify the source (ResolveSource)
//  2. Launch a fresh browser with a 1920x1080 viewport at scale factor 2
//  3. Navigate, or set the content, and wait for the network to go idle
//  4. Wait for web fonts, then for an optional selector and an optional delay
//  5. Print to PDF with the merged options and write the file
//  6. Close the browser, whatever happened before
//
// # Options
//
// ExportOptions fields are pointers; nil means "use the default".
// Merge overlays per-call options on DefaultOptions field by field, except
// the margin which is always replaced as a whole:
//
//	opts := html2pdf.ExportOptions{
//	    WaitForSelector: html2pdf.Ptr("#chart-ready"),
//	    Delay:           html2pdf.Ptr(500 * time.Millisecond),
//	    PDF: html2pdf.PDFOptions{
//	        Format:    html2pdf.Ptr(html2pdf.FormatLetter),
//	        Landscape: html2pdf.Ptr(true),
//	        Margin:    html2pdf.UniformMargin("0"),
//	    },
//	}
//
// Use an Exporter to configure timeouts, logging, metrics or a custom engine:
//
//	exp := html2pdf.NewExporter(
//	    html2pdf.WithTimeout(time.Minute),
//	    html2pdf.WithLogger(slog.Default()),
//	)
//
// # Batches
//
// ExportMultiple runs jobs one after another, each with its own browser.
// A failed job never stops the batch; its slot in the result carries the
// error message.
//
// # Browser Requirements
//
// go-rod downloads a managed Chromium on first run (~/.cache/rod/browser/)
// unless ROD_BROWSER_BIN points to an installed Chrome. Chrome always runs
// without its OS sandbox so exports work in containers and CI.
package html2pdf
