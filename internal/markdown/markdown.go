// Package markdown renders Markdown sources to standalone HTML documents
// before they are loaded into the browser.
package markdown

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrConversion indicates Markdown could not be rendered.
var ErrConversion = errors.New("markdown conversion failed")

// stylesheet is the print stylesheet applied to every rendered document.
//
//go:embed style.css
var stylesheet string

// document wraps goldmark's fragment output in a complete HTML5 document.
// The base element lets relative image and link paths resolve against the
// Markdown file's directory once the HTML is loaded as inline content.
const document = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
%s<title>Document</title>
<style>
%s</style>
</head>
<body>
%s
</body>
</html>`

// Converter renders Markdown with GFM extensions and highlighted code blocks.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(false),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)
	return &Converter{md: md}
}

// ToHTML renders content to a standalone HTML document.
// baseURL, if not empty, becomes the document's <base href>.
// goldmark has no context support, so rendering runs in a goroutine and
// ctx only bounds how long the caller waits for it.
func (c *Converter) ToHTML(ctx context.Context, content, baseURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(document, baseElement(baseURL), stylesheet, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// baseElement returns a <base> line for baseURL, or nothing.
func baseElement(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return fmt.Sprintf("<base href=\"%s\">\n", html.EscapeString(baseURL))
}
