package html2pdf

import (
	"context"
	"time"
)

// fakeCall records one Page method invocation.
type fakeCall struct {
	Op      string // "navigate", "setContent", "fonts", "selector", "pdf"
	Arg     string
	Load    LoadConfig
	Timeout time.Duration
	PDF     PDFOptions
}

// fakeEngine implements Engine without a browser.
// It counts launches and closes so tests can check that every acquired
// session is released.
type fakeEngine struct {
	launchErr    error
	newPageErr   error
	navigateFn   func(url string) error
	setContentFn func(html string) error
	fontsErr     error
	selectorErr  error
	pdfFn        func(opts PDFOptions) ([]byte, error)

	launches      int
	browserCloses int
	pageCloses    int
	launchCfgs    []LaunchConfig
	viewports     []Viewport
	calls         []fakeCall
}

func (e *fakeEngine) Launch(ctx context.Context, cfg LaunchConfig) (Browser, error) {
	if e.launchErr != nil {
		return nil, e.launchErr
	}
	e.launches++
	e.launchCfgs = append(e.launchCfgs, cfg)
	return &fakeBrowser{engine: e}, nil
}

// open reports sessions launched minus browsers closed.
func (e *fakeEngine) open() int {
	return e.launches - e.browserCloses
}

// ops returns the recorded operation names in order.
func (e *fakeEngine) ops() []string {
	ops := make([]string, len(e.calls))
	for i, c := range e.calls {
		ops[i] = c.Op
	}
	return ops
}

type fakeBrowser struct {
	engine *fakeEngine
}

func (b *fakeBrowser) NewPage(ctx context.Context, viewport Viewport) (Page, error) {
	if b.engine.newPageErr != nil {
		return nil, b.engine.newPageErr
	}
	b.engine.viewports = append(b.engine.viewports, viewport)
	return &fakePage{engine: b.engine}, nil
}

func (b *fakeBrowser) Close() error {
	b.engine.browserCloses++
	return nil
}

type fakePage struct {
	engine *fakeEngine
}

func (p *fakePage) Navigate(ctx context.Context, url string, cfg LoadConfig) error {
	p.engine.calls = append(p.engine.calls, fakeCall{Op: "navigate", Arg: url, Load: cfg})
	if p.engine.navigateFn != nil {
		return p.engine.navigateFn(url)
	}
	return nil
}

func (p *fakePage) SetContent(ctx context.Context, html string, cfg LoadConfig) error {
	p.engine.calls = append(p.engine.calls, fakeCall{Op: "setContent", Arg: html, Load: cfg})
	if p.engine.setContentFn != nil {
		return p.engine.setContentFn(html)
	}
	return nil
}

func (p *fakePage) WaitFonts(ctx context.Context) error {
	p.engine.calls = append(p.engine.calls, fakeCall{Op: "fonts"})
	return p.engine.fontsErr
}

func (p *fakePage) WaitSelector(ctx context.Context, selector string, timeout time.Duration) error {
	p.engine.calls = append(p.engine.calls, fakeCall{Op: "selector", Arg: selector, Timeout: timeout})
	return p.engine.selectorErr
}

func (p *fakePage) PDF(ctx context.Context, opts PDFOptions) ([]byte, error) {
	p.engine.calls = append(p.engine.calls, fakeCall{Op: "pdf", PDF: opts})
	if p.engine.pdfFn != nil {
		return p.engine.pdfFn(opts)
	}
	return []byte("%PDF-1.7 fake"), nil
}

func (p *fakePage) Close() error {
	p.engine.pageCloses++
	return nil
}
