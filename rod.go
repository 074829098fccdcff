package html2pdf

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-html2pdf/internal/process"
)

// Compile-time interface checks
var (
	_ Engine  = (*rodEngine)(nil)
	_ Browser = (*rodBrowser)(nil)
	_ Page    = (*rodPage)(nil)
)

// networkIdleWindow is how long the network must stay quiet after
// SetContent before the document counts as loaded.
const networkIdleWindow = 500 * time.Millisecond

// idleIgnoredTypes are the request types SetContent does not wait for.
// Streams never finish; images, fonts and media must.
var idleIgnoredTypes = []proto.NetworkResourceType{
	proto.NetworkResourceTypeWebSocket,
	proto.NetworkResourceTypeEventSource,
}

// fontsReadyScript resolves once every font face has loaded or failed.
const fontsReadyScript = `() => document.fonts.ready.then(() => true)`

// rodEngine implements Engine with go-rod.
// Rod downloads a managed Chromium on first run if no binary is found.
type rodEngine struct{}

// Launch starts a new Chrome process and connects to it.
func (rodEngine) Launch(ctx context.Context, cfg LaunchConfig) (Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox).
		Leakless(true)
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}
	for _, f := range cfg.Flags {
		name, value, hasValue := strings.Cut(f, "=")
		if hasValue {
			l = l.Set(flags.Flag(name), value)
		} else {
			l = l.Set(flags.Flag(name))
		}
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &rodBrowser{browser: browser, launcher: l}, nil
}

// rodBrowser owns one Chrome process.
type rodBrowser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	closeOnce sync.Once
	closeErr  error
}

// NewPage opens a blank tab with the given viewport.
func (b *rodBrowser) NewPage(ctx context.Context, viewport Viewport) (Page, error) {
	page, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewport.Width,
		Height:            viewport.Height,
		DeviceScaleFactor: viewport.DeviceScaleFactor,
	})
	if err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	return &rodPage{page: page}, nil
}

// Close disconnects and kills the whole Chrome process tree.
// Safe to call multiple times.
func (b *rodBrowser) Close() error {
	b.closeOnce.Do(func() {
		pid := b.launcher.PID()
		b.closeErr = b.browser.Close()
		b.launcher.Kill()
		// Renderer and GPU children may outlive the main process.
		process.KillTree(pid)
		b.launcher.Cleanup()
	})
	return b.closeErr
}

// rodPage implements Page on a rod tab.
type rodPage struct {
	page      *rod.Page
	closeOnce sync.Once
	closeErr  error
}

// Navigate loads url and waits for Chrome's networkIdle lifecycle event,
// fired once no request has been in flight for 500ms.
func (p *rodPage) Navigate(ctx context.Context, url string, cfg LoadConfig) error {
	page, cancel := p.bounded(ctx, cfg.Timeout)
	defer cancel()

	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := page.Navigate(url); err != nil {
		return boundedErr(page.GetContext(), err)
	}
	wait()

	return boundedErr(page.GetContext(), nil)
}

// SetContent writes html into the tab and waits for its subresources.
func (p *rodPage) SetContent(ctx context.Context, html string, cfg LoadConfig) error {
	page, cancel := p.bounded(ctx, cfg.Timeout)
	defer cancel()

	wait := page.WaitRequestIdle(networkIdleWindow, nil, nil, idleIgnoredTypes)
	if err := page.SetDocumentContent(html); err != nil {
		return boundedErr(page.GetContext(), err)
	}
	wait()

	if err := page.WaitLoad(); err != nil {
		return boundedErr(page.GetContext(), err)
	}
	return boundedErr(page.GetContext(), nil)
}

// WaitFonts blocks on document.fonts.ready.
func (p *rodPage) WaitFonts(ctx context.Context) error {
	if _, err := p.page.Context(ctx).Eval(fontsReadyScript); err != nil {
		return fmt.Errorf("waiting for fonts: %w", err)
	}
	return nil
}

// WaitSelector polls the DOM until selector matches or timeout elapses.
func (p *rodPage) WaitSelector(ctx context.Context, selector string, timeout time.Duration) error {
	page, cancel := p.bounded(ctx, timeout)
	defer cancel()

	if _, err := page.Element(selector); err != nil {
		return boundedErr(page.GetContext(), err)
	}
	return nil
}

// PDF prints the document with Chrome's Page.printToPDF.
func (p *rodPage) PDF(ctx context.Context, opts PDFOptions) ([]byte, error) {
	req, err := printToPDFParams(opts)
	if err != nil {
		return nil, err
	}

	reader, err := p.page.Context(ctx).PDF(req)
	if err != nil {
		return nil, fmt.Errorf("printing: %w", err)
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading PDF stream: %w", err)
	}
	return buf, nil
}

// Close closes the tab. Safe to call multiple times.
func (p *rodPage) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.page.Close()
	})
	return p.closeErr
}

// bounded returns the page bound to ctx limited by timeout.
func (p *rodPage) bounded(ctx context.Context, timeout time.Duration) (*rod.Page, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	return p.page.Context(tctx), cancel
}

// boundedErr reports an expired context in preference to the rod error,
// so callers can tell timeouts apart with errors.Is.
func boundedErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if err == nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}

// paperSize is a page size in inches, portrait.
type paperSize struct {
	width, height float64
}

// paperSizes maps lowercase format names to dimensions in inches.
var paperSizes = map[string]paperSize{
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
	"ledger":  {17, 11},
	"a0":      {33.1, 46.8},
	"a1":      {23.4, 33.1},
	"a2":      {16.54, 23.4},
	"a3":      {11.7, 16.54},
	"a4":      {8.27, 11.7},
	"a5":      {5.83, 8.27},
	"a6":      {4.13, 5.83},
}

// pixelsPerUnit converts CSS units to CSS pixels (96 per inch).
var pixelsPerUnit = map[string]float64{
	"px": 1,
	"in": 96,
	"cm": 37.8,
	"mm": 3.78,
}

const pixelsPerInch = 96

// printToPDFParams translates PDFOptions into a printToPDF request.
// Unknown formats and units are rejected here, never earlier.
func printToPDFParams(opts PDFOptions) (*proto.PagePrintToPDF, error) {
	req := &proto.PagePrintToPDF{
		PrintBackground:   deref(opts.PrintBackground),
		PreferCSSPageSize: deref(opts.PreferCSSPageSize),
		Landscape:         deref(opts.Landscape),
	}

	if opts.Format != nil {
		size, ok := paperSizes[strings.ToLower(*opts.Format)]
		if !ok {
			return nil, fmt.Errorf("unknown paper format %q", *opts.Format)
		}
		req.PaperWidth = floatPtr(size.width)
		req.PaperHeight = floatPtr(size.height)
	}

	if m := opts.Margin; m != nil {
		sides := []struct {
			name  string
			value string
			dst   **float64
		}{
			{"top", m.Top, &req.MarginTop},
			{"bottom", m.Bottom, &req.MarginBottom},
			{"left", m.Left, &req.MarginLeft},
			{"right", m.Right, &req.MarginRight},
		}
		for _, s := range sides {
			inches, err := lengthToInches(s.value)
			if err != nil {
				return nil, fmt.Errorf("margin %s: %w", s.name, err)
			}
			*s.dst = floatPtr(inches)
		}
	}

	return req, nil
}

// lengthToInches parses a CSS length ("10mm", "0.5in", "12px", "12").
// A bare number is pixels. An empty string is zero.
func lengthToInches(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, nil
	}

	unit := "px"
	number := s
	if len(s) > 2 {
		if _, ok := pixelsPerUnit[s[len(s)-2:]]; ok {
			unit = s[len(s)-2:]
			number = s[:len(s)-2]
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return v * pixelsPerUnit[unit] / pixelsPerInch, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// deref returns *b, or false when b is nil.
func deref(b *bool) bool {
	return b != nil && *b
}
