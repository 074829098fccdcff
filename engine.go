package html2pdf

import (
	"context"
	"time"
)

// Engine starts isolated browser instances.
// The default implementation drives headless Chrome through go-rod;
// tests and alternative backends inject their own with WithEngine.
type Engine interface {
	Launch(ctx context.Context, cfg LaunchConfig) (Browser, error)
}

// Browser is one running engine instance.
type Browser interface {
	NewPage(ctx context.Context, viewport Viewport) (Page, error)
	Close() error
}

// Page is a single tab inside a Browser.
type Page interface {
	// Navigate loads url and waits until cfg.WaitUntil is reached or cfg.Timeout elapses.
	Navigate(ctx context.Context, url string, cfg LoadConfig) error
	// SetContent replaces the document with html under the same wait rules.
	SetContent(ctx context.Context, html string, cfg LoadConfig) error
	// WaitFonts blocks until document.fonts reports every font resolved.
	WaitFonts(ctx context.Context) error
	// WaitSelector blocks until an element matching selector is in the DOM.
	WaitSelector(ctx context.Context, selector string, timeout time.Duration) error
	// PDF prints the current document.
	PDF(ctx context.Context, opts PDFOptions) ([]byte, error)
	Close() error
}

// LaunchConfig configures a browser instance.
type LaunchConfig struct {
	Bin       string // browser binary, empty = engine default
	Headless  bool
	NoSandbox bool     // required in containers and restricted CI runners
	Flags     []string // extra command-line switches, "name" or "name=value"
}

// Viewport is the logical window used for layout.
type Viewport struct {
	Width             int
	Height            int
	DeviceScaleFactor float64
}

// WaitCondition names the readiness event a load waits for.
type WaitCondition string

// WaitNetworkIdle0 is reached once the page has had no network connection
// in flight for a short stabilization window.
const WaitNetworkIdle0 WaitCondition = "networkidle0"

// LoadConfig bounds a navigation or content load.
type LoadConfig struct {
	WaitUntil WaitCondition
	Timeout   time.Duration
}

// Launch, viewport and timeout defaults.
const (
	defaultTimeout         = 30 * time.Second
	defaultSelectorTimeout = 10 * time.Second
	viewportWidth          = 1920
	viewportHeight         = 1080
	viewportScale          = 2
)

// defaultLaunchFlags disable OS sandboxing, /dev/shm usage and subpixel font
// hinting so output is identical across hosts.
var defaultLaunchFlags = []string{
	"disable-setuid-sandbox",
	"disable-dev-shm-usage",
	"font-render-hinting=none",
}

// defaultLaunchConfig returns the launch configuration used for every session.
func defaultLaunchConfig(bin string) LaunchConfig {
	flags := make([]string, len(defaultLaunchFlags))
	copy(flags, defaultLaunchFlags)
	return LaunchConfig{
		Bin:       bin,
		Headless:  true,
		NoSandbox: true,
		Flags:     flags,
	}
}

// defaultViewport returns the fixed layout viewport.
func defaultViewport() Viewport {
	return Viewport{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: viewportScale,
	}
}
