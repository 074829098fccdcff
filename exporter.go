package html2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-html2pdf/internal/markdown"
	"github.com/alnah/go-html2pdf/internal/pdfcheck"
)

// Exporter runs the single-export pipeline:
// resolve source, acquire session, load, wait for readiness, merge options,
// emit, release. Create with NewExporter.
type Exporter struct {
	cfg      exporterConfig
	engine   Engine
	defaults ExportOptions
	logger   *slog.Logger
	metrics  *Metrics
	markdown *markdown.Converter
	verify   verifyFunc
}

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout         time.Duration
	selectorTimeout time.Duration
	browserBin      string
	verify          bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithEngine replaces the go-rod engine, e.g. with a test double.
func WithEngine(engine Engine) Option {
	return func(e *Exporter) {
		e.engine = engine
	}
}

// WithDefaults overlays d on the built-in defaults for every export.
// Per-call options are still merged on top.
func WithDefaults(d ExportOptions) Option {
	return func(e *Exporter) {
		e.defaults = Merge(e.defaults, d)
	}
}

// WithTimeout sets the navigation and content load timeout (default 30s).
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2pdf: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithSelectorTimeout sets how long a wait selector may take (default 10s).
// Panics if d <= 0.
func WithSelectorTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2pdf: WithSelectorTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.selectorTimeout = d
	}
}

// WithLogger sets the logger. Pipeline steps are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithMetrics records export and session metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Exporter) {
		e.metrics = m
	}
}

// WithVerify validates every emitted file as a PDF before reporting success.
func WithVerify() Option {
	return func(e *Exporter) {
		e.cfg.verify = true
	}
}

// WithBrowserBin sets the Chrome binary, overriding ROD_BROWSER_BIN.
func WithBrowserBin(path string) Option {
	return func(e *Exporter) {
		e.cfg.browserBin = path
	}
}

// NewExporter creates an Exporter with default configuration.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{
			timeout:         defaultTimeout,
			selectorTimeout: defaultSelectorTimeout,
			browserBin:      os.Getenv("ROD_BROWSER_BIN"),
		},
		defaults: DefaultOptions(),
		markdown: markdown.NewConverter(),
		verify:   pdfcheck.Validate,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.engine == nil {
		e.engine = rodEngine{}
	}
	e.engine = NewLoggingEngine(e.engine, e.logger)

	return e
}

// Defaults returns a copy of the options every export starts from.
func (e *Exporter) Defaults() ExportOptions {
	return Merge(e.defaults, ExportOptions{})
}

// Export renders source to a PDF at dest and returns its absolute path.
// An empty dest means DefaultOutput. The browser session is released on
// every path, including panics inside the pipeline.
func (e *Exporter) Export(ctx context.Context, source, dest string, opts ExportOptions) (path string, err error) {
	if dest == "" {
		dest = DefaultOutput
	}

	start := time.Now()
	src := ResolveSource(source)
	logger := e.logger.With("source_kind", src.Kind.String(), "dest", dest)

	defer func() {
		if r := recover(); r != nil {
			path, err = "", fmt.Errorf("%w: internal error: %v", ErrPDFGeneration, r)
		}
		e.metrics.observeExport(src.Kind, err, time.Since(start))
		logger.Debug("export", "path", path, "duration", time.Since(start), "err", err)
	}()

	sess, err := acquireSession(ctx, e.engine, defaultLaunchConfig(e.cfg.browserBin), defaultViewport(), logger, e.metrics)
	if err != nil {
		return "", err
	}
	defer func() { _ = sess.release() }()

	return e.render(ctx, sess, src, dest, Merge(e.defaults, opts))
}

// render runs the readiness steps in order, then emits.
func (e *Exporter) render(ctx context.Context, sess *session, src Source, dest string, opts ExportOptions) (string, error) {
	load := LoadConfig{WaitUntil: WaitNetworkIdle0, Timeout: e.cfg.timeout}
	if err := sess.load(ctx, src, load, e.markdown, opts.markdown()); err != nil {
		return "", err
	}

	if err := sess.awaitFontsReady(ctx); err != nil {
		return "", err
	}

	if sel := opts.selector(); sel != "" {
		if err := sess.awaitSelector(ctx, sel, e.cfg.selectorTimeout); err != nil {
			return "", err
		}
	}

	if d := opts.delay(); d > 0 {
		if err := sess.awaitDelay(ctx, d); err != nil {
			return "", err
		}
	}

	path, err := emit(ctx, sess.page, dest, opts.PDF)
	if err != nil {
		return "", err
	}

	if e.cfg.verify {
		report, err := e.verify(path)
		if err != nil {
			if rmErr := os.Remove(path); rmErr != nil {
				sess.logger.Warn("removing unverified output", "path", path, "err", rmErr)
			}
			return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
		}
		sess.logger.Debug("verified", "path", path, "pages", report.Pages)
	}

	return path, nil
}

// ExportToPDF renders source to dest with a default Exporter.
// See Exporter.Export.
func ExportToPDF(ctx context.Context, source, dest string, opts ExportOptions) (string, error) {
	return NewExporter().Export(ctx, source, dest, opts)
}

// ExportMultiple runs jobs in order with a default Exporter.
// See Exporter.ExportMultiple.
func ExportMultiple(ctx context.Context, jobs []Job) BatchResult {
	return NewExporter().ExportMultiple(ctx, jobs)
}
