package html2pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/markdown"
)

// session owns one browser instance and one page for a single export.
// It is never shared between exports.
type session struct {
	id       string
	browser  Browser
	page     Page
	logger   *slog.Logger
	metrics  *Metrics
	cleanups []func()
	released bool
}

// acquireSession launches a browser and opens a page with the fixed viewport.
// On failure nothing is left running and no session is returned.
func acquireSession(ctx context.Context, engine Engine, launch LaunchConfig, viewport Viewport, logger *slog.Logger, metrics *Metrics) (*session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineLaunch, err)
	}

	browser, err := engine.Launch(ctx, launch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineLaunch, err)
	}

	page, err := browser.NewPage(ctx, viewport)
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("%w: opening page: %v", ErrEngineLaunch, err)
	}

	id := uuid.NewString()
	metrics.sessionAcquired()
	logger = logger.With("session", id)
	logger.Debug("session acquired")

	return &session{
		id:      id,
		browser: browser,
		page:    page,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// load brings src into the page and waits for the network to settle.
// With useMarkdown, local files and inline strings are rendered from
// Markdown first; remote URLs are always navigated.
func (s *session) load(ctx context.Context, src Source, cfg LoadConfig, md *markdown.Converter, useMarkdown bool) error {
	start := time.Now()
	defer func() {
		s.logger.Debug("content loaded", "kind", src.Kind.String(), "duration", time.Since(start))
	}()

	if useMarkdown {
		switch src.Kind {
		case SourceLocalFile:
			u, err := s.stageMarkdown(ctx, src.Raw, md)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrNavigation, err)
			}
			return loadErr(s.page.Navigate(ctx, u, cfg))
		case SourceInlineHTML:
			html, err := md.ToHTML(ctx, src.Raw, "")
			if err != nil {
				return fmt.Errorf("%w: %v", ErrNavigation, err)
			}
			return loadErr(s.page.SetContent(ctx, html, cfg))
		}
	}

	switch src.Kind {
	case SourceRemoteURL, SourceLocalFile:
		u, err := src.URL()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNavigation, err)
		}
		return loadErr(s.page.Navigate(ctx, u, cfg))
	default:
		return loadErr(s.page.SetContent(ctx, src.Raw, cfg))
	}
}

// awaitFontsReady blocks until every web font is resolved.
func (s *session) awaitFontsReady(ctx context.Context) error {
	if err := s.page.WaitFonts(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNavigation, err)
	}
	return nil
}

// awaitSelector blocks until selector matches an element.
func (s *session) awaitSelector(ctx context.Context, selector string, timeout time.Duration) error {
	s.logger.Debug("waiting for selector", "selector", selector, "timeout", timeout)

	err := s.page.WaitSelector(ctx, selector, timeout)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %q after %v", ErrSelectorTimeout, selector, timeout)
	default:
		return fmt.Errorf("%w: waiting for %q: %v", ErrNavigation, selector, err)
	}
}

// awaitDelay sleeps for d. Only cancellation of ctx cuts it short.
func (s *session) awaitDelay(ctx context.Context, d time.Duration) error {
	s.logger.Debug("delay", "duration", d)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: delay interrupted: %w", ErrNavigation, ctx.Err())
	}
}

// release closes the page, then the browser. Calling it again is a no-op.
func (s *session) release() error {
	if s == nil || s.released {
		return nil
	}
	s.released = true

	err := errors.Join(s.page.Close(), s.browser.Close())
	for _, cleanup := range s.cleanups {
		cleanup()
	}
	s.metrics.sessionReleased()
	if err != nil {
		s.logger.Warn("session release", "err", err)
	} else {
		s.logger.Debug("session released")
	}
	return err
}

// loadErr maps a page load failure onto the navigation taxonomy.
func loadErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrNavigationTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrNavigation, err)
	}
}

// stageMarkdown renders the Markdown file at path into an HTML file and
// returns its file:// URL. The rendered page is written next to the source
// so relative images and stylesheets load from a file origin; when that
// directory is read-only it goes to the OS temp directory and relies on
// <base href>. The staged file is removed on release.
func (s *session) stageMarkdown(ctx context.Context, path string, md *markdown.Converter) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- caller-provided source path
	if err != nil {
		return "", fmt.Errorf("reading markdown: %w", err)
	}

	dir := filepath.Dir(path)
	base, err := fileutil.FileURL(dir)
	if err != nil {
		return "", err
	}
	html, err := md.ToHTML(ctx, string(content), base+"/")
	if err != nil {
		return "", err
	}

	pattern := "." + strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "-*.html"
	staged, cleanup, err := fileutil.WriteTempFile(dir, pattern, html)
	if err != nil {
		s.logger.Debug("source directory not writable, staging in temp dir", "dir", dir, "err", err)
		if staged, cleanup, err = fileutil.WriteTempFile("", pattern, html); err != nil {
			return "", err
		}
	}
	s.cleanups = append(s.cleanups, cleanup)

	return fileutil.FileURL(staged)
}
