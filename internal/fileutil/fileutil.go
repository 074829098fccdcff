// Package fileutil provides file, path and URL helpers shared by the
// source resolver and the PDF emitter.
package fileutil

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when a path helper receives an empty string.
var ErrEmptyPath = errors.New("path cannot be empty")

// IsURL returns true if the string is an http or https URL.
// Only the scheme prefix is checked; the rest is left to the browser.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// PathExists returns true if the path exists (file or directory).
// Relative paths are resolved against the working directory.
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// FileURL converts a filesystem path into an absolute file:// URI.
//
// Examples:
//   - "report.html"        -> "file:///cwd/report.html"
//   - "/tmp/a b.html"      -> "file:///tmp/a%20b.html"
//   - "C:\docs\cv.html"    -> "file:///C:/docs/cv.html"
func FileURL(path string) (string, error) {
	abs, err := AbsPath(path)
	if err != nil {
		return "", err
	}
	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		// Windows drive letter
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String(), nil
}

// WriteTempFile writes content to a new file in dir named after pattern
// (see os.CreateTemp). An empty dir means the OS temp directory.
// The returned cleanup removes the file.
func WriteTempFile(dir, pattern, content string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}
	return path, cleanup, nil
}

// AbsPath resolves path against the working directory.
func AbsPath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}
	return abs, nil
}
