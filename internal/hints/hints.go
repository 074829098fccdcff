// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.PathExists("/.dockerenv")
}

// ForEngineLaunch returns hints for browser launch errors. browserBin is
// the configured Chrome binary, empty when rod picks one.
func ForEngineLaunch(browserBin string) string {
	var hints []string

	if browserBin == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	if IsInContainer() {
		hints = append(hints, "container images need Chrome's shared libraries (libnss3, libgbm1)")
	}
	hints = append(hints, "run 'html2pdf --doctor' for diagnostics")

	return formatHints(hints)
}

// ForNavigationTimeout returns a hint about slow pages.
func ForNavigationTimeout() string {
	return format("pages that keep connections open never go idle; raise --timeout")
}

// ForSelectorTimeout returns a hint about the readiness selector.
func ForSelectorTimeout(selector string) string {
	if selector == "" {
		return ""
	}
	return format("check that " + selector + " matches an element the page actually renders")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
