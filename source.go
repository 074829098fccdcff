package html2pdf

import (
	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// SourceKind identifies how a source string is loaded into the browser.
type SourceKind int

// Source kinds, in classification priority order.
const (
	SourceRemoteURL SourceKind = iota + 1
	SourceLocalFile
	SourceInlineHTML
)

// String returns a short lowercase name, used in logs and metrics labels.
func (k SourceKind) String() string {
	switch k {
	case SourceRemoteURL:
		return "remote"
	case SourceLocalFile:
		return "file"
	case SourceInlineHTML:
		return "inline"
	default:
		return "unknown"
	}
}

// Source is a classified export source.
type Source struct {
	Kind SourceKind
	Raw  string // the string as given by the caller
}

// ResolveSource classifies s as a remote URL, a local file, or inline HTML.
//
// An http:// or https:// prefix always wins, even if a file with that name
// exists. Anything that is not a URL and not an existing path is inline HTML;
// classification never fails, malformed markup surfaces at load time.
func ResolveSource(s string) Source {
	switch {
	case fileutil.IsURL(s):
		return Source{Kind: SourceRemoteURL, Raw: s}
	case fileutil.PathExists(s):
		return Source{Kind: SourceLocalFile, Raw: s}
	default:
		return Source{Kind: SourceInlineHTML, Raw: s}
	}
}

// URL returns the address the browser navigates to.
// Local files become absolute file:// URIs. Inline HTML has no URL.
func (s Source) URL() (string, error) {
	switch s.Kind {
	case SourceRemoteURL:
		return s.Raw, nil
	case SourceLocalFile:
		return fileutil.FileURL(s.Raw)
	default:
		return "", nil
	}
}
