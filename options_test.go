package html2pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestDefaultOptions - Built-in defaults
// ---------------------------------------------------------------------------

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	d := DefaultOptions()

	require.NotNil(t, d.PDF.Format)
	assert.Equal(t, FormatA4, *d.PDF.Format)
	assert.True(t, *d.PDF.PrintBackground)
	assert.True(t, *d.PDF.PreferCSSPageSize)
	assert.False(t, *d.PDF.Landscape)
	assert.Equal(t, Margin{Top: "1cm", Bottom: "1cm", Left: "1cm", Right: "1cm"}, *d.PDF.Margin)
	assert.Nil(t, d.Delay)
	assert.Nil(t, d.WaitForSelector)
	assert.Nil(t, d.Markdown)
}

func TestDefaultOptions_FreshValue(t *testing.T) {
	t.Parallel()

	a := DefaultOptions()
	*a.PDF.Format = FormatLetter
	a.PDF.Margin.Top = "9in"

	b := DefaultOptions()
	assert.Equal(t, FormatA4, *b.PDF.Format)
	assert.Equal(t, "1cm", b.PDF.Margin.Top)
}

// ---------------------------------------------------------------------------
// TestMerge - Override precedence
// ---------------------------------------------------------------------------

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides ExportOptions
		check     func(t *testing.T, got ExportOptions)
	}{
		{
			name:      "empty overrides equal defaults",
			overrides: ExportOptions{},
			check: func(t *testing.T, got ExportOptions) {
				assert.Equal(t, DefaultOptions(), got)
			},
		},
		{
			name:      "format override keeps the other fields",
			overrides: ExportOptions{PDF: PDFOptions{Format: Ptr(FormatLetter)}},
			check: func(t *testing.T, got ExportOptions) {
				want := DefaultOptions()
				want.PDF.Format = Ptr(FormatLetter)
				assert.Equal(t, want, got)
			},
		},
		{
			name:      "false overrides true",
			overrides: ExportOptions{PDF: PDFOptions{PrintBackground: Ptr(false)}},
			check: func(t *testing.T, got ExportOptions) {
				assert.False(t, *got.PDF.PrintBackground)
			},
		},
		{
			name:      "margin is replaced as a whole",
			overrides: ExportOptions{PDF: PDFOptions{Margin: &Margin{Top: "2cm"}}},
			check: func(t *testing.T, got ExportOptions) {
				assert.Equal(t, Margin{Top: "2cm"}, *got.PDF.Margin)
			},
		},
		{
			name: "export fields are taken",
			overrides: ExportOptions{
				Delay:           Ptr(500 * time.Millisecond),
				WaitForSelector: Ptr("#ready"),
				Markdown:        Ptr(true),
			},
			check: func(t *testing.T, got ExportOptions) {
				assert.Equal(t, 500*time.Millisecond, got.delay())
				assert.Equal(t, "#ready", got.selector())
				assert.True(t, got.markdown())
			},
		},
		{
			name:      "values are not validated",
			overrides: ExportOptions{PDF: PDFOptions{Format: Ptr("B7")}},
			check: func(t *testing.T, got ExportOptions) {
				assert.Equal(t, "B7", *got.PDF.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Merge(DefaultOptions(), tt.overrides))
		})
	}
}

func TestMerge_NoAliasing(t *testing.T) {
	t.Parallel()

	defaults := DefaultOptions()
	overrides := ExportOptions{
		WaitForSelector: Ptr("#a"),
		PDF:             PDFOptions{Margin: UniformMargin("5mm")},
	}

	got := Merge(defaults, overrides)
	*got.WaitForSelector = "#b"
	got.PDF.Margin.Left = "7mm"
	*got.PDF.Format = FormatA3

	assert.Equal(t, "#a", *overrides.WaitForSelector)
	assert.Equal(t, "5mm", overrides.PDF.Margin.Left)
	assert.Equal(t, FormatA4, *defaults.PDF.Format)
}

func TestMerge_BothAbsent(t *testing.T) {
	t.Parallel()

	got := Merge(ExportOptions{}, ExportOptions{})
	assert.Equal(t, ExportOptions{}, got)
	assert.Zero(t, got.delay())
	assert.Empty(t, got.selector())
	assert.False(t, got.markdown())
}

func TestPtr(t *testing.T) {
	t.Parallel()

	p := Ptr(42)
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)
	assert.NotSame(t, p, Ptr(42))
}
