package consoleink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stimpy77/ConsoleInk.NET/theme"
)

func renderMono(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	var b strings.Builder
	all := append([]Option{WithTheme(theme.Monochrome()), WithColors(false), WithHyperlinks(false)}, opts...)
	w := NewWriter(&b, all...)
	require.NoError(t, w.WriteString(src))
	require.NoError(t, w.Complete())
	return b.String()
}

func TestSimpleParagraphWrap(t *testing.T) {
	got := renderMono(t, "The quick brown fox jumps over the lazy dog\n", WithWidth(20))
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 20, "line %q exceeds width 20", line)
	}
}

func TestParagraphBlankParagraphSeparation(t *testing.T) {
	got := renderMono(t, "first\n\nsecond\n")
	require.Contains(t, got, "first\n\nsecond")
}

func TestIndentedCodeAfterParagraph(t *testing.T) {
	got := renderMono(t, "intro\n\n    code line\n")
	require.Contains(t, got, "code line")
}

func TestTaskListRendersMarkers(t *testing.T) {
	got := renderMono(t, "- [ ] todo\n- [x] done\n")
	require.Contains(t, got, "[ ] todo")
	require.Contains(t, got, "[x] done")
}

func TestReferenceLinkBeforeDefinition(t *testing.T) {
	got := renderMono(t, "see [example][ex] for more\n\n[ex]: https://example.com\n")
	require.Contains(t, got, "[example][ex]")
	require.NotContains(t, got, "https://example.com")
}

func TestLinkDefinitionProducesNoVisibleOutput(t *testing.T) {
	got := renderMono(t, "[ex]: https://example.com \"Title\"\n")
	require.Empty(t, strings.TrimSpace(got))
}

func TestSimpleTableColumnWidths(t *testing.T) {
	got := renderMono(t, "| Name | Age |\n| --- | --- |\n| Alice | 30 |\n")
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		require.True(t, strings.HasPrefix(line, "|"), "expected table row to start with |, got %q", line)
	}
	require.Equal(t, "| Name  | Age |\n| ----- | --- |\n| Alice | 30  |\n", got)
}

func TestMonochromeProducesNoEscapeBytes(t *testing.T) {
	got := renderMono(t, "# Heading\n\n**bold** and *italic* and ~~strike~~\n\n- item one\n- item two\n")
	require.NotContains(t, got, "\x1b")
}

func TestOrderedListCounterResets(t *testing.T) {
	got := renderMono(t, "1. a\n2. b\n\npara\n\n1. c\n2. d\n")
	require.Contains(t, got, "1. a")
	require.Contains(t, got, "1. c")
}

func TestNoTrailingNewlineDuplication(t *testing.T) {
	got := renderMono(t, "one line, no newline at all")
	require.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestCRLFAndLFEquivalence(t *testing.T) {
	lf := renderMono(t, "a\nb\n")
	crlf := renderMono(t, "a\r\nb\r\n")
	cr := renderMono(t, "a\rb\r")
	require.Equal(t, lf, crlf)
	require.Equal(t, lf, cr)
}

func TestWriteAfterCompleteErrors(t *testing.T) {
	var b strings.Builder
	w := NewWriter(&b)
	require.NoError(t, w.Complete())
	require.ErrorIs(t, w.WriteString("more"), ErrClosed)
}

func TestThematicBreakFillsWidth(t *testing.T) {
	got := renderMono(t, "above\n\n---\n\nbelow\n", WithWidth(10))
	found := false
	for _, line := range strings.Split(got, "\n") {
		if strings.Count(line, "─") == 10 {
			found = true
		}
	}
	require.True(t, found, "expected a 10-column horizontal rule line, got %q", got)
}

func TestMalformedTableRendersPlaceholder(t *testing.T) {
	got := renderMono(t, "| A | B |\n| --- | --- | --- |\n| 1 | 2 |\n")
	require.Contains(t, got, "[Table Render Error]")
}
