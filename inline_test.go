package consoleink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stimpy77/ConsoleInk.NET/theme"
)

func newMonoWriter() *Writer {
	var b strings.Builder
	return NewWriter(&b, WithTheme(theme.Monochrome()), WithColors(false), WithHyperlinks(false))
}

func TestFormatInlineBoldItalicStrike(t *testing.T) {
	w := newMonoWriter()
	require.Equal(t, "bold", formatInline(w, "**bold**"))
	require.Equal(t, "italic", formatInline(w, "*italic*"))
	require.Equal(t, "struck", formatInline(w, "~~struck~~"))
}

func TestFormatInlineEscapedAsterisk(t *testing.T) {
	w := newMonoWriter()
	require.Equal(t, "*not bold*", formatInline(w, `\*not bold\*`))
}

func TestFormatInlineStripsInlineHTML(t *testing.T) {
	w := newMonoWriter()
	require.Equal(t, "hello world", formatInline(w, "hello <b>world</b>"))
}

func TestFormatInlineImageShowsAltNotURL(t *testing.T) {
	w := newMonoWriter()
	out := formatInline(w, "![a cat](cat.png)")
	require.Contains(t, out, "a cat")
	require.NotContains(t, out, "cat.png")
}

func TestFormatInlineUnresolvedReferenceFallsBackToText(t *testing.T) {
	w := newMonoWriter()
	out := formatInline(w, "[missing][nope]")
	require.Equal(t, "[missing][nope]", out)
}
