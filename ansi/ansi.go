// Package ansi is the static table of SGR and OSC-8 byte sequences the
// renderer writes to the output stream. It holds no state of its own;
// every function is a pure string builder over its arguments.
package ansi

import (
	"fmt"
	"strconv"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Reset clears every active SGR attribute.
const Reset = "\x1b[0m"

// On/off pairs for the emphasis kinds the inline formatter tracks. Each
// "off" code targets only its own attribute (22/23/24/29), never a blanket
// reset, so nested styles can be closed independently.
const (
	BoldOn  = "\x1b[1m"
	BoldOff = "\x1b[22m"

	ItalicOn  = "\x1b[3m"
	ItalicOff = "\x1b[23m"

	UnderlineOn  = "\x1b[4m"
	UnderlineOff = "\x1b[24m"

	StrikethroughOn  = "\x1b[9m"
	StrikethroughOff = "\x1b[29m"
)

// SGR joins the given SGR parameters into one escape sequence, e.g.
// SGR(1, 4) -> "\x1b[1;4m".
func SGR(codes ...int) string {
	if len(codes) == 0 {
		return ""
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// FgANSI256 returns the SGR sequence selecting a foreground color from the
// 256-color palette.
func FgANSI256(n int) string {
	return fmt.Sprintf("\x1b[38;5;%dm", n)
}

// FgTrueColor returns the SGR sequence selecting a 24-bit RGB foreground
// color.
func FgTrueColor(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// FgFromSpec resolves a color spec as it appears in a theme definition into
// an SGR "on" sequence. A leading "#" selects a 24-bit hex color
// ("#rrggbb"); a bare decimal number selects the matching 256-color index.
// An empty spec resolves to "", meaning "no color, inherit default".
func FgFromSpec(spec string) string {
	if spec == "" {
		return ""
	}
	if strings.HasPrefix(spec, "#") {
		if c, ok := parseHex(spec); ok {
			return FgTrueColor(c.r, c.g, c.b)
		}
		return ""
	}
	if n, err := strconv.Atoi(spec); err == nil {
		return FgANSI256(n)
	}
	return ""
}

type rgb struct{ r, g, b uint8 }

func parseHex(s string) (rgb, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{
		r: uint8(v >> 16),
		g: uint8(v >> 8),
		b: uint8(v),
	}, true
}

// Hyperlink wraps text in an OSC-8 hyperlink pointing at url. Style codes
// may already be embedded in text; the OSC-8 wrapper composes with them
// because terminals treat it as out-of-band from SGR state.
func Hyperlink(url, text string) string {
	return termenv.Hyperlink(url, text)
}

// StringWidth returns the visible column width of s, ignoring any ANSI
// escape sequences it contains.
func StringWidth(s string) int {
	return xansi.StringWidth(s)
}
