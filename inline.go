package consoleink

import (
	"strings"

	"github.com/stimpy77/ConsoleInk.NET/ansi"
)

type styleTagKind int

const (
	styleItalic styleTagKind = iota
	styleBold
	styleBoldItalic
	styleStrike
)

// inlineFormatter runs a single forward pass over one line fragment,
// emitting styled text into its own local builder. Its style stack never
// escapes the call that owns it: formatInline always closes every open
// style by the time it returns, so RendererState needs no persistent
// inline-style field across block boundaries.
type inlineFormatter struct {
	w       *Writer
	out     strings.Builder
	stack   []styleTagKind
}

func formatInline(w *Writer, s string) string {
	f := &inlineFormatter{w: w}
	f.run(s)
	f.closeAll()
	return f.out.String()
}

func (f *inlineFormatter) run(s string) {
	i := 0
	for i < len(s) {
		c := s[i]

		if c == '\\' && i+1 < len(s) && isEscapable(s[i+1]) {
			f.out.WriteByte(s[i+1])
			i += 2
			continue
		}

		if c == '!' && i+1 < len(s) && s[i+1] == '[' {
			if alt, url, n, ok := parseImage(s[i:]); ok {
				f.writeImage(alt, url)
				i += n
				continue
			}
		}

		if f.w.opts.StripHTML && c == '<' {
			if n, ok := skipInlineHTML(s[i:]); ok {
				i += n
				continue
			}
		}

		if c == '[' {
			if text, url, title, n, ok := parseInlineLink(s[i:]); ok {
				f.writeLink(text, url, title)
				i += n
				continue
			}
			if text, label, n, ok := parseReferenceLink(s[i:]); ok {
				if def, found := f.w.linkDefs[label]; found {
					f.writeLink(text, def.url, def.title)
				} else {
					f.out.WriteString(s[i : i+n])
				}
				i += n
				continue
			}
		}

		if c == '*' || c == '_' || c == '~' {
			if n, ok := f.handleMarkerRun(s, i); ok {
				i += n
				continue
			}
		}

		f.out.WriteByte(c)
		i++
	}
}

func isEscapable(b byte) bool {
	return strings.IndexByte(`*_~[]()\!`, b) >= 0
}

func (f *inlineFormatter) on(code string) {
	if f.w.opts.EnableColors && code != "" {
		f.out.WriteString(code)
	}
}

func (f *inlineFormatter) closeAll() {
	for len(f.stack) > 0 {
		f.popStyle()
	}
}

func (f *inlineFormatter) pushStyle(k styleTagKind) {
	f.stack = append(f.stack, k)
	th := f.w.opts.Theme
	switch k {
	case styleItalic:
		f.on(th.EmphasisItalicOn)
	case styleBold:
		f.on(th.EmphasisBoldOn)
	case styleBoldItalic:
		f.on(th.EmphasisBoldItalicOn)
	case styleStrike:
		f.on(th.EmphasisStrikethroughOn)
	}
}

func (f *inlineFormatter) popStyle() {
	if len(f.stack) == 0 {
		return
	}
	k := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	switch k {
	case styleItalic:
		f.on(ansi.ItalicOff)
	case styleBold:
		f.on(ansi.BoldOff)
	case styleBoldItalic:
		f.on(ansi.BoldOff)
		f.on(ansi.ItalicOff)
	case styleStrike:
		f.on(ansi.StrikethroughOff)
	}
}

// handleMarkerRun detects a run of '*'/'_'/'~' and, if it forms a complete
// open+close pair with non-empty content between, emits the styled span.
// A run closes only at a later run of the same character and the same
// length; a '*' run never closes with '_' (strict CommonMark delimiter
// matching is not attempted; this targets the common single/double/triple
// run cases the spec enumerates).
func (f *inlineFormatter) handleMarkerRun(s string, i int) (int, bool) {
	ch := s[i]
	n := runLength(s, i, ch)
	if ch == '~' && n < 2 {
		return 0, false
	}
	closeIdx, closeLen := findMatchingRun(s, i+n, ch, n)
	if closeIdx < 0 {
		return 0, false
	}
	inner := s[i+n : closeIdx]
	if inner == "" {
		return 0, false
	}
	kind, ok := classifyMarkerRun(ch, n)
	if !ok {
		return 0, false
	}
	f.pushStyle(kind)
	f.run(inner)
	f.popStyle()
	return closeIdx + closeLen - i, true
}

func runLength(s string, i int, ch byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == ch {
		n++
	}
	return n
}

// findMatchingRun scans forward for the next run of ch with the same
// length as openLen. The search runs to the end of s, which is one
// fragment: a heading, list or quote line, or a whole paragraph with its
// lines joined.
func findMatchingRun(s string, from int, ch byte, openLen int) (idx, length int) {
	i := from
	for i < len(s) {
		if s[i] == ch {
			n := runLength(s, i, ch)
			if n == openLen {
				return i, n
			}
			i += n
			continue
		}
		i++
	}
	return -1, 0
}

func classifyMarkerRun(ch byte, n int) (styleTagKind, bool) {
	switch {
	case ch == '~':
		return styleStrike, true
	case n == 1:
		return styleItalic, true
	case n == 2:
		return styleBold, true
	case n >= 3:
		return styleBoldItalic, true
	}
	return 0, false
}

func (f *inlineFormatter) writeLink(text, url, title string) {
	th := f.w.opts.Theme
	_ = title
	rendered := text
	if f.w.opts.EnableColors && f.w.opts.UseHyperlinks {
		f.out.WriteString(ansi.Hyperlink(url, th.LinkTextStyle+rendered+ansi.Reset))
		return
	}
	f.on(th.LinkTextStyle)
	f.out.WriteString(rendered)
	f.on(ansi.Reset)
	f.out.WriteString(" (")
	f.on(th.LinkURLStyle)
	f.out.WriteString(url)
	f.on(ansi.Reset)
	f.out.WriteString(")")
}

func (f *inlineFormatter) writeImage(alt, url string) {
	th := f.w.opts.Theme
	f.out.WriteString(th.ImagePrefix)
	f.on(th.ImageAltStyle)
	f.out.WriteString(alt)
	f.on(ansi.Reset)
	_ = url
	f.out.WriteString(th.ImageSuffix)
}

// parseImage parses "![alt](url)" starting at s[0] == '!'. Returns the
// byte count consumed.
func parseImage(s string) (alt, url string, n int, ok bool) {
	if len(s) < 2 || s[0] != '!' || s[1] != '[' {
		return "", "", 0, false
	}
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := strings.IndexByte(s[closeBracket+1:], ')')
	if closeParen < 0 {
		return "", "", 0, false
	}
	closeParen += closeBracket + 1
	alt = s[2:closeBracket]
	url = s[closeBracket+2 : closeParen]
	return alt, url, closeParen + 1, true
}

// parseInlineLink parses "[text](url)" or "[text](url \"title\")".
func parseInlineLink(s string) (text, url, title string, n int, ok bool) {
	if len(s) < 1 || s[0] != '[' {
		return "", "", "", 0, false
	}
	closeBracket := matchingBracket(s, 0)
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", "", 0, false
	}
	closeParen := strings.IndexByte(s[closeBracket+1:], ')')
	if closeParen < 0 {
		return "", "", "", 0, false
	}
	closeParen += closeBracket + 1
	text = s[1:closeBracket]
	inner := strings.TrimSpace(s[closeBracket+2 : closeParen])
	fields := strings.Fields(inner)
	if len(fields) > 0 {
		url = fields[0]
	}
	if idx := strings.Index(inner, " "); idx >= 0 {
		title = strings.Trim(strings.TrimSpace(inner[idx+1:]), "\"'")
	}
	return text, url, title, closeParen + 1, true
}

func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseReferenceLink parses the three reference-link forms: "[text][label]",
// "[text][]" (label == text), and "[label]" (shortcut, label == text). It
// never resolves the label here; resolution happens against whatever
// link_definitions have been seen so far, with no back-patching if the
// definition appears later in the stream.
func parseReferenceLink(s string) (text, label string, n int, ok bool) {
	closeBracket := matchingBracket(s, 0)
	if closeBracket < 0 {
		return "", "", 0, false
	}
	text = s[1:closeBracket]
	rest := s[closeBracket+1:]
	if strings.HasPrefix(rest, "[") {
		closeLabel := matchingBracket(rest, 0)
		if closeLabel < 0 {
			return "", "", 0, false
		}
		lbl := rest[1:closeLabel]
		if lbl == "" {
			lbl = text
		}
		return text, normalizeLabel(lbl), closeBracket + closeLabel + 2, true
	}
	return text, normalizeLabel(text), closeBracket + 1, true
}

// skipInlineHTML recognizes a well-formed "<tag ...>" or "<!-- ... -->" run
// and returns its byte length so the caller can drop it from the output.
func skipInlineHTML(s string) (int, bool) {
	if strings.HasPrefix(s, "<!--") {
		if end := strings.Index(s, "-->"); end >= 0 {
			return end + 3, true
		}
		return 0, false
	}
	if len(s) < 2 {
		return 0, false
	}
	i := 1
	if s[i] == '/' {
		i++
	}
	start := i
	for i < len(s) && (isAlnum(s[i])) {
		i++
	}
	if i == start {
		return 0, false
	}
	end := strings.IndexByte(s[i:], '>')
	if end < 0 {
		return 0, false
	}
	return i + end + 1, true
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
