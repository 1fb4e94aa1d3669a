package consoleink

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText wraps s to width visible columns, breaking at the last space
// before the limit (or at the limit itself when a word is longer than the
// line) and never splitting an ANSI/OSC-8 escape sequence across lines. ANSI sequences consume zero visible columns. The final
// line never gets a trailing space trimmed twice; wrapText always returns
// at least one line, even for an empty string.
func wrapText(s string, width int) []string {
	if width <= 0 {
		width = 80
	}
	var lines []string
	var cur strings.Builder
	col := 0
	lastSpaceByte := -1
	lastSpaceCol := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		col = 0
		lastSpaceByte = -1
	}

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r == 0x1b {
			seq, n := ansiSeqLen(runes, i)
			cur.WriteString(seq)
			i += n
			continue
		}
		if r == ' ' && col >= width {
			flush()
			i++
			continue
		}
		cur.WriteRune(r)
		if r == ' ' {
			lastSpaceByte = cur.Len()
			lastSpaceCol = col
		}
		col += runewidth.RuneWidth(r)
		i++

		if col > width {
			if lastSpaceByte >= 0 {
				full := cur.String()
				lines = append(lines, strings.TrimRight(full[:lastSpaceByte], " "))
				rest := full[lastSpaceByte:]
				cur.Reset()
				cur.WriteString(rest)
				col = col - lastSpaceCol - 1
				if col < 0 {
					col = 0
				}
				lastSpaceByte = -1
			} else if full := cur.String(); len(full) > len(string(r)) {
				cur.Reset()
				cur.WriteString(full[:len(full)-len(string(r))])
				flush()
				cur.WriteRune(r)
				col = runewidth.RuneWidth(r)
			}
		}
	}
	lines = append(lines, cur.String())
	return lines
}

// ansiSeqLen returns the literal text and rune length of the escape
// sequence starting at runes[i] (which must be ESC). It recognizes CSI
// ("\x1b[...letter") and OSC ("\x1b]...BEL or ST") forms; anything else
// is treated as a bare, zero-width ESC byte.
func ansiSeqLen(runes []rune, i int) (string, int) {
	if i+1 >= len(runes) {
		return string(runes[i]), 1
	}
	switch runes[i+1] {
	case '[':
		j := i + 2
		for j < len(runes) && !(runes[j] >= '@' && runes[j] <= '~') {
			j++
		}
		if j < len(runes) {
			j++
		}
		return string(runes[i:j]), j - i
	case ']':
		j := i + 2
		for j < len(runes) {
			if runes[j] == 0x07 {
				j++
				break
			}
			if runes[j] == 0x1b && j+1 < len(runes) && runes[j+1] == '\\' {
				j += 2
				break
			}
			j++
		}
		return string(runes[i:j]), j - i
	default:
		return string(runes[i]), 1
	}
}
