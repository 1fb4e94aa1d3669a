package consoleink

import (
	"strings"
	"testing"
)

func TestWrapTextBreaksAtSpace(t *testing.T) {
	lines := wrapText("aaaa bbbb cccc", 9)
	for _, l := range lines {
		if len([]rune(l)) > 9 {
			t.Fatalf("line %q exceeds width 9", l)
		}
	}
	want := strings.ReplaceAll("aaaa bbbb cccc", " ", "")
	got := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
	if got != want {
		t.Fatalf("content not preserved modulo break-spaces: got %q, want %q", got, want)
	}
}

func TestWrapTextIgnoresAnsiWidth(t *testing.T) {
	s := "\x1b[1mhi\x1b[22m there friend"
	lines := wrapText(s, 8)
	if len(lines) < 2 {
		t.Fatalf("expected wrap to occur, got %v", lines)
	}
}

func TestWrapTextEmptyStringReturnsOneLine(t *testing.T) {
	lines := wrapText("", 10)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("got %v", lines)
	}
}
