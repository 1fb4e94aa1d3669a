package consoleink

import "testing"

func TestSplitCellsTrimsPipesAndSpaces(t *testing.T) {
	cells := splitCells("| a | b  |")
	if len(cells) != 2 || cells[0] != "a" || cells[1] != "b" {
		t.Fatalf("got %v", cells)
	}
}

func TestParseAlignmentVariants(t *testing.T) {
	cases := map[string]tableAlignment{
		"---":  alignLeft,
		":---": alignLeft,
		"---:": alignRight,
		":-:":  alignCenter,
	}
	for cell, want := range cases {
		if got := parseAlignment(cell); got != want {
			t.Fatalf("parseAlignment(%q) = %v, want %v", cell, got, want)
		}
	}
}

func TestParseAlignmentLeftColon(t *testing.T) {
	if got := parseAlignment(":---"); got != alignLeft {
		t.Fatalf("got %v", got)
	}
}
