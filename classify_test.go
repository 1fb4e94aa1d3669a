package consoleink

import "testing"

func TestClassifyATXHeading(t *testing.T) {
	c := classify("## Title", kindNone)
	if c.kind != kindHeading || c.headingLevel != 2 || c.content != "Title" {
		t.Fatalf("got %+v", c)
	}
}

func TestClassifyUnorderedList(t *testing.T) {
	c := classify("* item", kindNone)
	if c.kind != kindUnorderedList || c.content != "item" {
		t.Fatalf("got %+v", c)
	}
}

func TestClassifyOrderedList(t *testing.T) {
	c := classify("3. third", kindNone)
	if c.kind != kindOrderedList || c.orderedStart != "3" || c.content != "third" {
		t.Fatalf("got %+v", c)
	}
}

func TestClassifyLinkDefinition(t *testing.T) {
	c := classify("[Foo Bar]: https://example.com \"A Title\"", kindNone)
	if c.kind != kindLinkDefinition || c.label != "foo bar" || c.url != "https://example.com" {
		t.Fatalf("got %+v", c)
	}
}

func TestClassifyIndentedCode(t *testing.T) {
	c := classify("    x := 1", kindNone)
	if c.kind != kindCodeBlock || c.content != "    x := 1" {
		t.Fatalf("got %+v", c)
	}
}

func TestClassifyTableSeparatorOnlyFromParagraphOrNone(t *testing.T) {
	c := classify("| --- | --- |", kindParagraph)
	if c.kind != kindTable {
		t.Fatalf("expected table from paragraph context, got %+v", c)
	}
	c2 := classify("| --- | --- |", kindCodeBlock)
	if c2.kind == kindTable {
		t.Fatalf("table separator should not trigger from code-block context: %+v", c2)
	}
}

func TestClassifyThematicBreak(t *testing.T) {
	for _, line := range []string{"---", "***", "___", "- - -"} {
		c := classify(line, kindNone)
		if c.kind != kindThematicBreak {
			t.Fatalf("classify(%q) = %+v, want kindThematicBreak", line, c)
		}
	}
}

func TestClassifyBlankLine(t *testing.T) {
	c := classify("   ", kindParagraph)
	if !c.isBlank {
		t.Fatalf("expected blank classification, got %+v", c)
	}
}
