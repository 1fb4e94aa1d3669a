// Package theme holds the passive style palette the inline formatter and
// block writer consume. A Theme never mutates once built; callers pass one
// in through Options and every renderer goroutine may share it safely.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stimpy77/ConsoleInk.NET/ansi"
)

// Theme is the style palette consulted by the block writer and inline
// formatter. On-code fields already hold fully resolved SGR/OSC sequences
// (built via Color at construction time); structural fields are plain text
// that appears in the output regardless of color support.
type Theme struct {
	// HeadingStyle holds the on-code for heading levels 1..3, indexed
	// HeadingStyle[level-1].
	HeadingStyle [3]string

	ListBulletColor         string
	UnorderedListPrefix     string
	OrderedListPrefixFormat string // contains "%d" where the item number goes

	BlockquoteColor  string
	BlockquotePrefix string

	CodeBlockStyle string

	LinkTextStyle string
	LinkURLStyle  string

	EmphasisItalicOn       string
	EmphasisBoldOn         string
	EmphasisBoldItalicOn   string
	EmphasisStrikethroughOn string

	ImagePrefix   string
	ImageSuffix   string
	ImageAltStyle string

	TaskListUncheckedMarker string
	TaskListCheckedMarker   string

	HorizontalRuleChar string
}

// Color builds an SGR "on" sequence from a lipgloss.Color. lipgloss.Color
// is a bare string ("#rrggbb" or a decimal ANSI index); Color defers to the
// ansi package to resolve it the same way Options' enable_colors path does.
func Color(c lipgloss.Color) string {
	return ansi.FgFromSpec(string(c))
}

// Default returns the colored preset theme, modeled on the gruvbox
// palette.
func Default() Theme {
	return Theme{
		HeadingStyle: [3]string{
			ansi.BoldOn + Color("#fabd2f"),
			ansi.BoldOn + Color("#b8bb26"),
			ansi.BoldOn + Color("#83a598"),
		},
		ListBulletColor:         Color("#83a598"),
		UnorderedListPrefix:     "• ",
		OrderedListPrefixFormat: "%d. ",

		BlockquoteColor:  Color("#928374"),
		BlockquotePrefix: "│ ",

		CodeBlockStyle: Color("#fb4934"),

		LinkTextStyle: ansi.UnderlineOn + Color("#83a598"),
		LinkURLStyle:  Color("#928374"),

		EmphasisItalicOn:        ansi.ItalicOn,
		EmphasisBoldOn:          ansi.BoldOn,
		EmphasisBoldItalicOn:    ansi.BoldOn + ansi.ItalicOn,
		EmphasisStrikethroughOn: ansi.StrikethroughOn,

		ImagePrefix:   "[image: ",
		ImageSuffix:   "]",
		ImageAltStyle: ansi.ItalicOn + Color("#928374"),

		TaskListUncheckedMarker: "[ ] ",
		TaskListCheckedMarker:   "[x] ",

		HorizontalRuleChar: "─",
	}
}

// Monochrome returns the preset theme in which every style and color field
// is the empty string; structural markers (prefixes, task-list boxes, the
// horizontal rule character) are retained since they are not style emission
// but literal output text.
func Monochrome() Theme {
	return Theme{
		UnorderedListPrefix:     "• ",
		OrderedListPrefixFormat: "%d. ",
		BlockquotePrefix:        "│ ",
		ImagePrefix:             "[image: ",
		ImageSuffix:             "]",
		TaskListUncheckedMarker: "[ ] ",
		TaskListCheckedMarker:   "[x] ",
		HorizontalRuleChar:      "─",
	}
}
