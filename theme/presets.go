package theme

import "github.com/charmbracelet/lipgloss"

func lipglossColor(s string) lipgloss.Color { return lipgloss.Color(s) }

// PresetNames lists the additional named palettes available through
// Preset, in display order. "default" and "monochrome" are the two
// presets every implementation must provide and are constructed by
// Default and Monochrome directly rather than listed here.
var PresetNames = []string{"gruvbox", "dracula", "nord"}

// palette is the small set of accent colors a named preset customizes;
// structural fields (prefixes, markers) are shared across every colored
// preset and come from Default.
type palette struct {
	heading1, heading2, heading3 string
	bullet, blockquote, code     string
	linkText, linkURL, imageAlt  string
}

var palettes = map[string]palette{
	"gruvbox": {
		heading1: "#fabd2f", heading2: "#b8bb26", heading3: "#83a598",
		bullet: "#83a598", blockquote: "#928374", code: "#fb4934",
		linkText: "#83a598", linkURL: "#928374", imageAlt: "#928374",
	},
	"dracula": {
		heading1: "#ff79c6", heading2: "#50fa7b", heading3: "#8be9fd",
		bullet: "#8be9fd", blockquote: "#6272a4", code: "#ff5555",
		linkText: "#8be9fd", linkURL: "#6272a4", imageAlt: "#6272a4",
	},
	"nord": {
		heading1: "#88c0d0", heading2: "#a3be8c", heading3: "#81a1c1",
		bullet: "#81a1c1", blockquote: "#4c566a", code: "#bf616a",
		linkText: "#88c0d0", linkURL: "#4c566a", imageAlt: "#4c566a",
	},
}

// Preset returns the named colored theme and true, or the zero Theme and
// false if name is not one of PresetNames.
func Preset(name string) (Theme, bool) {
	p, ok := palettes[name]
	if !ok {
		return Theme{}, false
	}
	t := Default()
	t.HeadingStyle = [3]string{
		"\x1b[1m" + Color(lipglossColor(p.heading1)),
		"\x1b[1m" + Color(lipglossColor(p.heading2)),
		"\x1b[1m" + Color(lipglossColor(p.heading3)),
	}
	t.ListBulletColor = Color(lipglossColor(p.bullet))
	t.BlockquoteColor = Color(lipglossColor(p.blockquote))
	t.CodeBlockStyle = Color(lipglossColor(p.code))
	t.LinkTextStyle = "\x1b[4m" + Color(lipglossColor(p.linkText))
	t.LinkURLStyle = Color(lipglossColor(p.linkURL))
	t.ImageAltStyle = "\x1b[3m" + Color(lipglossColor(p.imageAlt))
	return t, true
}
