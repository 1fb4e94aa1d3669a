package consoleink

import (
	"strings"

	"github.com/stimpy77/ConsoleInk.NET/ansi"
)

type tableAlignment int

const (
	alignLeft tableAlignment = iota
	alignCenter
	alignRight
)

// tableState buffers a GFM table (header, separator, rows) until the block
// finalizes, since column widths aren't known until every row has been
// seen.
type tableState struct {
	header     []string
	alignments []tableAlignment
	rows       [][]string
	malformed  bool
}

func newTableState(headerLine string) *tableState {
	return &tableState{header: splitCells(headerLine)}
}

func splitCells(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func (ts *tableState) setSeparator(line string) {
	cells := splitCells(line)
	aligns := make([]tableAlignment, len(cells))
	for i, c := range cells {
		aligns[i] = parseAlignment(c)
	}
	if len(aligns) > len(ts.header) {
		ts.malformed = true
	}
	ts.alignments = aligns
}

func parseAlignment(cell string) tableAlignment {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return alignCenter
	case right:
		return alignRight
	default:
		return alignLeft
	}
}

func (ts *tableState) addRow(line string) {
	ts.rows = append(ts.rows, splitCells(line))
}

// render emits the finished table as aligned, padded columns, or the
// malformed-table placeholder when the separator has more cells than the
// header. A separator with fewer cells is padded with left alignment.
func (ts *tableState) render(w *Writer) {
	if ts.malformed || len(ts.header) == 0 {
		w.emit("[Table Render Error]\n")
		return
	}
	cols := len(ts.header)
	widths := make([]int, cols)
	for i, h := range ts.header {
		widths[i] = max(3, ansi.StringWidth(h))
	}
	for _, row := range ts.rows {
		for i := 0; i < cols && i < len(row); i++ {
			if wd := ansi.StringWidth(row[i]); wd > widths[i] {
				widths[i] = wd
			}
		}
	}

	aligns := ts.alignments
	for len(aligns) < cols {
		aligns = append(aligns, alignLeft)
	}

	w.emit(renderRow(ts.header, aligns, widths))
	w.emit(renderSeparatorRow(aligns, widths))
	for _, row := range ts.rows {
		w.emit(renderRow(row, aligns, widths))
	}
}

// renderRow emits cell text verbatim: cells are not run through the inline
// formatter, so markers like ** or _ show up literally in table output.
func renderRow(cells []string, aligns []tableAlignment, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for i, width := range widths {
		raw := ""
		if i < len(cells) {
			raw = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(padCell(raw, width, aligns[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")
	return b.String()
}

func renderSeparatorRow(aligns []tableAlignment, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for i, width := range widths {
		b.WriteString(" ")
		b.WriteString(separatorCell(width, aligns[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")
	return b.String()
}

func separatorCell(width int, a tableAlignment) string {
	switch a {
	case alignCenter:
		return ":" + strings.Repeat("-", max(1, width-2)) + ":"
	case alignRight:
		return strings.Repeat("-", max(1, width-1)) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

func padCell(s string, width int, a tableAlignment) string {
	visible := ansi.StringWidth(s)
	pad := width - visible
	if pad < 0 {
		pad = 0
	}
	switch a {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
