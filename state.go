// Package consoleink renders streamed Markdown fragments to ANSI terminal
// output incrementally: a Writer consumes arbitrarily small chunks of text
// and emits finished, styled terminal bytes as soon as a block's boundary
// is known, without ever re-reading or patching bytes already written.
package consoleink

import (
	"fmt"
	"io"
	"strings"

	"github.com/stimpy77/ConsoleInk.NET/ansi"
)

type linkDef struct {
	url   string
	title string
}

// Writer is the incremental renderer. It is not safe for concurrent use by
// multiple goroutines; a single producer is expected to feed it bytes in
// order, matching the forward-only, single-pass contract.
type Writer struct {
	out  io.Writer
	opts Options

	lb *lineBuffer

	currentKind    blockKindTag
	lastFinalKind  blockKindTag
	lastFinalWrote bool
	needsSeparation bool

	paragraphBuf []string
	orderedNum   int
	quotePrefix  bool

	table *tableState

	linkDefs map[string]linkDef

	closed bool
	err    error
}

// NewWriter builds a Writer that streams rendered output to out.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:      out,
		opts:     NewOptions(opts...),
		linkDefs: make(map[string]linkDef),
	}
	w.lb = newLineBuffer(w.handleLine)
	return w
}

// WriteString feeds an arbitrary chunk of Markdown text into the Writer.
func (w *Writer) WriteString(s string) error {
	if w.closed {
		return ErrClosed
	}
	w.lb.WriteString(s)
	return w.err
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	for _, b := range p {
		w.lb.WriteByte(b)
	}
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

// WriteLine feeds one already-terminated line of Markdown text.
func (w *Writer) WriteLine(s string) error {
	return w.WriteString(strings.TrimRight(s, "\r\n") + "\n")
}

// Flush pushes already-rendered output through to the sink, calling the
// sink's own Flush() error method when it has one. It leaves the open
// block (a buffered paragraph or table) untouched, so calling Flush at any
// point does not change the final rendered bytes. Safe to call repeatedly.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if f, ok := w.out.(interface{ Flush() error }); ok && w.err == nil {
		if err := f.Flush(); err != nil {
			w.err = err
		}
	}
	return w.err
}

// Complete finalizes the stream: flushes any pending partial line, closes
// the current block, and marks the Writer unusable for further writes.
// Calling Complete more than once is safe and a no-op after the first call.
func (w *Writer) Complete() error {
	if w.closed {
		return nil
	}
	w.lb.Complete()
	w.finalizeCurrent()
	w.closed = true
	return w.err
}

func (w *Writer) handleLine(lineBytes []byte) {
	if w.err != nil {
		return
	}
	line := string(lineBytes)
	c := classify(line, w.currentKind)

	if w.needsSeparation && !c.isBlank {
		w.emit("\n")
		w.needsSeparation = false
	}

	if c.isBlank {
		w.finalizeCurrent()
		return
	}

	if c.kind != w.currentKind && w.currentKind != kindNone {
		if !(w.currentKind == kindParagraph && c.kind == kindTable) {
			w.finalizeCurrent()
		}
	}

	if c.kind == kindTable && w.table == nil {
		w.startTable(c.content)
		w.currentKind = kindTable
		return
	}

	switch c.kind {
	case kindLinkDefinition:
		w.linkDefs[c.label] = linkDef{url: c.url, title: c.title}
		w.needsSeparation = false
		return
	case kindHeading:
		w.emitHeading(c)
		w.currentKind = kindNone
		w.lastFinalKind = kindHeading
		w.lastFinalWrote = true
		w.needsSeparation = true
	case kindThematicBreak:
		w.emitThematicBreak()
		w.currentKind = kindNone
		w.lastFinalKind = kindThematicBreak
		w.lastFinalWrote = true
		w.needsSeparation = true
	case kindUnorderedList:
		w.currentKind = kindUnorderedList
		w.emitListItem(c, "")
	case kindOrderedList:
		if w.currentKind != kindOrderedList {
			w.orderedNum = 0
		}
		w.orderedNum++
		w.currentKind = kindOrderedList
		w.emitListItem(c, fmt.Sprintf("%d", w.orderedNum))
	case kindCodeBlock:
		w.currentKind = kindCodeBlock
		content := c.content
		if w.lastFinalKind != kindUnorderedList && w.lastFinalKind != kindOrderedList {
			content = stripCodeIndent(content)
		}
		w.emitCodeLine(content)
	case kindBlockquote:
		w.currentKind = kindBlockquote
		w.emitBlockquoteLine(c.quoteContent)
	case kindTable:
		w.table.addRow(c.content)
	default:
		w.currentKind = kindParagraph
		w.paragraphBuf = append(w.paragraphBuf, c.content)
	}
}

// finalizeCurrent closes out whatever block is open, flushing a buffered
// paragraph or a completed table, and arms needs_separation_before_next_block
// only when the block actually produced output.
func (w *Writer) finalizeCurrent() {
	switch w.currentKind {
	case kindParagraph:
		if len(w.paragraphBuf) > 0 {
			w.emitParagraph()
			w.lastFinalWrote = true
		} else {
			w.lastFinalWrote = false
		}
	case kindTable:
		if w.table != nil {
			w.table.render(w)
			w.table = nil
		}
		w.lastFinalWrote = true
	case kindUnorderedList, kindOrderedList, kindCodeBlock, kindBlockquote:
		w.lastFinalWrote = true
	default:
		w.lastFinalWrote = false
	}
	if w.currentKind != kindNone {
		w.lastFinalKind = w.currentKind
		if w.lastFinalWrote {
			w.needsSeparation = true
		}
	}
	w.currentKind = kindNone
	w.paragraphBuf = nil
}

func (w *Writer) emitParagraph() {
	joined := strings.Join(w.paragraphBuf, " ")
	rendered := formatInline(w, joined)
	w.emitWrapped(rendered, "")
}

func (w *Writer) emitHeading(c classification) {
	th := w.opts.Theme
	level := c.headingLevel
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	style := th.HeadingStyle[level-1]
	rendered := formatInline(w, c.content)
	var b strings.Builder
	if w.opts.EnableColors {
		b.WriteString(style)
	}
	b.WriteString(rendered)
	if w.opts.EnableColors && style != "" {
		b.WriteString(ansi.Reset)
	}
	w.emit(b.String())
	w.emit("\n")
}

func (w *Writer) emitThematicBreak() {
	ch := w.opts.Theme.HorizontalRuleChar
	if ch == "" {
		ch = "-"
	}
	w.emit(strings.Repeat(ch, w.opts.ConsoleWidth))
	w.emit("\n")
}

func (w *Writer) emitListItem(c classification, orderedNum string) {
	th := w.opts.Theme
	var prefix string
	switch {
	case c.isTaskItem && c.taskChecked:
		prefix = th.TaskListCheckedMarker
	case c.isTaskItem:
		prefix = th.TaskListUncheckedMarker
	case orderedNum != "":
		prefix = fmt.Sprintf(th.OrderedListPrefixFormat, w.orderedNum)
	default:
		prefix = th.UnorderedListPrefix
	}
	if w.opts.EnableColors && th.ListBulletColor != "" {
		prefix = th.ListBulletColor + prefix + ansi.Reset
	}
	rendered := formatInline(w, c.content)
	w.emitWrapped(rendered, prefix)
}

func (w *Writer) emitCodeLine(content string) {
	th := w.opts.Theme
	var b strings.Builder
	if w.opts.EnableColors && th.CodeBlockStyle != "" {
		b.WriteString(th.CodeBlockStyle)
	}
	b.WriteString(content)
	if w.opts.EnableColors && th.CodeBlockStyle != "" {
		b.WriteString(ansi.Reset)
	}
	b.WriteString("\n")
	w.emit(b.String())
}

func (w *Writer) emitBlockquoteLine(content string) {
	th := w.opts.Theme
	rendered := formatInline(w, content)
	prefix := th.BlockquotePrefix
	if w.opts.EnableColors && th.BlockquoteColor != "" {
		prefix = th.BlockquoteColor + prefix + ansi.Reset
	}
	w.emitWrapped(rendered, prefix)
}

// startTable begins a table block when a separator line is classified
// immediately after a paragraph: the header is the whole buffered
// paragraph, its lines joined as a paragraph would be, which is why the
// Paragraph->Table transition in handleLine does not finalize the
// paragraph the normal way.
func (w *Writer) startTable(separatorLine string) {
	header := strings.Join(w.paragraphBuf, " ")
	w.paragraphBuf = nil
	w.table = newTableState(header)
	w.table.setSeparator(separatorLine)
}

// emitWrapped word-wraps rendered (already inline-formatted) text to the
// configured console width, prefixing every physical line with prefix
// (continuation lines get prefix-width spaces instead, so list/quote
// indentation lines up).
func (w *Writer) emitWrapped(rendered, prefix string) {
	contentWidth := w.opts.ConsoleWidth - ansi.StringWidth(prefix)
	if contentWidth < 1 {
		contentWidth = 1
	}
	lines := wrapText(rendered, contentWidth)
	pad := strings.Repeat(" ", ansi.StringWidth(prefix))
	for i, line := range lines {
		if i == 0 {
			w.emit(prefix)
		} else {
			w.emit(pad)
		}
		w.emit(line)
		w.emit("\n")
	}
}

func (w *Writer) emit(s string) {
	if w.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = err
	}
}
